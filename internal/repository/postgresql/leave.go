package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/leave"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO leave_records (id, personnel_id, kind, start_date, end_date, total_days, reason, approved_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, insertQuery,
		record.ID, record.PersonnelID, string(record.Kind),
		record.StartDate, record.EndDate, record.TotalDays,
		record.Reason, record.ApprovedBy, record.Status,
	).Scan(&record.CreatedAt)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_id, kind, start_date, end_date, total_days, reason, approved_by, status, created_at
		FROM leave_records
		WHERE id = $1
	`

	var record leave.LeaveRecord
	err := q.QueryRow(ctx, selectQuery, id).Scan(
		&record.ID,
		&record.PersonnelID,
		&record.Kind,
		&record.StartDate,
		&record.EndDate,
		&record.TotalDays,
		&record.Reason,
		&record.ApprovedBy,
		&record.Status,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepositoryImpl) ListByPersonnel(ctx context.Context, personnelID string) ([]leave.LeaveRecord, error) {
	selectQuery := `
		SELECT l.id, l.personnel_id, l.kind, l.start_date, l.end_date, l.total_days,
			   l.reason, l.approved_by, l.status, l.created_at,
			   p.name || ' ' || p.surname
		FROM leave_records l
		JOIN personnel p ON p.id = l.personnel_id
		WHERE l.personnel_id = $1
		ORDER BY l.start_date DESC
	`
	return r.queryRecords(ctx, selectQuery, personnelID)
}

func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRecord, error) {
	selectQuery := `
		SELECT l.id, l.personnel_id, l.kind, l.start_date, l.end_date, l.total_days,
			   l.reason, l.approved_by, l.status, l.created_at,
			   p.name || ' ' || p.surname
		FROM leave_records l
		JOIN personnel p ON p.id = l.personnel_id
		ORDER BY l.start_date DESC
	`
	return r.queryRecords(ctx, selectQuery)
}

func (r *leaveRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []leave.LeaveRecord
	for rows.Next() {
		var record leave.LeaveRecord
		var name string
		if err := rows.Scan(
			&record.ID,
			&record.PersonnelID,
			&record.Kind,
			&record.StartDate,
			&record.EndDate,
			&record.TotalDays,
			&record.Reason,
			&record.ApprovedBy,
			&record.Status,
			&record.CreatedAt,
			&name,
		); err != nil {
			return nil, err
		}
		record.PersonnelName = &name
		result = append(result, record)
	}

	return result, rows.Err()
}
