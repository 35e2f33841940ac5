package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

func (r *absenceRepositoryImpl) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO absence_records (id, personnel_id, absence_date, kind, excused, penalty_amount, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, insertQuery,
		record.ID, record.PersonnelID, record.Date, string(record.Kind),
		record.Excused, record.PenaltyAmount, record.Reason, record.CreatedBy,
	).Scan(&record.CreatedAt)
	if err != nil {
		return absence.AbsenceRecord{}, err
	}

	return record, nil
}

func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_id, absence_date, kind, excused, penalty_amount, reason, created_by, created_at
		FROM absence_records
		WHERE id = $1
	`

	var record absence.AbsenceRecord
	err := q.QueryRow(ctx, selectQuery, id).Scan(
		&record.ID,
		&record.PersonnelID,
		&record.Date,
		&record.Kind,
		&record.Excused,
		&record.PenaltyAmount,
		&record.Reason,
		&record.CreatedBy,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRecord{}, err
	}

	return record, nil
}

func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absence_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}

	return nil
}

func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.Filter) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.personnel_id, a.absence_date, a.kind, a.excused,
			   a.penalty_amount, a.reason, a.created_by, a.created_at,
			   p.name || ' ' || p.surname
		FROM absence_records a
		JOIN personnel p ON p.id = a.personnel_id
		WHERE 1=1`)

	var args []interface{}
	if filter.PersonnelID != "" {
		args = append(args, filter.PersonnelID)
		sb.WriteString(" AND a.personnel_id = $" + strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		sb.WriteString(" AND a.absence_date >= $" + strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		sb.WriteString(" AND a.absence_date <= $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY a.absence_date DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []absence.AbsenceRecord
	for rows.Next() {
		var record absence.AbsenceRecord
		var name string
		if err := rows.Scan(
			&record.ID,
			&record.PersonnelID,
			&record.Date,
			&record.Kind,
			&record.Excused,
			&record.PenaltyAmount,
			&record.Reason,
			&record.CreatedBy,
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

func (r *absenceRepositoryImpl) ListInRange(ctx context.Context, personnelID string, from, to time.Time) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_id, absence_date, kind, excused, penalty_amount, reason, created_by, created_at
		FROM absence_records
		WHERE personnel_id = $1 AND absence_date >= $2 AND absence_date <= $3
		ORDER BY absence_date
	`

	rows, err := q.Query(ctx, selectQuery, personnelID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []absence.AbsenceRecord
	for rows.Next() {
		var record absence.AbsenceRecord
		if err := rows.Scan(
			&record.ID,
			&record.PersonnelID,
			&record.Date,
			&record.Kind,
			&record.Excused,
			&record.PenaltyAmount,
			&record.Reason,
			&record.CreatedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, rows.Err()
}
