package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.SalaryAdjustment) (adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	if adj.ID == "" {
		adj.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO salary_adjustments (id, personnel_id, kind, amount, attendance_id, reason, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, insertQuery,
		adj.ID, adj.PersonnelID, string(adj.Kind), adj.Amount,
		adj.AttendanceID, adj.Reason, string(adj.Status), adj.CreatedBy,
	).Scan(&adj.CreatedAt)
	if err != nil {
		return adjustment.SalaryAdjustment{}, err
	}

	return adj, nil
}

func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_id, kind, amount, attendance_id, reason, status, created_by, created_at
		FROM salary_adjustments
		WHERE id = $1
	`

	var adj adjustment.SalaryAdjustment
	err := q.QueryRow(ctx, selectQuery, id).Scan(
		&adj.ID,
		&adj.PersonnelID,
		&adj.Kind,
		&adj.Amount,
		&adj.AttendanceID,
		&adj.Reason,
		&adj.Status,
		&adj.CreatedBy,
		&adj.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.SalaryAdjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.SalaryAdjustment{}, err
	}

	return adj, nil
}

func (r *adjustmentRepositoryImpl) ListByPersonnel(ctx context.Context, personnelID string) ([]adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT s.id, s.personnel_id, s.kind, s.amount, s.attendance_id, s.reason,
			   s.status, s.created_by, s.created_at,
			   p.name || ' ' || p.surname
		FROM salary_adjustments s
		JOIN personnel p ON p.id = s.personnel_id
		WHERE s.personnel_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := q.Query(ctx, selectQuery, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []adjustment.SalaryAdjustment
	for rows.Next() {
		var adj adjustment.SalaryAdjustment
		var name string
		if err := rows.Scan(
			&adj.ID,
			&adj.PersonnelID,
			&adj.Kind,
			&adj.Amount,
			&adj.AttendanceID,
			&adj.Reason,
			&adj.Status,
			&adj.CreatedBy,
			&adj.CreatedAt,
			&name,
		); err != nil {
			return nil, err
		}
		adj.PersonnelName = &name
		result = append(result, adj)
	}

	return result, rows.Err()
}

func (r *adjustmentRepositoryImpl) ListApprovedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_id, kind, amount, attendance_id, reason, status, created_by, created_at
		FROM salary_adjustments
		WHERE personnel_id = $1
		  AND status = 'approved'
		  AND created_at >= $2
		  AND created_at < $3 + INTERVAL '1 day'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, selectQuery, personnelID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []adjustment.SalaryAdjustment
	for rows.Next() {
		var adj adjustment.SalaryAdjustment
		if err := rows.Scan(
			&adj.ID,
			&adj.PersonnelID,
			&adj.Kind,
			&adj.Amount,
			&adj.AttendanceID,
			&adj.Reason,
			&adj.Status,
			&adj.CreatedBy,
			&adj.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, adj)
	}

	return result, rows.Err()
}
