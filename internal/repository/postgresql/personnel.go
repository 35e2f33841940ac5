package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type personnelRepositoryImpl struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepositoryImpl{db: db}
}

func (r *personnelRepositoryImpl) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO personnel (
			id, personnel_no, name, surname, monthly_salary,
			daily_wage, hourly_wage, minute_wage, shift_start, shift_end,
			monthly_leave_days, remaining_leave_days, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, insertQuery,
		p.ID, p.PersonnelNo, p.Name, p.Surname, p.MonthlySalary,
		p.DailyWage, p.HourlyWage, p.MinuteWage, p.ShiftStart, p.ShiftEnd,
		p.MonthlyLeaveDays, p.RemainingLeaveDays, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return personnel.Personnel{}, personnel.ErrPersonnelNoExists
		}
		return personnel.Personnel{}, err
	}

	return p, nil
}

func (r *personnelRepositoryImpl) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate takes a row lock held until the surrounding transaction
// ends. Callers must be inside WithTransaction.
func (r *personnelRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (personnel.Personnel, error) {
	return r.getByID(ctx, id, true)
}

func (r *personnelRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_no, name, surname, monthly_salary,
			   daily_wage, hourly_wage, minute_wage, shift_start, shift_end,
			   monthly_leave_days, remaining_leave_days, is_active,
			   created_at, updated_at
		FROM personnel
		WHERE id = $1
	`
	if forUpdate {
		selectQuery += " FOR UPDATE"
	}

	var p personnel.Personnel
	err := q.QueryRow(ctx, selectQuery, id).Scan(
		&p.ID,
		&p.PersonnelNo,
		&p.Name,
		&p.Surname,
		&p.MonthlySalary,
		&p.DailyWage,
		&p.HourlyWage,
		&p.MinuteWage,
		&p.ShiftStart,
		&p.ShiftEnd,
		&p.MonthlyLeaveDays,
		&p.RemainingLeaveDays,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, err
	}

	return p, nil
}

func (r *personnelRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, personnel_no, name, surname, monthly_salary,
			   daily_wage, hourly_wage, minute_wage, shift_start, shift_end,
			   monthly_leave_days, remaining_leave_days, is_active,
			   created_at, updated_at
		FROM personnel
		WHERE ($1 = false OR is_active = true)
		ORDER BY personnel_no
	`

	rows, err := q.Query(ctx, selectQuery, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []personnel.Personnel
	for rows.Next() {
		var p personnel.Personnel
		if err := rows.Scan(
			&p.ID,
			&p.PersonnelNo,
			&p.Name,
			&p.Surname,
			&p.MonthlySalary,
			&p.DailyWage,
			&p.HourlyWage,
			&p.MinuteWage,
			&p.ShiftStart,
			&p.ShiftEnd,
			&p.MonthlyLeaveDays,
			&p.RemainingLeaveDays,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *personnelRepositoryImpl) Update(ctx context.Context, p personnel.Personnel) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE personnel
		SET name = $1, surname = $2, monthly_salary = $3,
			daily_wage = $4, hourly_wage = $5, minute_wage = $6,
			shift_start = $7, shift_end = $8,
			monthly_leave_days = $9, is_active = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, updateQuery,
		p.Name, p.Surname, p.MonthlySalary,
		p.DailyWage, p.HourlyWage, p.MinuteWage,
		p.ShiftStart, p.ShiftEnd,
		p.MonthlyLeaveDays, p.IsActive, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}

func (r *personnelRepositoryImpl) DeductLeaveDays(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	// Single statement keeps the floor-at-zero decision on the row's
	// committed value, so concurrent deductions cannot lose updates.
	updateQuery := `
		UPDATE personnel
		SET remaining_leave_days = GREATEST(remaining_leave_days - $1, 0),
			updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, updateQuery, days, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}

func (r *personnelRepositoryImpl) RestoreLeaveDays(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE personnel
		SET remaining_leave_days = remaining_leave_days + $1,
			updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, updateQuery, days, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}
