package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.personnel_id, a.work_date, a.check_in, a.check_out,
	a.worked_minutes, a.overtime_minutes, a.late_minutes, a.early_leave_minutes,
	a.gross_earnings, a.overtime_amount, a.late_penalty, a.early_leave_penalty,
	a.net_earnings, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.PersonnelID,
		&a.WorkDate,
		&a.CheckIn,
		&a.CheckOut,
		&a.WorkedMinutes,
		&a.OvertimeMinutes,
		&a.LateMinutes,
		&a.EarlyLeaveMinutes,
		&a.GrossEarnings,
		&a.OvertimeAmount,
		&a.LatePenalty,
		&a.EarlyLeavePenalty,
		&a.NetEarnings,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO attendance_records (id, personnel_id, work_date, check_in)
		VALUES ($1, $2, $3, $4)
		RETURNING gross_earnings, overtime_amount, late_penalty, early_leave_penalty,
				  net_earnings, created_at, updated_at
	`

	err := q.QueryRow(ctx, insertQuery, a.ID, a.PersonnelID, a.WorkDate, a.CheckIn).Scan(
		&a.GrossEarnings,
		&a.OvertimeAmount,
		&a.LatePenalty,
		&a.EarlyLeavePenalty,
		&a.NetEarnings,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		// Two racing check-ins hit UNIQUE (personnel_id, work_date); the
		// loser gets the same conflict as the non-race duplicate path.
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + attendanceColumns + ` FROM attendance_records a WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, selectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.personnel_id = $1 AND a.work_date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, selectQuery, personnelID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendance_records
		SET check_out = $1, worked_minutes = $2, overtime_minutes = $3,
			late_minutes = $4, early_leave_minutes = $5,
			gross_earnings = $6, overtime_amount = $7, late_penalty = $8,
			early_leave_penalty = $9, net_earnings = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, updateQuery,
		a.CheckOut, a.WorkedMinutes, a.OvertimeMinutes,
		a.LateMinutes, a.EarlyLeaveMinutes,
		a.GrossEarnings, a.OvertimeAmount, a.LatePenalty,
		a.EarlyLeavePenalty, a.NetEarnings, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + attendanceColumns + `, p.name || ' ' || p.surname
		FROM attendance_records a
		JOIN personnel p ON p.id = a.personnel_id
		WHERE 1=1`)

	var args []interface{}
	if filter.PersonnelID != "" {
		args = append(args, filter.PersonnelID)
		sb.WriteString(" AND a.personnel_id = $" + strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		sb.WriteString(" AND a.work_date >= $" + strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		sb.WriteString(" AND a.work_date <= $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY a.work_date DESC, a.check_in DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var name string
		if err := rows.Scan(
			&a.ID,
			&a.PersonnelID,
			&a.WorkDate,
			&a.CheckIn,
			&a.CheckOut,
			&a.WorkedMinutes,
			&a.OvertimeMinutes,
			&a.LateMinutes,
			&a.EarlyLeaveMinutes,
			&a.GrossEarnings,
			&a.OvertimeAmount,
			&a.LatePenalty,
			&a.EarlyLeavePenalty,
			&a.NetEarnings,
			&a.CreatedAt,
			&a.UpdatedAt,
			&name,
		); err != nil {
			return nil, err
		}
		a.PersonnelName = &name
		result = append(result, a)
	}

	return result, rows.Err()
}

func (r *attendanceRepositoryImpl) ListCompletedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.personnel_id = $1
		  AND a.check_out IS NOT NULL
		  AND a.work_date >= $2
		  AND a.work_date <= $3
		ORDER BY a.work_date`

	rows, err := q.Query(ctx, selectQuery, personnelID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, rows.Err()
}
