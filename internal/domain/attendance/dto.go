package attendance

import (
	"time"

	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	PersonnelID string `json:"personnel_id"`
	Timestamp   string `json:"timestamp"` // RFC3339; defaults to now when empty
	QRToken     string `json:"qr_token"`  // optional kiosk token
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "personnel_id is required"})
	}
	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp must be RFC3339"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// At returns the check-in instant, defaulting to now.
func (r *CheckInRequest) At() time.Time {
	if r.Timestamp == "" {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

type CheckOutRequest struct {
	AttendanceID string `json:"attendance_id"`
	Timestamp    string `json:"timestamp"` // RFC3339; defaults to now when empty
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_id", Message: "attendance_id is required"})
	}
	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp must be RFC3339"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CheckOutRequest) At() time.Time {
	if r.Timestamp == "" {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

// Filter narrows attendance listings; zero values mean "no constraint".
type Filter struct {
	PersonnelID string
	From        time.Time
	To          time.Time
}

type AttendanceResponse struct {
	ID                string          `json:"id"`
	PersonnelID       string          `json:"personnel_id"`
	PersonnelName     *string         `json:"personnel_name,omitempty"`
	WorkDate          string          `json:"work_date"`
	CheckIn           string          `json:"check_in"`
	CheckOut          *string         `json:"check_out"`
	WorkedMinutes     int             `json:"worked_minutes"`
	OvertimeMinutes   int             `json:"overtime_minutes"`
	LateMinutes       int             `json:"late_minutes"`
	EarlyLeaveMinutes int             `json:"early_leave_minutes"`
	GrossEarnings     decimal.Decimal `json:"gross_earnings"`
	OvertimeAmount    decimal.Decimal `json:"overtime_amount"`
	LatePenalty       decimal.Decimal `json:"late_penalty"`
	EarlyLeavePenalty decimal.Decimal `json:"early_leave_penalty"`
	NetEarnings       decimal.Decimal `json:"net_earnings"`
	Completed         bool            `json:"completed"`
}
