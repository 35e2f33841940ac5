package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID          string
	PersonnelID string
	WorkDate    time.Time
	CheckIn     time.Time
	CheckOut    *time.Time

	// Minute buckets and amounts, filled on check-out by the earnings
	// calculator. Zero while the shift is open.
	WorkedMinutes     int
	OvertimeMinutes   int
	LateMinutes       int
	EarlyLeaveMinutes int
	GrossEarnings     decimal.Decimal
	OvertimeAmount    decimal.Decimal
	LatePenalty       decimal.Decimal
	EarlyLeavePenalty decimal.Decimal
	NetEarnings       decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	PersonnelName *string
}

// Completed reports whether both check-in and check-out are set.
func (a Attendance) Completed() bool {
	return a.CheckOut != nil
}
