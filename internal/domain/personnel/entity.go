package personnel

import (
	"time"

	"github.com/shopspring/decimal"
)

type Personnel struct {
	ID          string
	PersonnelNo string
	Name        string
	Surname     string

	// MonthlySalary is the source value; the three wage rates are derived
	// from it and rewritten together on every salary change.
	MonthlySalary decimal.Decimal
	DailyWage     decimal.Decimal
	HourlyWage    decimal.Decimal
	MinuteWage    decimal.Decimal

	// Scheduled shift window, "HH:MM" time-of-day.
	ShiftStart string
	ShiftEnd   string

	MonthlyLeaveDays   int
	RemainingLeaveDays int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Personnel) FullName() string {
	return p.Name + " " + p.Surname
}
