package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the on-demand aggregate over one personnel and one inclusive
// date range. It is never stored: every request recomputes it from the
// attendance, absence and adjustment ledgers.
type Summary struct {
	PersonnelID string    `json:"personnel_id"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`

	WorkedDays    int `json:"worked_days"`
	WorkedMinutes int `json:"worked_minutes"`

	GrossEarnings     decimal.Decimal `json:"gross_earnings"`
	OvertimeAmount    decimal.Decimal `json:"overtime_amount"`
	LatePenalty       decimal.Decimal `json:"late_penalty"`
	EarlyLeavePenalty decimal.Decimal `json:"early_leave_penalty"`
	AbsencePenalty    decimal.Decimal `json:"absence_penalty"`
	AdjustmentTotal   decimal.Decimal `json:"adjustment_total"`

	// TotalDeductions collects every subtraction: late, early-leave and
	// absence penalties plus penalty-kind adjustments.
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	// NetEarnings = sum of attendance nets - absence penalties + signed
	// adjustments, floored at zero per record but not per summary.
	NetEarnings decimal.Decimal `json:"net_earnings"`
}

// Zero returns an all-zero summary for a range with no records; an empty
// window is a valid result, not an error.
func Zero(personnelID string, from, to time.Time) Summary {
	return Summary{
		PersonnelID:       personnelID,
		From:              from,
		To:                to,
		GrossEarnings:     decimal.Zero,
		OvertimeAmount:    decimal.Zero,
		LatePenalty:       decimal.Zero,
		EarlyLeavePenalty: decimal.Zero,
		AbsencePenalty:    decimal.Zero,
		AdjustmentTotal:   decimal.Zero,
		TotalDeductions:   decimal.Zero,
		NetEarnings:       decimal.Zero,
	}
}
