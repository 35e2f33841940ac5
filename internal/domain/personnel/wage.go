package personnel

import "github.com/shopspring/decimal"

// WageRates are the per-day, per-hour and per-minute rates derived from a
// monthly salary. They are never mutated independently: whenever the salary
// changes, all three are recomputed and persisted in the same statement.
type WageRates struct {
	Daily  decimal.Decimal
	Hourly decimal.Decimal
	Minute decimal.Decimal
}

var sixty = decimal.NewFromInt(60)

// DeriveWageRates converts a monthly salary into daily/hourly/minute rates.
// daysPerMonth and hoursPerDay come from configuration and are validated
// positive at startup.
func DeriveWageRates(monthlySalary decimal.Decimal, daysPerMonth, hoursPerDay int) WageRates {
	daily := monthlySalary.Div(decimal.NewFromInt(int64(daysPerMonth)))
	hourly := daily.Div(decimal.NewFromInt(int64(hoursPerDay)))
	return WageRates{
		Daily:  daily,
		Hourly: hourly,
		Minute: hourly.Div(sixty),
	}
}
