package absence

import "github.com/shopspring/decimal"

// ResolvePenalty decides the stored penalty for a new absence record.
//
// An explicit amount wins verbatim, zero included. Without one, an unexcused
// no-show costs a full day's wage; every other case costs nothing. An excused
// record with a nonzero explicit penalty is accepted as given.
func ResolvePenalty(kind Kind, excused bool, explicit *decimal.Decimal, dailyWage decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	if !excused && kind == KindNoShow {
		return dailyWage
	}
	return decimal.Zero
}
