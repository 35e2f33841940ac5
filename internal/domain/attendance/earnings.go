package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EarningsPolicy carries the shift multipliers applied on top of the
// per-minute wage. Values come from configuration, not ambient globals.
type EarningsPolicy struct {
	OvertimeMultiplier          decimal.Decimal
	LatePenaltyMultiplier       decimal.Decimal
	EarlyLeavePenaltyMultiplier decimal.Decimal
}

// EarningsBreakdown is the result of comparing actual clock times against the
// scheduled shift window and pricing the minute buckets.
type EarningsBreakdown struct {
	WorkedMinutes     int
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int

	Gross             decimal.Decimal
	OvertimeAmount    decimal.Decimal
	LatePenalty       decimal.Decimal
	EarlyLeavePenalty decimal.Decimal
	Net               decimal.Decimal
}

// ComputeEarnings classifies worked time into regular/overtime/late/early-leave
// minute buckets and prices them with the given per-minute wage.
//
// It is a pure function of its inputs: recomputing with the same check-in,
// check-out, shift window and rate always yields the same breakdown. Overtime
// minutes are a subset of worked minutes; gross covers all worked minutes and
// overtime earns an additional bonus on top, never a second gross payment.
func ComputeEarnings(shiftStart, shiftEnd string, checkIn, checkOut time.Time, minuteWage decimal.Decimal, policy EarningsPolicy) (EarningsBreakdown, error) {
	if checkOut.Before(checkIn) {
		return EarningsBreakdown{}, ErrCheckOutBeforeCheckIn
	}

	startMin, err := parseTimeOfDay(shiftStart)
	if err != nil {
		return EarningsBreakdown{}, fmt.Errorf("invalid shift start %q: %w", shiftStart, err)
	}
	endMin, err := parseTimeOfDay(shiftEnd)
	if err != nil {
		return EarningsBreakdown{}, fmt.Errorf("invalid shift end %q: %w", shiftEnd, err)
	}

	var b EarningsBreakdown
	b.WorkedMinutes = int(checkOut.Sub(checkIn).Minutes())

	inMin := minutesOfDay(checkIn)
	outMin := minutesOfDay(checkOut)

	if inMin > startMin {
		b.LateMinutes = inMin - startMin
	}
	if outMin < endMin {
		b.EarlyLeaveMinutes = endMin - outMin
	}
	if outMin > endMin {
		b.OvertimeMinutes = outMin - endMin
	}

	b.Gross = minuteWage.Mul(decimal.NewFromInt(int64(b.WorkedMinutes)))
	b.OvertimeAmount = minuteWage.
		Mul(decimal.NewFromInt(int64(b.OvertimeMinutes))).
		Mul(policy.OvertimeMultiplier)
	b.LatePenalty = minuteWage.
		Mul(decimal.NewFromInt(int64(b.LateMinutes))).
		Mul(policy.LatePenaltyMultiplier)
	b.EarlyLeavePenalty = minuteWage.
		Mul(decimal.NewFromInt(int64(b.EarlyLeaveMinutes))).
		Mul(policy.EarlyLeavePenaltyMultiplier)

	net := b.Gross.Add(b.OvertimeAmount).Sub(b.LatePenalty).Sub(b.EarlyLeavePenalty)
	if net.IsNegative() {
		net = decimal.Zero
	}
	b.Net = net

	return b, nil
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
