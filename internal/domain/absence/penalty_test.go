package absence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolvePenaltyUnexcusedNoShow(t *testing.T) {
	dailyWage := decimal.NewFromInt(1000)

	got := ResolvePenalty(KindNoShow, false, nil, dailyWage)
	assert.True(t, got.Equal(dailyWage), "unexcused no-show should cost the daily wage, got %s", got)
}

func TestResolvePenaltyExcusedDefaultsToZero(t *testing.T) {
	got := ResolvePenalty(KindNoShow, true, nil, decimal.NewFromInt(1000))
	assert.True(t, got.IsZero())
}

func TestResolvePenaltyOtherKindsDefaultToZero(t *testing.T) {
	dailyWage := decimal.NewFromInt(1000)

	for _, kind := range []Kind{KindLate, KindEarlyLeave, KindUnauthorized} {
		got := ResolvePenalty(kind, false, nil, dailyWage)
		assert.True(t, got.IsZero(), "kind %s should default to zero, got %s", kind, got)
	}
}

func TestResolvePenaltyExplicitWins(t *testing.T) {
	explicit := decimal.NewFromInt(250)

	got := ResolvePenalty(KindNoShow, false, &explicit, decimal.NewFromInt(1000))
	assert.True(t, got.Equal(explicit))
}

func TestResolvePenaltyExplicitZeroIsVerbatim(t *testing.T) {
	zero := decimal.Zero

	got := ResolvePenalty(KindNoShow, false, &zero, decimal.NewFromInt(1000))
	assert.True(t, got.IsZero(), "an explicit zero waives the default, got %s", got)
}

func TestResolvePenaltyExcusedWithExplicitAmount(t *testing.T) {
	explicit := decimal.NewFromInt(100)

	got := ResolvePenalty(KindLate, true, &explicit, decimal.NewFromInt(1000))
	assert.True(t, got.Equal(explicit))
}
