package personnel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveWageRates(t *testing.T) {
	rates := DeriveWageRates(decimal.NewFromInt(30000), 30, 9)

	assert.True(t, rates.Daily.Equal(decimal.NewFromInt(1000)), "daily wage should be 1000, got %s", rates.Daily)

	expectedHourly := decimal.NewFromInt(1000).Div(decimal.NewFromInt(9))
	assert.True(t, rates.Hourly.Equal(expectedHourly), "hourly wage should be %s, got %s", expectedHourly, rates.Hourly)

	expectedMinute := expectedHourly.Div(decimal.NewFromInt(60))
	assert.True(t, rates.Minute.Equal(expectedMinute), "minute wage should be %s, got %s", expectedMinute, rates.Minute)
}

func TestDeriveWageRatesConsistency(t *testing.T) {
	salaries := []int64{1, 950, 30000, 45000, 123456}

	for _, s := range salaries {
		rates := DeriveWageRates(decimal.NewFromInt(s), 30, 9)

		// Each rate must follow from the previous one, not from
		// independent rounding of the salary.
		require.True(t, rates.Hourly.Equal(rates.Daily.Div(decimal.NewFromInt(9))), "salary %d", s)
		require.True(t, rates.Minute.Equal(rates.Hourly.Div(decimal.NewFromInt(60))), "salary %d", s)
	}
}

func TestDeriveWageRatesCustomDivisors(t *testing.T) {
	rates := DeriveWageRates(decimal.NewFromInt(22000), 22, 8)

	assert.True(t, rates.Daily.Equal(decimal.NewFromInt(1000)))
	assert.True(t, rates.Hourly.Equal(decimal.NewFromInt(125)))
}
