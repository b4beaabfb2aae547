package payroll

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRates(t *testing.T) {
	base := decimal.NewFromInt(10000)

	rates, err := CalculateRates(base, 26, 8)
	require.NoError(t, err)

	wantDaily := base.Div(decimal.NewFromInt(26))
	assert.True(t, rates.DailyRate.Equal(wantDaily), "daily rate: got %s", rates.DailyRate)
	assert.True(t, rates.HourlyRate.Equal(wantDaily.Div(decimal.NewFromInt(8))), "hourly rate: got %s", rates.HourlyRate)
	assert.True(t, rates.MinuteRate.Equal(rates.HourlyRate.Div(decimal.NewFromInt(60))), "minute rate: got %s", rates.MinuteRate)
}

func TestCalculateRates_FractionalHours(t *testing.T) {
	rates, err := CalculateRates(decimal.NewFromInt(9000), 20, 7.5)
	require.NoError(t, err)

	wantHourly := decimal.NewFromInt(9000).
		Div(decimal.NewFromInt(20)).
		Div(decimal.NewFromFloat(7.5))
	assert.True(t, rates.HourlyRate.Equal(wantHourly), "hourly rate: got %s", rates.HourlyRate)
}

func TestCalculateRates_InvalidConfiguration(t *testing.T) {
	base := decimal.NewFromInt(10000)

	_, err := CalculateRates(base, 0, 8)
	assert.ErrorIs(t, err, payroll.ErrNoWorkingDays)

	_, err = CalculateRates(base, -1, 8)
	assert.ErrorIs(t, err, payroll.ErrNoWorkingDays)

	_, err = CalculateRates(base, 26, 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidDailyHours)
}
