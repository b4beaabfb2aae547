package payroll

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// CalculateRates converts a base monthly salary into per-day, per-hour and
// per-minute pay rates. workingDays and dailyHours must both be positive;
// the guards exist so a misconfigured calendar surfaces as an error instead
// of a division by zero.
func CalculateRates(baseSalary decimal.Decimal, workingDays int, dailyHours float64) (payroll.Rates, error) {
	if workingDays <= 0 {
		return payroll.Rates{}, payroll.ErrNoWorkingDays
	}
	if dailyHours <= 0 {
		return payroll.Rates{}, payroll.ErrInvalidDailyHours
	}

	dailyRate := baseSalary.Div(decimal.NewFromInt(int64(workingDays)))
	hourlyRate := dailyRate.Div(decimal.NewFromFloat(dailyHours))
	minuteRate := hourlyRate.Div(minutesPerHour)

	return payroll.Rates{
		DailyRate:  dailyRate,
		HourlyRate: hourlyRate,
		MinuteRate: minuteRate,
	}, nil
}
