package payroll

import (
	"github.com/shopspring/decimal"
)

// Rates - pay rates derived from a base monthly salary.
type Rates struct {
	DailyRate  decimal.Decimal
	HourlyRate decimal.Decimal
	MinuteRate decimal.Decimal
}

// SalaryCalculation - the derived result of one salary computation.
// It is a value object; persisting it as a salary record for the period is
// the caller's responsibility.
type SalaryCalculation struct {
	EmployeeID string
	Month      int
	Year       int

	BaseSalary  decimal.Decimal
	WorkingDays int

	PresentDays      int
	AbsentDays       int
	LeaveDays        int
	LateCount        int
	TotalLateMinutes int

	// ConsecutiveLeaveDays is the longest run of calendar days continuously
	// covered by approved leave during the month, including any weekend day
	// bracketed by leave on both sides.
	ConsecutiveLeaveDays int

	LateDeductions   decimal.Decimal
	LeaveDeductions  decimal.Decimal
	AbsentDeductions decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalSalary      decimal.Decimal

	DailyRate  decimal.Decimal
	HourlyRate decimal.Decimal
	MinuteRate decimal.Decimal
}

// Policy - deduction policy knobs. Start from DefaultPolicy.
type Policy struct {
	// WeekendDays overrides the weekday names treated as paid non-working
	// days. When empty, the settings record's configured weekend set is
	// used (which itself defaults to Sunday-only).
	WeekendDays []string

	// DailyHours is the working-hour span used for rate derivation when
	// DeriveDailyHours is false.
	DailyHours float64

	// DeriveDailyHours derives the daily hour span from the settings'
	// configured working-hours start/end instead of using DailyHours.
	DeriveDailyHours bool

	// LateGraceMinutes is the per-arrival allowance before late minutes
	// become deductible.
	LateGraceMinutes int

	// HolidayResetsLeaveStreak makes a configured holiday break a
	// consecutive-leave streak instead of bridging it.
	HolidayResetsLeaveStreak bool
}

// DefaultPolicy reproduces the production deduction behavior: the settings'
// weekend set (Sunday-only unless configured otherwise), a fixed 8-hour day,
// zero grace period, and holidays bridging a leave streak.
func DefaultPolicy() Policy {
	return Policy{
		DailyHours:       8,
		LateGraceMinutes: 0,
	}
}
