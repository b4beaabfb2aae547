package payroll

import (
	"context"
	"time"
)

// SalaryService computes attendance classification and salary breakdowns.
type SalaryService interface {
	// CalculateSalary computes one employee's salary for one month, from a
	// snapshot of settings, attendance, and approved leave.
	CalculateSalary(ctx context.Context, req CalculateSalaryRequest) (SalaryCalculation, error)

	// CalculateMonth runs the calculation for many employees over the same
	// month, loading settings and deriving the month calendar once.
	CalculateMonth(ctx context.Context, month, year int, employees []EmployeeSalaryInput) ([]EmployeeSalaryResult, error)

	// WorkingDaysPreview projects working-day counts for count months
	// starting at the month containing from, using the configured weekend
	// set and holiday calendar.
	WorkingDaysPreview(ctx context.Context, from time.Time, count int) ([]MonthWorkingDays, error)
}
