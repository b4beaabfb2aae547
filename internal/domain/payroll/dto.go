package payroll

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSalaryRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeSalaryInput - one entry of a batch payroll run.
type EmployeeSalaryInput struct {
	EmployeeID string          `json:"employee_id"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

// EmployeeSalaryResult - per-employee outcome of a batch payroll run.
// Err is set when that employee's calculation failed; the rest of the run
// is unaffected.
type EmployeeSalaryResult struct {
	EmployeeID  string
	Calculation SalaryCalculation
	Err         error
}

// MonthWorkingDays - one month of a working-days projection.
type MonthWorkingDays struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	MonthName   string `json:"month_name"`
	TotalDays   int    `json:"total_days"`
	WorkingDays int    `json:"working_days"`
	WeekendDays int    `json:"weekend_days"`
}
