package payroll

import "errors"

var (
	ErrNoWorkingDays      = errors.New("month has no working days, check weekend and holiday configuration")
	ErrInvalidDailyHours  = errors.New("daily working hours must be greater than zero")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
	ErrInvalidBaseSalary  = errors.New("base salary must be greater than zero")
	ErrEmployeeIDRequired = errors.New("employee id is required")
)
