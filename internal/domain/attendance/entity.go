package attendance

import (
	"time"
)

// Status enum
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusHoliday Status = "HOLIDAY"
)

// Attendance - one record per (employee, calendar date).
// Created by check-in/check-out actions or administrative manual entry;
// the salary engine only ever reads these.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	IsLate       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAbsent reports whether the record explicitly marks the employee absent.
// Every other status counts as present in some form for payroll purposes.
func (a Attendance) IsAbsent() bool {
	return a.Status == StatusAbsent
}
