package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines the read access the salary engine needs.
type AttendanceRepository interface {
	// GetByEmployeeAndDateRange retrieves all attendance records for an
	// employee whose date falls within [start, end] inclusive.
	GetByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
