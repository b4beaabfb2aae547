package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Create adds an attendance record, enforcing uniqueness on
// (employee, calendar date).
func (r *AttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == a.EmployeeID && calendar.SameDate(existing.Date, a.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.records = append(r.records, a)
	return a, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var result []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}
