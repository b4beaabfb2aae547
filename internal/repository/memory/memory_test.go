package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestSettingsRepository(t *testing.T) {
	repo := NewSettingsRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)

	err = repo.Set(settings.Settings{WorkingHoursStart: "09:00", WorkingHoursEnd: "17:00"})
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.WorkingHoursStart)
	assert.NotEmpty(t, got.ID)
}

func TestSettingsRepository_RejectsInvalidConfiguration(t *testing.T) {
	repo := NewSettingsRepository()

	err := repo.Set(settings.Settings{WorkingHoursStart: "9am", WorkingHoursEnd: "17:00"})
	assert.ErrorIs(t, err, settings.ErrInvalidWorkingHours)

	// End before start.
	err = repo.Set(settings.Settings{WorkingHoursStart: "17:00", WorkingHoursEnd: "09:00"})
	assert.ErrorIs(t, err, settings.ErrInvalidWorkingHours)

	err = repo.Set(settings.Settings{
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "17:00",
		WeekendDays:       []string{"Funday"},
	})
	assert.ErrorIs(t, err, settings.ErrInvalidWeekendDay)
}

func TestAttendanceRepository_UniquePerEmployeeAndDate(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       day(2025, 8, 4),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       day(2025, 8, 4).Add(10 * time.Hour), // same calendar day
		Status:     attendance.StatusLate,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyExists)

	// Same date for another employee is fine.
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-2",
		Date:       day(2025, 8, 4),
		Status:     attendance.StatusPresent,
	})
	assert.NoError(t, err)
}

func TestAttendanceRepository_DateRangeIsInclusive(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	for _, d := range []time.Time{day(2025, 7, 31), day(2025, 8, 1), day(2025, 8, 31), day(2025, 9, 1)} {
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeID: "emp-1",
			Date:       d,
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	records, err := repo.GetByEmployeeAndDateRange(ctx, "emp-1", day(2025, 8, 1), day(2025, 8, 31))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLeaveRequestRepository_OverlapQuery(t *testing.T) {
	repo := NewLeaveRequestRepository()
	ctx := context.Background()

	seed := []leave.LeaveRequest{
		{EmployeeID: "emp-1", StartDate: day(2025, 7, 28), EndDate: day(2025, 8, 2), Status: leave.StatusApproved},
		{EmployeeID: "emp-1", StartDate: day(2025, 8, 15), EndDate: day(2025, 8, 17), Status: leave.StatusApproved},
		{EmployeeID: "emp-1", StartDate: day(2025, 8, 20), EndDate: day(2025, 8, 21), Status: leave.StatusPending},
		{EmployeeID: "emp-1", StartDate: day(2025, 9, 1), EndDate: day(2025, 9, 3), Status: leave.StatusApproved},
		{EmployeeID: "emp-2", StartDate: day(2025, 8, 5), EndDate: day(2025, 8, 6), Status: leave.StatusApproved},
	}
	for _, r := range seed {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	got, err := repo.GetApprovedByEmployeeOverlapping(ctx, "emp-1", day(2025, 8, 1), day(2025, 8, 31))
	require.NoError(t, err)

	// The cross-month request counts, the pending and September ones do not.
	require.Len(t, got, 2)
	assert.Equal(t, day(2025, 7, 28), got[0].StartDate)
	assert.Equal(t, day(2025, 8, 15), got[1].StartDate)
}

func TestLeaveRequestRepository_RejectsInvertedRange(t *testing.T) {
	repo := NewLeaveRequestRepository()

	_, err := repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  day(2025, 8, 10),
		EndDate:    day(2025, 8, 5),
		Status:     leave.StatusApproved,
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}
