package leave

import (
	"time"
)

// LeaveRequestStatus enum
type LeaveRequestStatus string

const (
	StatusPending  LeaveRequestStatus = "PENDING"
	StatusApproved LeaveRequestStatus = "APPROVED"
	StatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest entity. StartDate and EndDate form an inclusive calendar-date
// range; time components are ignored. A request may span into adjacent
// months.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time

	Reason string

	Status     LeaveRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Covers reports whether the request's date range contains the given
// calendar day. Comparison is date-only.
func (r LeaveRequest) Covers(t time.Time) bool {
	day := truncateToDate(t)
	return !day.Before(truncateToDate(r.StartDate)) && !day.After(truncateToDate(r.EndDate))
}

// Overlaps reports whether the request's range intersects [start, end]
// inclusive. Comparison is date-only.
func (r LeaveRequest) Overlaps(start, end time.Time) bool {
	return !truncateToDate(r.StartDate).After(truncateToDate(end)) &&
		!truncateToDate(r.EndDate).Before(truncateToDate(start))
}
