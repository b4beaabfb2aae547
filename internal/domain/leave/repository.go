package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines the read access the salary engine needs.
type LeaveRequestRepository interface {
	// GetApprovedByEmployeeOverlapping retrieves all APPROVED leave requests
	// for an employee whose [StartDate, EndDate] range intersects
	// [start, end] inclusive. Requests only partially inside the range are
	// included.
	GetApprovedByEmployeeOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}
