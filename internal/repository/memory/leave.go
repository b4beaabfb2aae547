package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{}
}

// Create adds a leave request.
func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	if req.StartDate.After(req.EndDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return req, nil
}

func (r *LeaveRequestRepository) GetApprovedByEmployeeOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.Status != leave.StatusApproved {
			continue
		}
		if !req.Overlaps(start, end) {
			continue
		}
		result = append(result, req)
	}
	return result, nil
}
