package repositories

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ListLeaveRequestsFilter narrows the leave request listing; zero values
// mean "all".
type ListLeaveRequestsFilter struct {
	EmployeeID string
	Status     domain.LeaveStatus
	Limit      int
	Offset     int
}

// LeaveReader defines read operations for leave request data.
type LeaveReader interface {
	// FindLeaveRequestByID retrieves a leave request by internal ID.
	FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves leave requests matching the filter,
	// newest first.
	ListLeaveRequests(ctx context.Context, filter ListLeaveRequestsFilter) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave request data.
type LeaveWriter interface {
	// SaveLeaveRequest persists a new leave request.
	SaveLeaveRequest(ctx context.Context, lr domain.LeaveRequest) error

	// TransitionLeaveStatus performs a guarded status flip: the update only
	// applies while the row still holds fromStatus. It reports whether a
	// row was changed.
	TransitionLeaveStatus(ctx context.Context, leaveRequestID string, fromStatus, toStatus domain.LeaveStatus, approvedBy *string, approvedAt *time.Time, rejectionReason string, updatedBy string, updatedAt time.Time) (bool, error)
}

// LeaveRepositoryFacade combines all leave repository interfaces.
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
