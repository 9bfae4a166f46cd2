package services

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// LeaveSvcFacade defines operations for the leave request workflow.
type LeaveSvcFacade interface {
	// GetLeaveRequestByID retrieves a leave request. Non-managers may only
	// read their own requests.
	GetLeaveRequestByID(ctx context.Context, leaveRequestID string, requestingEmployeeID string) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves leave requests for managers, optionally
	// filtered by status and employee name/code.
	ListLeaveRequests(ctx context.Context, params dto.ListLeaveRequestsParams) ([]domain.LeaveRequest, map[string]domain.Employee, error)

	// ListMyLeaveRequests retrieves the requesting employee's leave requests.
	ListMyLeaveRequests(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// CreateLeaveRequest files a new leave request in pending state, with
	// an optional supporting document already stored on disk.
	CreateLeaveRequest(ctx context.Context, employeeID string, req dto.CreateLeaveRequestRequest, doc *domain.SupportingDocument) (*domain.LeaveRequest, error)

	// ApproveLeaveRequest moves a pending request to approved.
	ApproveLeaveRequest(ctx context.Context, leaveRequestID string, approverID string) (*domain.LeaveRequest, error)

	// RejectLeaveRequest moves a pending request to rejected with a reason.
	RejectLeaveRequest(ctx context.Context, leaveRequestID string, approverID string, reason string) (*domain.LeaveRequest, error)
}
