package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// leaveService provides the leave request workflow.
type leaveService struct {
	leaveRepo    portsrepo.LeaveRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewLeaveService creates a new leave service.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Ensure leaveService implements the portssvc.LeaveSvcFacade interface
var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) GetLeaveRequestByID(ctx context.Context, leaveRequestID string, requestingEmployeeID string) (*domain.LeaveRequest, error) {
	lr, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if lr.EmployeeID != requestingEmployeeID {
		requester, err := s.employeeRepo.FindEmployeeByID(ctx, requestingEmployeeID)
		if err != nil {
			return nil, err
		}
		if !requester.Role.CanManageTimesheets() {
			return nil, apperrors.ErrForbidden
		}
	}
	return lr, nil
}

// ListLeaveRequests returns the filtered requests plus the employees they
// belong to, so handlers can fill the name/code snapshot in responses.
func (s *leaveService) ListLeaveRequests(ctx context.Context, params dto.ListLeaveRequestsParams) ([]domain.LeaveRequest, map[string]domain.Employee, error) {
	filter := portsrepo.ListLeaveRequestsFilter{
		Status: domain.LeaveStatus(params.Status),
	}
	requests, err := s.leaveRepo.ListLeaveRequests(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(requests))
	seen := make(map[string]bool, len(requests))
	for _, lr := range requests {
		if !seen[lr.EmployeeID] {
			seen[lr.EmployeeID] = true
			ids = append(ids, lr.EmployeeID)
		}
	}
	employees, err := s.employeeRepo.FindEmployeesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	// The employee filter matches name or code, resolved after the load
	// since the snapshot lives on the employee record.
	if params.Employee != "" {
		needle := strings.ToLower(params.Employee)
		filtered := requests[:0]
		for _, lr := range requests {
			emp, ok := employees[lr.EmployeeID]
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(emp.FullName()), needle) ||
				strings.Contains(strings.ToLower(emp.EmployeeCode), needle) {
				filtered = append(filtered, lr)
			}
		}
		requests = filtered
	}

	return requests, employees, nil
}

func (s *leaveService) ListMyLeaveRequests(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	return s.leaveRepo.ListLeaveRequests(ctx, portsrepo.ListLeaveRequestsFilter{EmployeeID: employeeID})
}

func (s *leaveService) CreateLeaveRequest(ctx context.Context, employeeID string, req dto.CreateLeaveRequestRequest, doc *domain.SupportingDocument) (*domain.LeaveRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}

	now := time.Now().UTC()
	lr := domain.LeaveRequest{
		LeaveRequestID:     uuid.NewString(),
		EmployeeID:         employeeID,
		StartDate:          start,
		EndDate:            end,
		LeaveType:          domain.LeaveType(req.LeaveType),
		Reason:             req.Reason,
		SupportingDocument: doc,
		Status:             domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.leaveRepo.SaveLeaveRequest(ctx, lr); err != nil {
		return nil, err
	}
	logger.Info("Leave request created", slog.String("leave_request_id", lr.LeaveRequestID), slog.String("employee_id", employeeID))
	return &lr, nil
}

func (s *leaveService) ApproveLeaveRequest(ctx context.Context, leaveRequestID string, approverID string) (*domain.LeaveRequest, error) {
	lr, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	changed, err := s.leaveRepo.TransitionLeaveStatus(ctx, leaveRequestID, domain.LeavePending, domain.LeaveApproved, &approverID, &now, "", approverID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: leave request has already been processed", apperrors.ErrInvalidState)
	}

	lr.Status = domain.LeaveApproved
	lr.ApprovedBy = &approverID
	lr.ApprovedAt = &now
	lr.LastUpdatedAt = now
	lr.LastUpdatedBy = approverID
	return lr, nil
}

func (s *leaveService) RejectLeaveRequest(ctx context.Context, leaveRequestID string, approverID string, reason string) (*domain.LeaveRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	lr, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	changed, err := s.leaveRepo.TransitionLeaveStatus(ctx, leaveRequestID, domain.LeavePending, domain.LeaveRejected, nil, nil, reason, approverID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: leave request has already been processed", apperrors.ErrInvalidState)
	}

	lr.Status = domain.LeaveRejected
	lr.RejectionReason = reason
	lr.LastUpdatedAt = now
	lr.LastUpdatedBy = approverID
	return lr, nil
}
