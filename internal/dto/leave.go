package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// CreateLeaveRequestRequest is bound from a multipart form; the supporting
// document file travels alongside these fields.
type CreateLeaveRequestRequest struct {
	StartDate time.Time `form:"startDate" binding:"required"`
	EndDate   time.Time `form:"endDate" binding:"required"`
	LeaveType string    `form:"leaveType" binding:"required,oneof=sick casual annual emergency other"`
	Reason    string    `form:"reason" binding:"required"`
}

// RejectLeaveRequest carries the mandatory rejection reason.
type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListLeaveRequestsParams filters the manager/admin leave listing.
type ListLeaveRequestsParams struct {
	Status   string `form:"status"`
	Employee string `form:"employee"` // matches name or employee code, case-insensitive
}

// LeaveRequestResponse is the API shape of a leave request.
type LeaveRequestResponse struct {
	LeaveRequestID     string                     `json:"leaveRequestID"`
	EmployeeID         string                     `json:"employeeID"`
	EmployeeName       string                     `json:"employeeName,omitempty"`
	EmployeeCode       string                     `json:"employeeCode,omitempty"`
	Department         string                     `json:"department,omitempty"`
	StartDate          time.Time                  `json:"startDate"`
	EndDate            time.Time                  `json:"endDate"`
	LeaveType          string                     `json:"leaveType"`
	Reason             string                     `json:"reason"`
	SupportingDocument *domain.SupportingDocument `json:"supportingDocument,omitempty"`
	Status             string                     `json:"status"`
	ApprovedBy         *string                    `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time                 `json:"approvedAt,omitempty"`
	RejectionReason    string                     `json:"rejectionReason,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
}

// ToLeaveRequestResponse converts a domain leave request; the employee
// snapshot fields are filled by the service when the reference resolves and
// left absent otherwise.
func ToLeaveRequestResponse(l *domain.LeaveRequest, emp *domain.Employee) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		LeaveRequestID:     l.LeaveRequestID,
		EmployeeID:         l.EmployeeID,
		StartDate:          l.StartDate,
		EndDate:            l.EndDate,
		LeaveType:          string(l.LeaveType),
		Reason:             l.Reason,
		SupportingDocument: l.SupportingDocument,
		Status:             string(l.Status),
		ApprovedBy:         l.ApprovedBy,
		ApprovedAt:         l.ApprovedAt,
		RejectionReason:    l.RejectionReason,
		CreatedAt:          l.CreatedAt,
	}
	if emp != nil {
		resp.EmployeeName = emp.FullName()
		resp.EmployeeCode = emp.EmployeeCode
		resp.Department = emp.Department
	}
	return resp
}
