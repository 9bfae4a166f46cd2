package domain

import "time"

// LeaveType enumerates the leave categories an employee may request.
type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeaveCasual    LeaveType = "casual"
	LeaveAnnual    LeaveType = "annual"
	LeaveEmergency LeaveType = "emergency"
	LeaveOther     LeaveType = "other"
)

// LeaveStatus tracks the approval state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// SupportingDocument describes an uploaded file attached to a leave request.
// Files live on local disk under the configured upload directory.
type SupportingDocument struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

// LeaveRequest is an employee's request for time off, optionally backed by a
// supporting document, moving pending -> approved/rejected.
type LeaveRequest struct {
	LeaveRequestID     string              `json:"leaveRequestID"`
	EmployeeID         string              `json:"employeeID"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	LeaveType          LeaveType           `json:"leaveType"`
	Reason             string              `json:"reason"`
	SupportingDocument *SupportingDocument `json:"supportingDocument,omitempty"`
	Status             LeaveStatus         `json:"status"`
	ApprovedBy         *string             `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time          `json:"approvedAt,omitempty"`
	RejectionReason    string              `json:"rejectionReason,omitempty"`
	AuditFields
}
