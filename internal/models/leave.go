package models

import "time"

// LeaveRequest is the row shape of the leave_requests table. The supporting
// document columns are null when no file was uploaded.
type LeaveRequest struct {
	LeaveRequestID string    `db:"leave_request_id"`
	EmployeeID     string    `db:"employee_id"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	LeaveType      string    `db:"leave_type"`
	Reason         string    `db:"reason"`

	DocumentFilename     *string `db:"document_filename"`
	DocumentOriginalName *string `db:"document_original_name"`
	DocumentPath         *string `db:"document_path"`
	DocumentSize         *int64  `db:"document_size"`

	Status          string     `db:"status"`
	ApprovedBy      *string    `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	RejectionReason string     `db:"rejection_reason"`

	AuditFields
}
