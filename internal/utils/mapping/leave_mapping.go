package mapping

import (
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
)

// ToModelLeaveRequest converts a domain LeaveRequest to a model LeaveRequest
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	m := models.LeaveRequest{
		LeaveRequestID:  d.LeaveRequestID,
		EmployeeID:      d.EmployeeID,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		LeaveType:       string(d.LeaveType),
		Reason:          d.Reason,
		Status:          string(d.Status),
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		RejectionReason: d.RejectionReason,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if doc := d.SupportingDocument; doc != nil {
		m.DocumentFilename = &doc.Filename
		m.DocumentOriginalName = &doc.OriginalName
		m.DocumentPath = &doc.Path
		m.DocumentSize = &doc.Size
	}
	return m
}

// ToDomainLeaveRequest converts a model LeaveRequest to a domain LeaveRequest
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	d := domain.LeaveRequest{
		LeaveRequestID:  m.LeaveRequestID,
		EmployeeID:      m.EmployeeID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		LeaveType:       domain.LeaveType(m.LeaveType),
		Reason:          m.Reason,
		Status:          domain.LeaveStatus(m.Status),
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.DocumentFilename != nil {
		d.SupportingDocument = &domain.SupportingDocument{
			Filename:     *m.DocumentFilename,
			OriginalName: derefString(m.DocumentOriginalName),
			Path:         derefString(m.DocumentPath),
			Size:         derefInt64(m.DocumentSize),
		}
	}
	return d
}


func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
