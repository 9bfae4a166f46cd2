package mapping

import (
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
)

// ToModelTimesheet converts a domain Timesheet header to a model Timesheet.
// Entries are mapped separately via ToModelTimeEntry.
func ToModelTimesheet(d domain.Timesheet) models.Timesheet {
	return models.Timesheet{
		TimesheetID:        d.TimesheetID,
		EmployeeID:         d.EmployeeID,
		EmployeeCode:       d.EmployeeCode,
		EmployeeName:       d.EmployeeName,
		Department:         d.Department,
		WeekStartDate:      d.WeekStartDate,
		WeekEndDate:        d.WeekEndDate,
		WeekNumber:         d.WeekNumber,
		Year:               d.Year,
		TotalNormalHours:   d.TotalNormalHours,
		TotalOvertimeHours: d.TotalOvertimeHours,
		TotalHours:         d.TotalHours,
		Status:             string(d.Status),
		SubmittedAt:        d.SubmittedAt,
		ApprovedBy:         d.ApprovedBy,
		ApprovedByName:     d.ApprovedByName,
		ApprovedAt:         d.ApprovedAt,
		RejectionReason:    d.RejectionReason,
		IsArchived:         d.IsArchived,
		ArchiveDate:        d.ArchiveDate,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimesheet converts a model Timesheet to a domain Timesheet without
// entries; callers attach entries after loading them.
func ToDomainTimesheet(m models.Timesheet) domain.Timesheet {
	return domain.Timesheet{
		TimesheetID:        m.TimesheetID,
		EmployeeID:         m.EmployeeID,
		EmployeeCode:       m.EmployeeCode,
		EmployeeName:       m.EmployeeName,
		Department:         m.Department,
		WeekStartDate:      m.WeekStartDate,
		WeekEndDate:        m.WeekEndDate,
		WeekNumber:         m.WeekNumber,
		Year:               m.Year,
		TotalNormalHours:   m.TotalNormalHours,
		TotalOvertimeHours: m.TotalOvertimeHours,
		TotalHours:         m.TotalHours,
		Status:             domain.TimesheetStatus(m.Status),
		SubmittedAt:        m.SubmittedAt,
		ApprovedBy:         m.ApprovedBy,
		ApprovedByName:     m.ApprovedByName,
		ApprovedAt:         m.ApprovedAt,
		RejectionReason:    m.RejectionReason,
		IsArchived:         m.IsArchived,
		ArchiveDate:        m.ArchiveDate,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTimeEntry converts a domain TimeEntry to a model TimeEntry.
func ToModelTimeEntry(d domain.TimeEntry, timesheetID string) models.TimeEntry {
	return models.TimeEntry{
		EntryID:       d.EntryID,
		TimesheetID:   timesheetID,
		EntryDate:     d.Date,
		ProjectCode:   d.ProjectCode,
		Location:      d.Location,
		NormalHours:   d.NormalHours,
		OvertimeHours: d.OvertimeHours,
		ActivityCode:  d.ActivityCode,
		Remarks:       d.Remarks,
		DayOfWeek:     d.DayOfWeek,
	}
}

// ToDomainTimeEntry converts a model TimeEntry to a domain TimeEntry.
func ToDomainTimeEntry(m models.TimeEntry) domain.TimeEntry {
	return domain.TimeEntry{
		EntryID:       m.EntryID,
		Date:          m.EntryDate,
		ProjectCode:   m.ProjectCode,
		Location:      m.Location,
		NormalHours:   m.NormalHours,
		OvertimeHours: m.OvertimeHours,
		ActivityCode:  m.ActivityCode,
		Remarks:       m.Remarks,
		DayOfWeek:     m.DayOfWeek,
	}
}

