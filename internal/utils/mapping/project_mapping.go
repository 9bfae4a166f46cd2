package mapping

import (
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:          d.ProjectID,
		PlNo:               d.PlNo,
		Name:               d.Name,
		TotalHours:         d.TotalHours,
		JuniorHours:        d.JuniorHours,
		JuniorCompleted:    d.JuniorCompleted,
		SeniorHours:        d.SeniorHours,
		SeniorCompleted:    d.SeniorCompleted,
		OriginalTotalHours: d.OriginalTotalHours,
		VariationHours:     d.VariationHours,
		Status:             string(d.Status),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		AssignedEmployees:  d.AssignedEmployees,
		Departments:        d.Departments,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:          m.ProjectID,
		PlNo:               m.PlNo,
		Name:               m.Name,
		TotalHours:         m.TotalHours,
		JuniorHours:        m.JuniorHours,
		JuniorCompleted:    m.JuniorCompleted,
		SeniorHours:        m.SeniorHours,
		SeniorCompleted:    m.SeniorCompleted,
		OriginalTotalHours: m.OriginalTotalHours,
		VariationHours:     m.VariationHours,
		Status:             domain.ProjectStatus(m.Status),
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		AssignedEmployees:  m.AssignedEmployees,
		Departments:        m.Departments,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

