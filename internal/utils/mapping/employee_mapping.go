package mapping

import (
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:             d.EmployeeID,
		EmployeeCode:           d.EmployeeCode,
		FirstName:              d.FirstName,
		LastName:               d.LastName,
		Username:               d.Username,
		Email:                  d.Email,
		Phone:                  d.Phone,
		Role:                   string(d.Role),
		Department:             d.Department,
		JoinDate:               d.JoinDate,
		Status:                 string(d.Status),
		PasswordHash:           d.PasswordHash,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:             m.EmployeeID,
		EmployeeCode:           m.EmployeeCode,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		Username:               m.Username,
		Email:                  m.Email,
		Phone:                  m.Phone,
		Role:                   domain.EmployeeRole(m.Role),
		Department:             m.Department,
		JoinDate:               m.JoinDate,
		Status:                 domain.EmployeeStatus(m.Status),
		PasswordHash:           m.PasswordHash,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
	}
}

