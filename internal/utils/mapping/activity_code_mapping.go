package mapping

import (
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
)

// ToModelActivityCode converts a domain ActivityCode to a model ActivityCode
func ToModelActivityCode(d domain.ActivityCode) models.ActivityCode {
	return models.ActivityCode{
		ActivityCodeID: d.ActivityCodeID,
		Code:           d.Code,
		Name:           d.Name,
		Department:     d.Department,
		Description:    d.Description,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainActivityCode converts a model ActivityCode to a domain ActivityCode
func ToDomainActivityCode(m models.ActivityCode) domain.ActivityCode {
	return domain.ActivityCode{
		ActivityCodeID: m.ActivityCodeID,
		Code:           m.Code,
		Name:           m.Name,
		Department:     m.Department,
		Description:    m.Description,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

