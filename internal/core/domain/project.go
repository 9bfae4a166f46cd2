package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus tracks delivery state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Project is a billable engagement that timesheet entries reference by code.
// Junior/senior hour splits carry the budget; the Completed counterparts
// accumulate delivered hours and feed the consumed/balance rollups.
type Project struct {
	ProjectID          string          `json:"projectID"`
	PlNo               string          `json:"plNo"` // unique project/ledger number
	Name               string          `json:"name"`
	TotalHours         decimal.Decimal `json:"totalHours"`
	JuniorHours        decimal.Decimal `json:"juniorHours"`
	JuniorCompleted    decimal.Decimal `json:"juniorCompleted"`
	SeniorHours        decimal.Decimal `json:"seniorHours"`
	SeniorCompleted    decimal.Decimal `json:"seniorCompleted"`
	OriginalTotalHours *decimal.Decimal `json:"originalTotalHours,omitempty"`
	VariationHours     decimal.Decimal `json:"variationHours"`
	Status             ProjectStatus   `json:"status"`
	StartDate          *time.Time      `json:"startDate,omitempty"`
	EndDate            *time.Time      `json:"endDate,omitempty"`
	AssignedEmployees  []string        `json:"assignedEmployees,omitempty"` // EmployeeID references
	Departments        []string        `json:"departments,omitempty"`
	AuditFields
}

// ConsumedHours is the delivered total across junior and senior work.
func (p Project) ConsumedHours() decimal.Decimal {
	return p.JuniorCompleted.Add(p.SeniorCompleted)
}

// BalanceHours is the remaining budget: total minus consumed.
func (p Project) BalanceHours() decimal.Decimal {
	return p.TotalHours.Sub(p.ConsumedHours())
}
