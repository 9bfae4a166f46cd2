package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the row shape of the projects table. AssignedEmployees and
// Departments are stored as Postgres text arrays.
type Project struct {
	ProjectID          string           `db:"project_id"`
	PlNo               string           `db:"pl_no"`
	Name               string           `db:"name"`
	TotalHours         decimal.Decimal  `db:"total_hours"`
	JuniorHours        decimal.Decimal  `db:"junior_hours"`
	JuniorCompleted    decimal.Decimal  `db:"junior_completed"`
	SeniorHours        decimal.Decimal  `db:"senior_hours"`
	SeniorCompleted    decimal.Decimal  `db:"senior_completed"`
	OriginalTotalHours *decimal.Decimal `db:"original_total_hours"`
	VariationHours     decimal.Decimal  `db:"variation_hours"`
	Status             string           `db:"status"`
	StartDate          *time.Time       `db:"start_date"`
	EndDate            *time.Time       `db:"end_date"`
	AssignedEmployees  []string         `db:"assigned_employees"`
	Departments        []string         `db:"departments"`
	AuditFields
}
