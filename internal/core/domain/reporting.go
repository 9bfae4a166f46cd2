package domain

import (
	"github.com/shopspring/decimal"
)

// HoursTrackingTotals is the rollup across a set of projects:
// consumed = juniorCompleted + seniorCompleted, balance = total - consumed.
type HoursTrackingTotals struct {
	TotalHours     decimal.Decimal `json:"totalHours"`
	ConsumedHours  decimal.Decimal `json:"consumedHours"`
	VariationHours decimal.Decimal `json:"variationHours"`
	BalanceHours   decimal.Decimal `json:"balanceHours"`
}

// MiscHoursDetail is one row of the miscellaneous-hours search: an employee,
// the week label, and that week's summed MISC hours.
type MiscHoursDetail struct {
	EmployeeName string          `json:"employeeName"`
	EmployeeCode string          `json:"employeeCode"`
	Week         string          `json:"week"`
	Hours        decimal.Decimal `json:"hours"`
}

// DashboardStats holds the admin dashboard counters. Resubmitted is always
// zero: no resubmission transition exists in the lifecycle.
type DashboardStats struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalTimesheets       int64 `json:"totalTimesheets"`
	ApprovedTimesheets    int64 `json:"approvedTimesheets"`
	PendingTimesheets     int64 `json:"pendingTimesheets"`
	RejectedTimesheets    int64 `json:"rejectedTimesheets"`
	ResubmittedTimesheets int64 `json:"resubmittedTimesheets"`
	MiscHoursCount        int64 `json:"miscHoursCount"`
}
