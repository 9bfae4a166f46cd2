package repositories

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ReportingReader defines the read-only aggregate queries backing the
// dashboard and reporting endpoints.
type ReportingReader interface {
	// GetDashboardStats computes the admin dashboard counters in one pass.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// ListMiscEntriesByEmployees retrieves, per timesheet week, the summed
	// MISC-coded hours for the given employees. Weeks without MISC time
	// are omitted.
	ListMiscEntriesByEmployees(ctx context.Context, employeeIDs []string) ([]domain.MiscHoursDetail, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces.
type ReportingRepositoryFacade interface {
	ReportingReader
}
