package services

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// ReportingService defines operations for generating project and hour reports.
type ReportingService interface {
	// HoursTracking returns the matched projects with the consumed/balance
	// rollup totals across them.
	HoursTracking(ctx context.Context, params dto.HoursTrackingParams) (*dto.HoursTrackingResponse, error)

	// EmployeeReport resolves the search against employees first, projects
	// second, and returns the matching branch.
	EmployeeReport(ctx context.Context, params dto.EmployeeReportParams) (*dto.EmployeeReportResponse, error)

	// SearchMiscHours finds per-week summed MISC hours for employees whose
	// name or code matches the query.
	SearchMiscHours(ctx context.Context, query string) ([]domain.MiscHoursDetail, error)

	// DashboardStats computes the admin dashboard counters.
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// RecentTimesheets returns the latest submissions for the dashboard.
	RecentTimesheets(ctx context.Context) ([]domain.Timesheet, error)

	// ExportTimesheetCSV renders a single timesheet as CSV rows including
	// the trailing TOTAL row.
	ExportTimesheetCSV(ctx context.Context, ts *domain.Timesheet) ([][]string, error)

	// ExportTimesheetsCSV renders multiple timesheets as one CSV table with
	// approver columns.
	ExportTimesheetsCSV(ctx context.Context, tss []domain.Timesheet) ([][]string, error)

	// ExportTimesheetsXLSX renders multiple timesheets as an XLSX workbook.
	ExportTimesheetsXLSX(ctx context.Context, tss []domain.Timesheet) ([]byte, error)
}
