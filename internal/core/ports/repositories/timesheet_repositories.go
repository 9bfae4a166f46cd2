package repositories

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ListTimesheetsFilter narrows the manager/admin timesheet listing.
// Zero values mean "no filter". Month is only applied together with Year.
type ListTimesheetsFilter struct {
	Status       domain.TimesheetStatus
	Department   string
	EmployeeCode string // case-insensitive substring match
	Year         int
	Month        time.Month
	Limit        int
	NextToken    *string
}

// TimesheetReader defines read operations for timesheet data.
type TimesheetReader interface {
	// FindTimesheetByID retrieves a timesheet with its entries.
	FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error)

	// FindTimesheetByEmployeeAndWeek retrieves the timesheet matching the
	// exact (employee, weekStart, weekEnd) triple, entries included.
	FindTimesheetByEmployeeAndWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (*domain.Timesheet, error)

	// FindTimesheetsByIDs retrieves the given timesheets with entries,
	// ordered by week start ascending. Unknown IDs are skipped.
	FindTimesheetsByIDs(ctx context.Context, timesheetIDs []string) ([]domain.Timesheet, error)

	// ListTimesheetsByEmployee retrieves one employee's timesheets, newest
	// week first, optionally narrowed to a year and a month within it.
	ListTimesheetsByEmployee(ctx context.Context, employeeID string, year int, month time.Month) ([]domain.Timesheet, error)

	// ListTimesheets retrieves a filtered, token-paginated listing for
	// managers. It returns the page and the token for the next one.
	ListTimesheets(ctx context.Context, filter ListTimesheetsFilter) ([]domain.Timesheet, *string, error)

	// ListRecentTimesheets retrieves the most recently created timesheets.
	ListRecentTimesheets(ctx context.Context, limit int) ([]domain.Timesheet, error)
}

// TimesheetWriter defines write operations for timesheet data.
type TimesheetWriter interface {
	// SaveTimesheet persists a new timesheet and its entries in a single
	// database transaction. A unique-index conflict on the employee/week
	// triple surfaces as apperrors.ErrDuplicate.
	SaveTimesheet(ctx context.Context, ts domain.Timesheet) error

	// ReplaceTimesheetEntries rewrites a draft's entries and derived
	// totals in a single database transaction.
	ReplaceTimesheetEntries(ctx context.Context, ts domain.Timesheet) error

	// TransitionTimesheetStatus performs a guarded status flip: the update
	// only applies while the row still holds fromStatus. It reports
	// whether a row was changed, letting the service distinguish a lost
	// race from a missing record.
	TransitionTimesheetStatus(ctx context.Context, timesheetID string, fromStatus, toStatus domain.TimesheetStatus, approvedBy *string, approvedAt *time.Time, rejectionReason string, updatedBy string, updatedAt time.Time) (bool, error)
}

// TimesheetArchiver defines the bulk archival sweep.
type TimesheetArchiver interface {
	// ArchiveTimesheetsCreatedBefore marks every non-archived timesheet
	// created before the cutoff as archived and returns how many rows
	// changed. Already-archived rows never match, so the sweep is
	// idempotent.
	ArchiveTimesheetsCreatedBefore(ctx context.Context, cutoff time.Time, archiveDate time.Time) (int64, error)
}

// TimesheetRepositoryFacade combines all timesheet repository interfaces.
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
	TimesheetArchiver
}
