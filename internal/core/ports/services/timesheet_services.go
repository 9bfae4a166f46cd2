package services

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// TimesheetReaderSvc defines read operations for timesheet data.
type TimesheetReaderSvc interface {
	// GetTimesheetByID retrieves a timesheet with its entries. Non-managers
	// may only read their own timesheets.
	GetTimesheetByID(ctx context.Context, timesheetID string, requestingEmployeeID string) (*domain.Timesheet, error)

	// GetTimesheetsByIDs retrieves the given timesheets for export.
	GetTimesheetsByIDs(ctx context.Context, timesheetIDs []string) ([]domain.Timesheet, error)

	// ListMyTimesheets retrieves the requesting employee's timesheets,
	// optionally narrowed to a year/month.
	ListMyTimesheets(ctx context.Context, employeeID string, params dto.MyTimesheetsParams) ([]domain.Timesheet, error)

	// ListTimesheets retrieves a filtered, token-paginated listing for
	// managers and admins.
	ListTimesheets(ctx context.Context, filter repositories.ListTimesheetsFilter) ([]domain.Timesheet, *string, error)
}

// TimesheetWriterSvc defines the submission and edit operations.
type TimesheetWriterSvc interface {
	// SubmitTimesheet validates, aggregates and persists a weekly timesheet
	// in submitted state. A second submission for the same week fails with
	// apperrors.ErrDuplicate; the conflicting timesheet is returned
	// alongside the error so handlers can include it in the response.
	SubmitTimesheet(ctx context.Context, employeeID string, req dto.SubmitTimesheetRequest) (*domain.Timesheet, *domain.Timesheet, error)

	// UpdateTimesheetEntries rewrites a draft's entries and recomputes its
	// totals. Timesheets past draft are immutable and fail with
	// apperrors.ErrInvalidState.
	UpdateTimesheetEntries(ctx context.Context, timesheetID string, employeeID string, entries []dto.TimeEntryRequest) (*domain.Timesheet, error)
}

// TimesheetLifecycleSvc defines the approval lifecycle transitions.
type TimesheetLifecycleSvc interface {
	// ApproveTimesheet moves a submitted timesheet to approved, recording
	// the approver. Any other starting state fails with
	// apperrors.ErrInvalidState.
	ApproveTimesheet(ctx context.Context, timesheetID string, approverID string) (*domain.Timesheet, error)

	// RejectTimesheet moves a submitted timesheet to rejected with the
	// given reason. Any other starting state fails with
	// apperrors.ErrInvalidState.
	RejectTimesheet(ctx context.Context, timesheetID string, approverID string, reason string) (*domain.Timesheet, error)
}

// TimesheetArchiveSvc defines the archival sweep.
type TimesheetArchiveSvc interface {
	// ArchiveOldTimesheets marks every non-archived timesheet created more
	// than a year before now as archived and returns the count.
	ArchiveOldTimesheets(ctx context.Context, now time.Time) (int64, error)
}

// TimesheetSvcFacade combines all timesheet service interfaces.
type TimesheetSvcFacade interface {
	TimesheetReaderSvc
	TimesheetWriterSvc
	TimesheetLifecycleSvc
	TimesheetArchiveSvc
}
