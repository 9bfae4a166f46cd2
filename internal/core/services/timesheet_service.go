package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// timesheetService provides the weekly submission, approval lifecycle and
// archival operations.
type timesheetService struct {
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	employeeRepo  portsrepo.EmployeeRepositoryFacade
}

// NewTimesheetService creates a new timesheet service.
func NewTimesheetService(timesheetRepo portsrepo.TimesheetRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
	}
}

// Ensure timesheetService implements the portssvc.TimesheetSvcFacade interface
var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// validateEntries checks the whole entry set so a submission fails as one
// unit: no partial persistence of valid rows.
func validateEntries(weekStart, weekEnd time.Time, entries []dto.TimeEntryRequest) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: timesheet must contain at least one entry", apperrors.ErrValidation)
	}
	for i, e := range entries {
		if e.ProjectCode == "" {
			return fmt.Errorf("%w: entry %d is missing a project code", apperrors.ErrValidation, i)
		}
		if e.ActivityCode == "" {
			return fmt.Errorf("%w: entry %d is missing an activity code", apperrors.ErrValidation, i)
		}
		if e.NormalHours.IsNegative() || e.OvertimeHours.IsNegative() {
			return fmt.Errorf("%w: entry %d has negative hours", apperrors.ErrValidation, i)
		}
		if e.NormalHours.GreaterThan(domain.MaxHoursPerEntry) || e.OvertimeHours.GreaterThan(domain.MaxHoursPerEntry) {
			return fmt.Errorf("%w: entry %d exceeds %s hours", apperrors.ErrValidation, i, domain.MaxHoursPerEntry.String())
		}
		d := domain.DateOnly(e.Date)
		if d.Before(weekStart) || d.After(weekEnd) {
			return fmt.Errorf("%w: entry %d date %s falls outside the week", apperrors.ErrValidation, i, d.Format(time.DateOnly))
		}
	}
	return nil
}

func toDomainEntries(entries []dto.TimeEntryRequest) []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.TimeEntry{
			EntryID:       uuid.NewString(),
			Date:          domain.DateOnly(e.Date),
			ProjectCode:   e.ProjectCode,
			Location:      e.Location,
			NormalHours:   e.NormalHours,
			OvertimeHours: e.OvertimeHours,
			ActivityCode:  e.ActivityCode,
			Remarks:       e.Remarks,
			DayOfWeek:     e.DayOfWeek,
		}
	}
	return out
}

// SubmitTimesheet validates, aggregates and persists a weekly timesheet.
// On a duplicate week the existing timesheet is returned as the second value
// alongside apperrors.ErrDuplicate.
func (s *timesheetService) SubmitTimesheet(ctx context.Context, employeeID string, req dto.SubmitTimesheetRequest) (*domain.Timesheet, *domain.Timesheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	weekStart := domain.DateOnly(req.WeekStartDate)
	weekEnd := domain.DateOnly(req.WeekEndDate)
	if !weekEnd.After(weekStart) {
		return nil, nil, fmt.Errorf("%w: week end date must be after week start date", apperrors.ErrValidation)
	}
	if err := validateEntries(weekStart, weekEnd, req.Entries); err != nil {
		return nil, nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}

	// Pre-check the week so the common duplicate path returns the existing
	// record. The unique index still guards the race below.
	existing, err := s.timesheetRepo.FindTimesheetByEmployeeAndWeek(ctx, employeeID, weekStart, weekEnd)
	if err == nil {
		logger.Warn("Duplicate timesheet submission", slog.String("employee_id", employeeID), slog.Time("week_start", weekStart))
		return nil, existing, apperrors.ErrDuplicate
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}

	now := time.Now().UTC()
	ts := domain.Timesheet{
		TimesheetID:   uuid.NewString(),
		EmployeeID:    employee.EmployeeID,
		EmployeeCode:  employee.EmployeeCode,
		EmployeeName:  employee.FullName(),
		Department:    employee.Department,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		Entries:       toDomainEntries(req.Entries),
		Status:        domain.TimesheetSubmitted,
		SubmittedAt:   &now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}
	ts.Recalculate()

	if err := s.timesheetRepo.SaveTimesheet(ctx, ts); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent submission for the same week.
			existing, findErr := s.timesheetRepo.FindTimesheetByEmployeeAndWeek(ctx, employeeID, weekStart, weekEnd)
			if findErr != nil {
				return nil, nil, apperrors.ErrDuplicate
			}
			return nil, existing, apperrors.ErrDuplicate
		}
		logger.Error("Failed to save timesheet", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, nil, err
	}

	logger.Info("Timesheet submitted", slog.String("timesheet_id", ts.TimesheetID), slog.Int("week_number", ts.WeekNumber), slog.Int("year", ts.Year))
	return &ts, nil, nil
}

// UpdateTimesheetEntries rewrites a draft's entries. Anything past draft is
// immutable.
func (s *timesheetService) UpdateTimesheetEntries(ctx context.Context, timesheetID string, employeeID string, entries []dto.TimeEntryRequest) (*domain.Timesheet, error) {
	ts, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	if ts.EmployeeID != employeeID {
		return nil, apperrors.ErrForbidden
	}
	if ts.Status != domain.TimesheetDraft {
		return nil, fmt.Errorf("%w: only draft timesheets can be edited", apperrors.ErrInvalidState)
	}
	if err := validateEntries(ts.WeekStartDate, ts.WeekEndDate, entries); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ts.Entries = toDomainEntries(entries)
	ts.LastUpdatedAt = now
	ts.LastUpdatedBy = employeeID
	ts.Recalculate()

	if err := s.timesheetRepo.ReplaceTimesheetEntries(ctx, *ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *timesheetService) GetTimesheetByID(ctx context.Context, timesheetID string, requestingEmployeeID string) (*domain.Timesheet, error) {
	ts, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	if ts.EmployeeID != requestingEmployeeID {
		requester, err := s.employeeRepo.FindEmployeeByID(ctx, requestingEmployeeID)
		if err != nil {
			return nil, err
		}
		if !requester.Role.CanManageTimesheets() {
			return nil, apperrors.ErrForbidden
		}
	}
	s.fillApproverNames(ctx, []domain.Timesheet{*ts})
	return ts, nil
}

func (s *timesheetService) GetTimesheetsByIDs(ctx context.Context, timesheetIDs []string) ([]domain.Timesheet, error) {
	tss, err := s.timesheetRepo.FindTimesheetsByIDs(ctx, timesheetIDs)
	if err != nil {
		return nil, err
	}
	s.fillApproverNames(ctx, tss)
	return tss, nil
}

func (s *timesheetService) ListMyTimesheets(ctx context.Context, employeeID string, params dto.MyTimesheetsParams) ([]domain.Timesheet, error) {
	return s.timesheetRepo.ListTimesheetsByEmployee(ctx, employeeID, params.Year, time.Month(params.Month))
}

func (s *timesheetService) ListTimesheets(ctx context.Context, filter portsrepo.ListTimesheetsFilter) ([]domain.Timesheet, *string, error) {
	tss, nextToken, err := s.timesheetRepo.ListTimesheets(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	s.fillApproverNames(ctx, tss)
	return tss, nextToken, nil
}

// fillApproverNames resolves ApprovedBy IDs to display names. A lookup
// failure leaves the names blank rather than failing the read.
func (s *timesheetService) fillApproverNames(ctx context.Context, tss []domain.Timesheet) {
	var ids []string
	for i := range tss {
		if tss[i].ApprovedBy != nil && tss[i].ApprovedByName == "" {
			ids = append(ids, *tss[i].ApprovedBy)
		}
	}
	if len(ids) == 0 {
		return
	}
	approvers, err := s.employeeRepo.FindEmployeesByIDs(ctx, ids)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to resolve approver names", slog.String("error", err.Error()))
		return
	}
	for i := range tss {
		if tss[i].ApprovedBy != nil {
			if emp, ok := approvers[*tss[i].ApprovedBy]; ok {
				tss[i].ApprovedByName = emp.FullName()
			}
		}
	}
}

// ApproveTimesheet moves a submitted timesheet to approved. The transition is
// a guarded update: if the row already left submitted state, the lost racer
// gets apperrors.ErrInvalidState.
func (s *timesheetService) ApproveTimesheet(ctx context.Context, timesheetID string, approverID string) (*domain.Timesheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ts, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	approver, err := s.employeeRepo.FindEmployeeByID(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approver %s: %w", approverID, err)
	}
	if !approver.Role.CanManageTimesheets() {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	changed, err := s.timesheetRepo.TransitionTimesheetStatus(ctx, timesheetID, domain.TimesheetSubmitted, domain.TimesheetApproved, &approverID, &now, "", approverID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		logger.Warn("Approve rejected, timesheet already processed", slog.String("timesheet_id", timesheetID), slog.String("status", string(ts.Status)))
		return nil, fmt.Errorf("%w: timesheet has already been processed", apperrors.ErrInvalidState)
	}

	ts.Status = domain.TimesheetApproved
	ts.ApprovedBy = &approverID
	ts.ApprovedByName = approver.FullName()
	ts.ApprovedAt = &now
	ts.LastUpdatedAt = now
	ts.LastUpdatedBy = approverID
	logger.Info("Timesheet approved", slog.String("timesheet_id", timesheetID), slog.String("approver_id", approverID))
	return ts, nil
}

// RejectTimesheet moves a submitted timesheet to rejected with a mandatory
// reason.
func (s *timesheetService) RejectTimesheet(ctx context.Context, timesheetID string, approverID string, reason string) (*domain.Timesheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	ts, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	approver, err := s.employeeRepo.FindEmployeeByID(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approver %s: %w", approverID, err)
	}
	if !approver.Role.CanManageTimesheets() {
		return nil, apperrors.ErrForbidden
	}

	// The rejecting actor is stamped into approvedBy/approvedAt so the
	// record shows who processed it.
	now := time.Now().UTC()
	changed, err := s.timesheetRepo.TransitionTimesheetStatus(ctx, timesheetID, domain.TimesheetSubmitted, domain.TimesheetRejected, &approverID, &now, reason, approverID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: timesheet has already been processed", apperrors.ErrInvalidState)
	}

	ts.Status = domain.TimesheetRejected
	ts.RejectionReason = reason
	ts.ApprovedBy = &approverID
	ts.ApprovedByName = approver.FullName()
	ts.ApprovedAt = &now
	ts.LastUpdatedAt = now
	ts.LastUpdatedBy = approverID
	logger.Info("Timesheet rejected", slog.String("timesheet_id", timesheetID), slog.String("approver_id", approverID))
	return ts, nil
}

// archiveAgeYears is how old a timesheet must be before the sweep archives it.
const archiveAgeYears = 1

// ArchiveOldTimesheets archives everything created more than a year before
// now. The sweep is idempotent: a second run archives nothing new.
func (s *timesheetService) ArchiveOldTimesheets(ctx context.Context, now time.Time) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cutoff := now.AddDate(-archiveAgeYears, 0, 0)
	count, err := s.timesheetRepo.ArchiveTimesheetsCreatedBefore(ctx, cutoff, now)
	if err != nil {
		logger.Error("Archive sweep failed", slog.String("error", err.Error()))
		return 0, err
	}
	if count > 0 {
		logger.Info("Archive sweep completed", slog.Int64("archived_count", count), slog.Time("cutoff", cutoff))
	}
	return count, nil
}
