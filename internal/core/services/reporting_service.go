package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// exportDateLayout renders dates in exports the dd/mm/yyyy way the
// downstream spreadsheets expect.
const exportDateLayout = "02/01/2006"

// exportHeader is the single-timesheet CSV column set. The bulk export
// appends the two approver columns.
var exportHeader = []string{
	"Employee Code", "Employee Name", "Department", "Date", "Day",
	"Project Code", "Location", "Normal Hours", "Overtime Hours",
	"Total Hours", "Activity Code", "Remarks", "Status",
	"Week Start", "Week End",
}

// reportingService produces project rollups, MISC-hour searches, dashboard
// counters and timesheet exports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	projectRepo   portsrepo.ProjectRepositoryFacade
	employeeRepo  portsrepo.EmployeeRepositoryFacade
	timesheetRepo portsrepo.TimesheetRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, timesheetRepo portsrepo.TimesheetRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		projectRepo:   projectRepo,
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// HoursTracking returns the matched projects and the rollup totals:
// consumed is junior plus senior completed, balance is total minus consumed.
func (s *reportingService) HoursTracking(ctx context.Context, params dto.HoursTrackingParams) (*dto.HoursTrackingResponse, error) {
	projects, err := s.projectRepo.SearchProjects(ctx, portsrepo.ProjectSearchFilter{
		PlNo: params.PlNo,
		Name: params.ProjectName,
	})
	if err != nil {
		return nil, err
	}

	totals := domain.HoursTrackingTotals{
		TotalHours:     decimal.Zero,
		ConsumedHours:  decimal.Zero,
		VariationHours: decimal.Zero,
		BalanceHours:   decimal.Zero,
	}
	for _, p := range projects {
		totals.TotalHours = totals.TotalHours.Add(p.TotalHours)
		totals.ConsumedHours = totals.ConsumedHours.Add(p.ConsumedHours())
		totals.VariationHours = totals.VariationHours.Add(p.VariationHours)
		totals.BalanceHours = totals.BalanceHours.Add(p.BalanceHours())
	}

	return &dto.HoursTrackingResponse{
		Projects: dto.ToProjectResponses(projects),
		Totals:   totals,
		Count:    len(projects),
	}, nil
}

// EmployeeReport resolves the search against employees first and falls back
// to projects, mirroring the combined report screen.
func (s *reportingService) EmployeeReport(ctx context.Context, params dto.EmployeeReportParams) (*dto.EmployeeReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.EmployeeID != "" || params.Name != "" {
		emp, err := s.resolveEmployee(ctx, params)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if emp != nil {
			timesheets, err := s.timesheetRepo.ListTimesheetsByEmployee(ctx, emp.EmployeeID, 0, 0)
			if err != nil {
				return nil, err
			}
			timesheets = filterByDateRange(timesheets, params.StartDate, params.EndDate)
			empResp := dto.ToEmployeeResponse(emp)
			return &dto.EmployeeReportResponse{
				Type:       "employee",
				Employee:   &empResp,
				Timesheets: dto.ToTimesheetResponses(timesheets),
			}, nil
		}
	}

	project, err := s.resolveProject(ctx, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("Report search matched nothing", slog.String("employee_id", params.EmployeeID), slog.String("pl_no", params.PlNo), slog.String("name", params.Name))
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	assigned, err := s.employeeRepo.FindEmployeesByIDs(ctx, project.AssignedEmployees)
	if err != nil {
		return nil, err
	}
	assignedList := make([]domain.Employee, 0, len(assigned))
	for _, id := range project.AssignedEmployees {
		if emp, ok := assigned[id]; ok {
			assignedList = append(assignedList, emp)
		}
	}

	projResp := dto.ToProjectResponse(project)
	return &dto.EmployeeReportResponse{
		Type:              "project",
		Project:           &projResp,
		AssignedEmployees: dto.ToEmployeeResponses(assignedList),
	}, nil
}

func (s *reportingService) resolveEmployee(ctx context.Context, params dto.EmployeeReportParams) (*domain.Employee, error) {
	if params.EmployeeID != "" {
		return s.employeeRepo.FindEmployeeByCode(ctx, params.EmployeeID)
	}
	matches, err := s.employeeRepo.SearchEmployees(ctx, params.Name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matches[0], nil
}

func (s *reportingService) resolveProject(ctx context.Context, params dto.EmployeeReportParams) (*domain.Project, error) {
	if params.PlNo != "" {
		return s.projectRepo.FindProjectByPlNo(ctx, params.PlNo)
	}
	if params.Name != "" {
		return s.projectRepo.FindProjectByName(ctx, params.Name)
	}
	return nil, apperrors.ErrNotFound
}

func filterByDateRange(tss []domain.Timesheet, start, end *time.Time) []domain.Timesheet {
	if start == nil && end == nil {
		return tss
	}
	out := tss[:0]
	for _, ts := range tss {
		if start != nil && ts.WeekEndDate.Before(domain.DateOnly(*start)) {
			continue
		}
		if end != nil && ts.WeekStartDate.After(domain.DateOnly(*end)) {
			continue
		}
		out = append(out, ts)
	}
	return out
}

// SearchMiscHours finds per-week MISC hours for employees whose name or code
// matches the query.
func (s *reportingService) SearchMiscHours(ctx context.Context, query string) ([]domain.MiscHoursDetail, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	employees, err := s.employeeRepo.SearchEmployees(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, nil
	}
	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.EmployeeID
	}
	return s.reportingRepo.ListMiscEntriesByEmployees(ctx, ids)
}

func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportingRepo.GetDashboardStats(ctx)
}

func (s *reportingService) RecentTimesheets(ctx context.Context) ([]domain.Timesheet, error) {
	return s.timesheetRepo.ListRecentTimesheets(ctx, 10)
}

func exportRow(ts *domain.Timesheet, e domain.TimeEntry) []string {
	return []string{
		ts.EmployeeCode,
		ts.EmployeeName,
		ts.Department,
		e.Date.Format(exportDateLayout),
		e.DayOfWeek,
		e.ProjectCode,
		e.Location,
		e.NormalHours.String(),
		e.OvertimeHours.String(),
		e.TotalHours().StringFixed(2),
		e.ActivityCode,
		e.Remarks,
		string(ts.Status),
		ts.WeekStartDate.Format(exportDateLayout),
		ts.WeekEndDate.Format(exportDateLayout),
	}
}

// ExportTimesheetCSV renders one timesheet as rows plus a trailing TOTAL row
// built from the stored aggregates, not recomputed from the entries.
func (s *reportingService) ExportTimesheetCSV(ctx context.Context, ts *domain.Timesheet) ([][]string, error) {
	rows := make([][]string, 0, len(ts.Entries)+2)
	rows = append(rows, exportHeader)
	for _, e := range ts.Entries {
		rows = append(rows, exportRow(ts, e))
	}
	rows = append(rows, []string{
		"TOTAL", "", "", "", "", "", "",
		ts.TotalNormalHours.String(),
		ts.TotalOvertimeHours.String(),
		ts.TotalHours.String(),
		"", "", "", "", "",
	})
	return rows, nil
}

// ExportTimesheetsCSV renders multiple timesheets as one flat table with the
// approver columns appended.
func (s *reportingService) ExportTimesheetsCSV(ctx context.Context, tss []domain.Timesheet) ([][]string, error) {
	if len(tss) == 0 {
		return nil, apperrors.ErrNotFound
	}

	header := make([]string, 0, len(exportHeader)+2)
	header = append(header, exportHeader...)
	header = append(header, "Approved By", "Approved At")

	rows := [][]string{header}
	for i := range tss {
		ts := &tss[i]
		approvedAt := ""
		if ts.ApprovedAt != nil {
			approvedAt = ts.ApprovedAt.Format(exportDateLayout)
		}
		for _, e := range ts.Entries {
			row := exportRow(ts, e)
			row = append(row, ts.ApprovedByName, approvedAt)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ExportTimesheetsXLSX renders the bulk export as an XLSX workbook with the
// same columns as the CSV.
func (s *reportingService) ExportTimesheetsXLSX(ctx context.Context, tss []domain.Timesheet) ([]byte, error) {
	rows, err := s.ExportTimesheetsCSV(ctx, tss)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timesheets"
	f.SetSheetName("Sheet1", sheet)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write sheet row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
