package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/core/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportingRepository) ListMiscEntriesByEmployees(ctx context.Context, employeeIDs []string) ([]domain.MiscHoursDetail, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MiscHoursDetail), args.Error(1)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByPlNo(ctx context.Context, plNo string) (*domain.Project, error) {
	args := m.Called(ctx, plNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SearchProjects(ctx context.Context, filter portsrepo.ProjectSearchFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockProjectRepo   *MockProjectRepository
	mockEmployeeRepo  *MockEmployeeRepository
	mockTimesheetRepo *MockTimesheetRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockProjectRepo, suite.mockEmployeeRepo, suite.mockTimesheetRepo)
}

func sampleTimesheet() domain.Timesheet {
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	return domain.Timesheet{
		TimesheetID:        uuid.NewString(),
		EmployeeCode:       "T1166",
		EmployeeName:       "Asha Nair",
		Department:         "Civil",
		WeekStartDate:      weekStart,
		WeekEndDate:        weekStart.AddDate(0, 0, 6),
		Status:             domain.TimesheetSubmitted,
		TotalNormalHours:   decimal.NewFromFloat(15.5),
		TotalOvertimeHours: decimal.NewFromInt(2),
		TotalHours:         decimal.NewFromFloat(17.5),
		Entries: []domain.TimeEntry{
			{
				Date:          weekStart,
				DayOfWeek:     "Monday",
				ProjectCode:   "PL-1001",
				Location:      "Site A",
				NormalHours:   decimal.NewFromInt(8),
				OvertimeHours: decimal.NewFromInt(2),
				ActivityCode:  "DSN",
				Remarks:       "foundation review",
			},
			{
				Date:         weekStart.AddDate(0, 0, 1),
				DayOfWeek:    "Tuesday",
				ProjectCode:  "PL-1001",
				NormalHours:  decimal.NewFromFloat(7.5),
				ActivityCode: "DSN",
			},
		},
	}
}

// --- Hours tracking ---

func (suite *ReportingServiceTestSuite) TestHoursTracking_RollupTotals() {
	ctx := context.Background()
	projects := []domain.Project{
		{
			PlNo:            "PL-1001",
			TotalHours:      decimal.NewFromInt(120),
			JuniorCompleted: decimal.NewFromInt(40),
			SeniorCompleted: decimal.NewFromInt(55),
			VariationHours:  decimal.NewFromInt(10),
		},
		{
			PlNo:            "PL-1002",
			TotalHours:      decimal.NewFromInt(80),
			JuniorCompleted: decimal.NewFromInt(20),
			SeniorCompleted: decimal.NewFromInt(5),
			VariationHours:  decimal.NewFromInt(0),
		},
	}

	suite.mockProjectRepo.On("SearchProjects", ctx, portsrepo.ProjectSearchFilter{PlNo: "PL-10"}).Return(projects, nil).Once()

	resp, err := suite.service.HoursTracking(ctx, dto.HoursTrackingParams{PlNo: "PL-10"})

	suite.Require().NoError(err)
	suite.Equal(2, resp.Count)
	suite.True(resp.Totals.TotalHours.Equal(decimal.NewFromInt(200)))
	suite.True(resp.Totals.ConsumedHours.Equal(decimal.NewFromInt(120)))
	suite.True(resp.Totals.VariationHours.Equal(decimal.NewFromInt(10)))
	suite.True(resp.Totals.BalanceHours.Equal(decimal.NewFromInt(80)))
}

func (suite *ReportingServiceTestSuite) TestHoursTracking_NoMatches() {
	ctx := context.Background()

	suite.mockProjectRepo.On("SearchProjects", ctx, mock.AnythingOfType("repositories.ProjectSearchFilter")).Return([]domain.Project{}, nil).Once()

	resp, err := suite.service.HoursTracking(ctx, dto.HoursTrackingParams{ProjectName: "nothing"})

	suite.Require().NoError(err)
	suite.Zero(resp.Count)
	suite.True(resp.Totals.TotalHours.IsZero())
	suite.True(resp.Totals.BalanceHours.IsZero())
}

// --- Employee report ---

func (suite *ReportingServiceTestSuite) TestEmployeeReport_EmployeeBranchWinsOverProject() {
	ctx := context.Background()
	emp := &domain.Employee{EmployeeID: uuid.NewString(), EmployeeCode: "T1166", FirstName: "Asha", LastName: "Nair"}
	ts := sampleTimesheet()

	suite.mockEmployeeRepo.On("FindEmployeeByCode", ctx, "T1166").Return(emp, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheetsByEmployee", ctx, emp.EmployeeID, 0, time.Month(0)).Return([]domain.Timesheet{ts}, nil).Once()

	resp, err := suite.service.EmployeeReport(ctx, dto.EmployeeReportParams{EmployeeID: "T1166"})

	suite.Require().NoError(err)
	suite.Equal("employee", resp.Type)
	suite.Require().NotNil(resp.Employee)
	suite.Len(resp.Timesheets, 1)
	suite.Nil(resp.Project)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindProjectByPlNo", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestEmployeeReport_ProjectBranch() {
	ctx := context.Background()
	empID := uuid.NewString()
	project := &domain.Project{ProjectID: uuid.NewString(), PlNo: "PL-1001", AssignedEmployees: []string{empID}}

	suite.mockProjectRepo.On("FindProjectByPlNo", ctx, "PL-1001").Return(project, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", ctx, []string{empID}).Return(map[string]domain.Employee{
		empID: {EmployeeID: empID, EmployeeCode: "T2001"},
	}, nil).Once()

	resp, err := suite.service.EmployeeReport(ctx, dto.EmployeeReportParams{PlNo: "PL-1001"})

	suite.Require().NoError(err)
	suite.Equal("project", resp.Type)
	suite.Require().NotNil(resp.Project)
	suite.Len(resp.AssignedEmployees, 1)
	suite.Equal("T2001", resp.AssignedEmployees[0].EmployeeCode)
}

func (suite *ReportingServiceTestSuite) TestEmployeeReport_NothingMatches() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("SearchEmployees", ctx, "ghost").Return([]domain.Employee{}, nil).Once()
	suite.mockProjectRepo.On("FindProjectByName", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.EmployeeReport(ctx, dto.EmployeeReportParams{Name: "ghost"})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestEmployeeReport_DateRangeFiltersTimesheets() {
	ctx := context.Background()
	emp := &domain.Employee{EmployeeID: uuid.NewString(), EmployeeCode: "T1166"}
	inRange := sampleTimesheet()
	outOfRange := sampleTimesheet()
	outOfRange.WeekStartDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	outOfRange.WeekEndDate = outOfRange.WeekStartDate.AddDate(0, 0, 6)

	suite.mockEmployeeRepo.On("FindEmployeeByCode", ctx, "T1166").Return(emp, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheetsByEmployee", ctx, emp.EmployeeID, 0, time.Month(0)).Return([]domain.Timesheet{inRange, outOfRange}, nil).Once()

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	resp, err := suite.service.EmployeeReport(ctx, dto.EmployeeReportParams{EmployeeID: "T1166", StartDate: &start})

	suite.Require().NoError(err)
	suite.Len(resp.Timesheets, 1)
	suite.Equal(inRange.TimesheetID, resp.Timesheets[0].TimesheetID)
}

// --- Misc hours search ---

func (suite *ReportingServiceTestSuite) TestSearchMiscHours() {
	ctx := context.Background()
	empID := uuid.NewString()
	details := []domain.MiscHoursDetail{
		{EmployeeName: "Asha Nair", EmployeeCode: "T1166", Week: "2025-06-02 - 2025-06-08", Hours: decimal.NewFromInt(4)},
	}

	suite.mockEmployeeRepo.On("SearchEmployees", ctx, "asha").Return([]domain.Employee{{EmployeeID: empID}}, nil).Once()
	suite.mockReportingRepo.On("ListMiscEntriesByEmployees", ctx, []string{empID}).Return(details, nil).Once()

	got, err := suite.service.SearchMiscHours(ctx, "asha")

	suite.Require().NoError(err)
	suite.Equal(details, got)
}

func (suite *ReportingServiceTestSuite) TestSearchMiscHours_EmptyQuery() {
	_, err := suite.service.SearchMiscHours(context.Background(), "")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestSearchMiscHours_NoEmployeeMatch() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("SearchEmployees", ctx, "ghost").Return([]domain.Employee{}, nil).Once()

	got, err := suite.service.SearchMiscHours(ctx, "ghost")

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "ListMiscEntriesByEmployees", mock.Anything, mock.Anything)
}

// --- Exports ---

func (suite *ReportingServiceTestSuite) TestExportTimesheetCSV_RowLayout() {
	ctx := context.Background()
	ts := sampleTimesheet()

	rows, err := suite.service.ExportTimesheetCSV(ctx, &ts)

	suite.Require().NoError(err)
	// Header, two entries, TOTAL.
	suite.Require().Len(rows, 4)
	suite.Equal("Employee Code", rows[0][0])
	suite.Len(rows[0], 15)

	first := rows[1]
	suite.Equal("T1166", first[0])
	suite.Equal("Asha Nair", first[1])
	suite.Equal("02/06/2025", first[3])
	suite.Equal("Monday", first[4])
	suite.Equal("PL-1001", first[5])
	suite.Equal("10.00", first[9])

	total := rows[3]
	suite.Equal("TOTAL", total[0])
	suite.Equal("15.5", total[7])
	suite.Equal("2", total[8])
	suite.Equal("17.5", total[9])
}

func (suite *ReportingServiceTestSuite) TestExportTimesheetsCSV_AppendsApproverColumns() {
	ctx := context.Background()
	ts := sampleTimesheet()
	approvedAt := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	ts.Status = domain.TimesheetApproved
	ts.ApprovedByName = "Ravi Menon"
	ts.ApprovedAt = &approvedAt

	rows, err := suite.service.ExportTimesheetsCSV(ctx, []domain.Timesheet{ts})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Len(rows[0], 17)
	suite.Equal("Approved By", rows[0][15])
	suite.Equal("Approved At", rows[0][16])
	suite.Equal("Ravi Menon", rows[1][15])
	suite.Equal("10/06/2025", rows[1][16])
}

func (suite *ReportingServiceTestSuite) TestExportTimesheetsCSV_EmptySelection() {
	_, err := suite.service.ExportTimesheetsCSV(context.Background(), nil)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestExportTimesheetsXLSX_ProducesWorkbook() {
	ctx := context.Background()
	ts := sampleTimesheet()

	data, err := suite.service.ExportTimesheetsXLSX(ctx, []domain.Timesheet{ts})

	suite.Require().NoError(err)
	suite.NotEmpty(data)
	// XLSX files are zip archives.
	suite.Equal(byte('P'), data[0])
	suite.Equal(byte('K'), data[1])
}

// --- Dashboard ---

func (suite *ReportingServiceTestSuite) TestDashboardStats_Passthrough() {
	ctx := context.Background()
	stats := &domain.DashboardStats{TotalUsers: 12, TotalTimesheets: 40, PendingTimesheets: 3}

	suite.mockReportingRepo.On("GetDashboardStats", ctx).Return(stats, nil).Once()

	got, err := suite.service.DashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(stats, got)
}

func (suite *ReportingServiceTestSuite) TestRecentTimesheets_LimitsToTen() {
	ctx := context.Background()
	ts := sampleTimesheet()

	suite.mockTimesheetRepo.On("ListRecentTimesheets", ctx, 10).Return([]domain.Timesheet{ts}, nil).Once()

	got, err := suite.service.RecentTimesheets(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
