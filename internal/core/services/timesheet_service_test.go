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

// --- Mock TimesheetRepository ---
type MockTimesheetRepository struct {
	mock.Mock
}

func (m *MockTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	args := m.Called(ctx, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetRepository) FindTimesheetByEmployeeAndWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (*domain.Timesheet, error) {
	args := m.Called(ctx, employeeID, weekStart, weekEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetRepository) FindTimesheetsByIDs(ctx context.Context, timesheetIDs []string) ([]domain.Timesheet, error) {
	args := m.Called(ctx, timesheetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetRepository) ListTimesheetsByEmployee(ctx context.Context, employeeID string, year int, month time.Month) ([]domain.Timesheet, error) {
	args := m.Called(ctx, employeeID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetRepository) ListTimesheets(ctx context.Context, filter portsrepo.ListTimesheetsFilter) ([]domain.Timesheet, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Timesheet), next, args.Error(2)
}

func (m *MockTimesheetRepository) ListRecentTimesheets(ctx context.Context, limit int) ([]domain.Timesheet, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetRepository) SaveTimesheet(ctx context.Context, ts domain.Timesheet) error {
	args := m.Called(ctx, ts)
	return args.Error(0)
}

func (m *MockTimesheetRepository) ReplaceTimesheetEntries(ctx context.Context, ts domain.Timesheet) error {
	args := m.Called(ctx, ts)
	return args.Error(0)
}

func (m *MockTimesheetRepository) TransitionTimesheetStatus(ctx context.Context, timesheetID string, fromStatus, toStatus domain.TimesheetStatus, approvedBy *string, approvedAt *time.Time, rejectionReason string, updatedBy string, updatedAt time.Time) (bool, error) {
	args := m.Called(ctx, timesheetID, fromStatus, toStatus, approvedBy, approvedAt, rejectionReason, updatedBy, updatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockTimesheetRepository) ArchiveTimesheetsCreatedBefore(ctx context.Context, cutoff time.Time, archiveDate time.Time) (int64, error) {
	args := m.Called(ctx, cutoff, archiveDate)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.ListEmployeesFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployeesByRole(ctx context.Context, role domain.EmployeeRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateRefreshToken(ctx context.Context, employeeID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, employeeID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ClearRefreshToken(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Test Suite ---
type TimesheetServiceTestSuite struct {
	suite.Suite
	mockTimesheetRepo *MockTimesheetRepository
	mockEmployeeRepo  *MockEmployeeRepository
	service           portssvc.TimesheetSvcFacade
	employee          *domain.Employee
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewTimesheetService(suite.mockTimesheetRepo, suite.mockEmployeeRepo)
	suite.employee = &domain.Employee{
		EmployeeID:   uuid.NewString(),
		EmployeeCode: "T1166",
		FirstName:    "Asha",
		LastName:     "Nair",
		Department:   "Civil",
		Role:         domain.RoleEmployee,
		Status:       domain.EmployeeActive,
	}
}

func (suite *TimesheetServiceTestSuite) validRequest() dto.SubmitTimesheetRequest {
	weekStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return dto.SubmitTimesheetRequest{
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDate(0, 0, 6),
		Entries: []dto.TimeEntryRequest{
			{
				Date:          weekStart,
				ProjectCode:   "PL-1001",
				ActivityCode:  "DSN",
				NormalHours:   decimal.NewFromInt(8),
				OvertimeHours: decimal.NewFromInt(2),
			},
			{
				Date:         weekStart.AddDate(0, 0, 1),
				ProjectCode:  "PL-1001",
				ActivityCode: "DSN",
				NormalHours:  decimal.NewFromFloat(7.5),
			},
		},
	}
}

// --- Submit ---

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_Success() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByEmployeeAndWeek", ctx, suite.employee.EmployeeID, req.WeekStartDate, req.WeekEndDate).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTimesheetRepo.On("SaveTimesheet", ctx, mock.MatchedBy(func(ts domain.Timesheet) bool {
		return ts.EmployeeID == suite.employee.EmployeeID &&
			ts.Status == domain.TimesheetSubmitted &&
			ts.TotalNormalHours.Equal(decimal.NewFromFloat(15.5)) &&
			ts.TotalOvertimeHours.Equal(decimal.NewFromInt(2)) &&
			ts.TotalHours.Equal(decimal.NewFromFloat(17.5))
	})).Return(nil).Once()

	ts, existing, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Nil(existing)
	suite.Require().NotNil(ts)
	suite.Equal(domain.TimesheetSubmitted, ts.Status)
	suite.NotNil(ts.SubmittedAt)
	// Snapshot fields come from the employee record, not the request.
	suite.Equal("T1166", ts.EmployeeCode)
	suite.Equal("Asha Nair", ts.EmployeeName)
	suite.Equal("Civil", ts.Department)
	// Week 2025-03-10 is 68 days past Jan 1: ceil(69/7) = 10.
	suite.Equal(2025, ts.Year)
	suite.Equal(10, ts.WeekNumber)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_DuplicateWeekReturnsExisting() {
	ctx := context.Background()
	req := suite.validRequest()
	existingTs := &domain.Timesheet{TimesheetID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByEmployeeAndWeek", ctx, suite.employee.EmployeeID, req.WeekStartDate, req.WeekEndDate).Return(existingTs, nil).Once()

	ts, existing, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(ts)
	suite.Equal(existingTs, existing)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "SaveTimesheet", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_DuplicateRaceOnSave() {
	ctx := context.Background()
	req := suite.validRequest()
	existingTs := &domain.Timesheet{TimesheetID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByEmployeeAndWeek", ctx, suite.employee.EmployeeID, req.WeekStartDate, req.WeekEndDate).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTimesheetRepo.On("SaveTimesheet", ctx, mock.AnythingOfType("domain.Timesheet")).Return(apperrors.ErrDuplicate).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByEmployeeAndWeek", ctx, suite.employee.EmployeeID, req.WeekStartDate, req.WeekEndDate).Return(existingTs, nil).Once()

	ts, existing, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(ts)
	suite.Equal(existingTs, existing)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_WeekEndBeforeStart() {
	ctx := context.Background()
	req := suite.validRequest()
	req.WeekEndDate = req.WeekStartDate.AddDate(0, 0, -1)

	_, _, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_NoEntries() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Entries = nil

	_, _, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_HoursAtBoundary() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Entries = req.Entries[:1]
	req.Entries[0].NormalHours = decimal.NewFromInt(24)
	req.Entries[0].OvertimeHours = decimal.Zero

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByEmployeeAndWeek", ctx, suite.employee.EmployeeID, req.WeekStartDate, req.WeekEndDate).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTimesheetRepo.On("SaveTimesheet", ctx, mock.AnythingOfType("domain.Timesheet")).Return(nil).Once()

	// 24 hours is the inclusive maximum for a single entry.
	_, _, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)
	suite.Require().NoError(err)

	req.Entries[0].NormalHours = decimal.NewFromInt(25)
	_, _, err = suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_EntryDateOutsideWeek() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Entries[1].Date = req.WeekEndDate.AddDate(0, 0, 1)

	_, _, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_NegativeHours() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Entries[0].OvertimeHours = decimal.NewFromInt(-1)

	_, _, err := suite.service.SubmitTimesheet(ctx, suite.employee.EmployeeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- Lifecycle ---

func (suite *TimesheetServiceTestSuite) TestApproveTimesheet_Success() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: uuid.NewString(), FirstName: "Ravi", LastName: "Menon", Role: domain.RoleManager}
	ts := &domain.Timesheet{TimesheetID: timesheetID, Status: domain.TimesheetSubmitted}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, manager.EmployeeID).Return(manager, nil).Once()
	suite.mockTimesheetRepo.On("TransitionTimesheetStatus", ctx, timesheetID, domain.TimesheetSubmitted, domain.TimesheetApproved, &manager.EmployeeID, mock.AnythingOfType("*time.Time"), "", manager.EmployeeID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	approved, err := suite.service.ApproveTimesheet(ctx, timesheetID, manager.EmployeeID)

	suite.Require().NoError(err)
	suite.Equal(domain.TimesheetApproved, approved.Status)
	suite.Equal("Ravi Menon", approved.ApprovedByName)
	suite.NotNil(approved.ApprovedAt)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestApproveTimesheet_AlreadyProcessed() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleManager}
	ts := &domain.Timesheet{TimesheetID: timesheetID, Status: domain.TimesheetApproved}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, manager.EmployeeID).Return(manager, nil).Once()
	suite.mockTimesheetRepo.On("TransitionTimesheetStatus", ctx, timesheetID, domain.TimesheetSubmitted, domain.TimesheetApproved, &manager.EmployeeID, mock.AnythingOfType("*time.Time"), "", manager.EmployeeID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()

	_, err := suite.service.ApproveTimesheet(ctx, timesheetID, manager.EmployeeID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *TimesheetServiceTestSuite) TestApproveTimesheet_ForbiddenForEmployeeRole() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	ts := &domain.Timesheet{TimesheetID: timesheetID, Status: domain.TimesheetSubmitted}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()

	_, err := suite.service.ApproveTimesheet(ctx, timesheetID, suite.employee.EmployeeID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "TransitionTimesheetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestRejectTimesheet_RequiresReason() {
	ctx := context.Background()

	_, err := suite.service.RejectTimesheet(ctx, uuid.NewString(), uuid.NewString(), "")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RejectTimesheet(ctx, uuid.NewString(), uuid.NewString(), "   ")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestRejectTimesheet_Success() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin}
	ts := &domain.Timesheet{TimesheetID: timesheetID, Status: domain.TimesheetSubmitted}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, manager.EmployeeID).Return(manager, nil).Once()
	suite.mockTimesheetRepo.On("TransitionTimesheetStatus", ctx, timesheetID, domain.TimesheetSubmitted, domain.TimesheetRejected, &manager.EmployeeID, mock.AnythingOfType("*time.Time"), "hours do not match site log", manager.EmployeeID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	rejected, err := suite.service.RejectTimesheet(ctx, timesheetID, manager.EmployeeID, "hours do not match site log")

	suite.Require().NoError(err)
	suite.Equal(domain.TimesheetRejected, rejected.Status)
	suite.Equal("hours do not match site log", rejected.RejectionReason)
	suite.Require().NotNil(rejected.ApprovedBy)
	suite.Equal(manager.EmployeeID, *rejected.ApprovedBy)
	suite.NotNil(rejected.ApprovedAt)
}

// --- Access control on reads ---

func (suite *TimesheetServiceTestSuite) TestGetTimesheetByID_NonOwnerNonManagerForbidden() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	ts := &domain.Timesheet{TimesheetID: timesheetID, EmployeeID: uuid.NewString()}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(suite.employee, nil).Once()

	_, err := suite.service.GetTimesheetByID(ctx, timesheetID, suite.employee.EmployeeID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimesheetServiceTestSuite) TestGetTimesheetByID_OwnerAllowed() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	ts := &domain.Timesheet{TimesheetID: timesheetID, EmployeeID: suite.employee.EmployeeID}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()

	got, err := suite.service.GetTimesheetByID(ctx, timesheetID, suite.employee.EmployeeID)

	suite.Require().NoError(err)
	suite.Equal(timesheetID, got.TimesheetID)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

// --- Draft edits ---

func (suite *TimesheetServiceTestSuite) TestUpdateTimesheetEntries_SubmittedIsImmutable() {
	ctx := context.Background()
	timesheetID := uuid.NewString()
	ts := &domain.Timesheet{TimesheetID: timesheetID, EmployeeID: suite.employee.EmployeeID, Status: domain.TimesheetSubmitted}

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, timesheetID).Return(ts, nil).Once()

	_, err := suite.service.UpdateTimesheetEntries(ctx, timesheetID, suite.employee.EmployeeID, suite.validRequest().Entries)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
}

// --- Archival ---

func (suite *TimesheetServiceTestSuite) TestArchiveOldTimesheets_CutoffIsOneYear() {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 3, 0, 0, 0, time.UTC)
	wantCutoff := time.Date(2025, time.February, 1, 3, 0, 0, 0, time.UTC)

	suite.mockTimesheetRepo.On("ArchiveTimesheetsCreatedBefore", ctx, wantCutoff, now).Return(int64(7), nil).Once()

	count, err := suite.service.ArchiveOldTimesheets(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(int64(7), count)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestArchiveOldTimesheets_IdempotentSecondRun() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.mockTimesheetRepo.On("ArchiveTimesheetsCreatedBefore", ctx, now.AddDate(-1, 0, 0), now).Return(int64(0), nil).Once()

	count, err := suite.service.ArchiveOldTimesheets(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(count)
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
