package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
	"github.com/engiops/timesheet_mgmt_app/internal/utils"
)

// employeeCodePattern matches codes like EMP123 or T1166.
var employeeCodePattern = regexp.MustCompile(`^(EMP|[A-Z])\d+$`)

// employeeService provides account management and credential checks.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByUsername(ctx, username)
}

func (s *employeeService) GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByEmail(ctx, email)
}

func (s *employeeService) GetEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByCode(ctx, employeeCode)
}

func (s *employeeService) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	return s.employeeRepo.SearchEmployees(ctx, query)
}

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	filter := portsrepo.ListEmployeesFilter{
		Role:       domain.EmployeeRole(params.Role),
		Department: params.Department,
		Status:     domain.EmployeeStatus(params.Status),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	return s.employeeRepo.ListEmployees(ctx, filter)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !employeeCodePattern.MatchString(req.EmployeeCode) {
		return nil, fmt.Errorf("%w: employee code must match EMP123 or a letter followed by digits", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.EmployeeRole(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		Department:   req.Department,
		JoinDate:     req.JoinDate,
		Status:       domain.EmployeeActive,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, err
	}
	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID), slog.String("employee_code", employee.EmployeeCode))
	return &employee, nil
}

func (s *employeeService) RegisterEmployee(ctx context.Context, req dto.RegisterRequest) (*domain.Employee, error) {
	// Self-registration always yields the lowest role; an admin promotes
	// later via UpdateEmployee.
	createReq := dto.CreateEmployeeRequest{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Role:         string(domain.RoleEmployee),
		Department:   req.Department,
	}
	return s.CreateEmployee(ctx, createReq, "self-registration")
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingEmployeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = domain.EmployeeRole(*req.Role)
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Status != nil {
		employee.Status = domain.EmployeeStatus(*req.Status)
	}
	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = requestingEmployeeID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, requestingEmployeeID string) error {
	inactive := string(domain.EmployeeInactive)
	_, err := s.UpdateEmployee(ctx, employeeID, dto.UpdateEmployeeRequest{Status: &inactive}, requestingEmployeeID)
	return err
}

func (s *employeeService) UpdateRefreshToken(ctx context.Context, employeeID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.employeeRepo.UpdateRefreshToken(ctx, employeeID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *employeeService) ClearRefreshToken(ctx context.Context, employeeID string) error {
	return s.employeeRepo.ClearRefreshToken(ctx, employeeID)
}

// AuthenticateEmployee checks credentials. It returns ErrUnauthorized for
// both unknown usernames and wrong passwords so responses do not reveal
// which one failed.
func (s *employeeService) AuthenticateEmployee(ctx context.Context, username, password string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		logger.Warn("Login attempt for unknown username", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	if employee.Status != domain.EmployeeActive {
		logger.Warn("Login attempt for inactive account", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, employee.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}
	return employee, nil
}
