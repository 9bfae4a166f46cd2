package services

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data.
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by internal ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetEmployeeByUsername retrieves an employee by login username.
	GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// GetEmployeeByEmail retrieves an employee by email address.
	GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// GetEmployeeByCode retrieves an employee by the human-facing code.
	GetEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error)

	// SearchEmployees matches query against names and employee codes.
	SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error)

	// ListEmployees retrieves a filtered page of employees.
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data.
type EmployeeWriterSvc interface {
	// CreateEmployee creates a new employee account.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorID string) (*domain.Employee, error)

	// UpdateEmployee applies a partial update to an employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingEmployeeID string) (*domain.Employee, error)

	// DeactivateEmployee marks the account inactive; inactive accounts
	// cannot authenticate.
	DeactivateEmployee(ctx context.Context, employeeID string, requestingEmployeeID string) error

	// UpdateRefreshToken stores a new refresh token hash and expiry.
	UpdateRefreshToken(ctx context.Context, employeeID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes any stored refresh token state.
	ClearRefreshToken(ctx context.Context, employeeID string) error
}

// EmployeeAuthSvc defines operations for employee authentication.
type EmployeeAuthSvc interface {
	// AuthenticateEmployee checks username/password and returns the account
	// when the credentials match and the account is active.
	AuthenticateEmployee(ctx context.Context, username, password string) (*domain.Employee, error)

	// RegisterEmployee creates a self-service account with the employee role.
	RegisterEmployee(ctx context.Context, req dto.RegisterRequest) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeAuthSvc
}
