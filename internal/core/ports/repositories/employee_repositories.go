package repositories

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ListEmployeesFilter narrows the employee listing; zero values mean "all".
type ListEmployeesFilter struct {
	Role       domain.EmployeeRole
	Department string
	Status     domain.EmployeeStatus
	Limit      int
	Offset     int
}

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by internal ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an employee by login username.
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by email address.
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployeeByCode retrieves an employee by the human-facing code.
	FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves employees keyed by ID; missing IDs are
	// simply absent from the map.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error)

	// SearchEmployees matches query case-insensitively against first name,
	// last name and employee code.
	SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error)

	// ListEmployees retrieves a filtered page of employees.
	ListEmployees(ctx context.Context, filter ListEmployeesFilter) ([]domain.Employee, error)

	// CountEmployeesByRole counts accounts holding the given role.
	CountEmployeesByRole(ctx context.Context, role domain.EmployeeRole) (int64, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. Unique-constraint conflicts on
	// code, username or email surface as apperrors.ErrDuplicate.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateRefreshToken stores a new refresh token hash and expiry.
	UpdateRefreshToken(ctx context.Context, employeeID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes any stored refresh token state.
	ClearRefreshToken(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
