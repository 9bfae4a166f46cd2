package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
	"github.com/engiops/timesheet_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `
	employee_id, employee_code, first_name, last_name, username, email, phone,
	role, department, join_date, status, password_hash,
	created_at, created_by, last_updated_at, last_updated_by,
	refresh_token_hash, refresh_token_expiry_time`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.EmployeeCode,
		&m.FirstName,
		&m.LastName,
		&m.Username,
		&m.Email,
		&m.Phone,
		&m.Role,
		&m.Department,
		&m.JoinDate,
		&m.Status,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxEmployeeRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Employee, error) {
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	e := mapping.ToDomainEmployee(m)
	return &e, nil
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...interface{}) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		out = append(out, mapping.ToDomainEmployee(m))
	}
	return out, rows.Err()
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1;`, employeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE username = $1;`, username)
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE lower(email) = lower($1);`, email)
}

func (r *PgxEmployeeRepository) FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_code = $1;`, employeeCode)
}

func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return map[string]domain.Employee{}, nil
	}
	list, err := r.queryEmployees(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = ANY($1);`, employeeIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Employee, len(list))
	for _, e := range list {
		out[e.EmployeeID] = e
	}
	return out, nil
}

func (r *PgxEmployeeRepository) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	pattern := "%" + query + "%"
	sqlQuery := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR employee_code ILIKE $1
			OR (first_name || ' ' || last_name) ILIKE $1
		ORDER BY employee_code;`
	return r.queryEmployees(ctx, sqlQuery, pattern)
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.ListEmployeesFilter) ([]domain.Employee, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	var args []interface{}
	if filter.Role != "" {
		args = append(args, string(filter.Role))
		query += ` AND role = $` + strconv.Itoa(len(args))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += ` AND department = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY employee_code LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	return r.queryEmployees(ctx, query, args...)
}

func (r *PgxEmployeeRepository) CountEmployeesByRole(ctx context.Context, role domain.EmployeeRole) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE role = $1;`, string(role)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by role: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (
			employee_id, employee_code, first_name, last_name, username, email, phone,
			role, department, join_date, status, password_hash,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.EmployeeCode,
		m.FirstName,
		m.LastName,
		m.Username,
		m.Email,
		m.Phone,
		m.Role,
		m.Department,
		m.JoinDate,
		m.Status,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			role = $6,
			department = $7,
			join_date = $8,
			status = $9,
			password_hash = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.Role,
		m.Department,
		m.JoinDate,
		m.Status,
		m.PasswordHash,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateRefreshToken(ctx context.Context, employeeID string, refreshTokenHash string, expiryTime time.Time) error {
	query := `
		UPDATE employees SET
			refresh_token_hash = $2,
			refresh_token_expiry_time = $3,
			last_updated_at = NOW()
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, refreshTokenHash, expiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) ClearRefreshToken(ctx context.Context, employeeID string) error {
	query := `
		UPDATE employees SET
			refresh_token_hash = NULL,
			refresh_token_expiry_time = NULL,
			last_updated_at = NOW()
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
