package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
	"github.com/engiops/timesheet_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `
	project_id, pl_no, name, total_hours,
	junior_hours, junior_completed, senior_hours, senior_completed,
	original_total_hours, variation_hours,
	status, start_date, end_date, assigned_employees, departments,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.PlNo,
		&m.Name,
		&m.TotalHours,
		&m.JuniorHours,
		&m.JuniorCompleted,
		&m.SeniorHours,
		&m.SeniorCompleted,
		&m.OriginalTotalHours,
		&m.VariationHours,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.AssignedEmployees,
		&m.Departments,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProjectRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Project, error) {
	m, err := scanProject(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	p := mapping.ToDomainProject(m)
	return &p, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return r.findOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE project_id = $1;`, projectID)
}

func (r *PgxProjectRepository) FindProjectByPlNo(ctx context.Context, plNo string) (*domain.Project, error) {
	return r.findOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE pl_no = $1;`, plNo)
}

func (r *PgxProjectRepository) FindProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	return r.findOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE name ILIKE $1 ORDER BY pl_no LIMIT 1;`, "%"+name+"%")
}

func (r *PgxProjectRepository) SearchProjects(ctx context.Context, filter portsrepo.ProjectSearchFilter) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	var args []interface{}
	if filter.PlNo != "" {
		args = append(args, "%"+filter.PlNo+"%")
		query += ` AND pl_no ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += ` AND $` + strconv.Itoa(len(args)) + ` = ANY(departments)`
	}
	query += ` ORDER BY pl_no;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		out = append(out, mapping.ToDomainProject(m))
	}
	return out, rows.Err()
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (
			project_id, pl_no, name, total_hours,
			junior_hours, junior_completed, senior_hours, senior_completed,
			original_total_hours, variation_hours,
			status, start_date, end_date, assigned_employees, departments,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.PlNo,
		m.Name,
		m.TotalHours,
		m.JuniorHours,
		m.JuniorCompleted,
		m.SeniorHours,
		m.SeniorCompleted,
		m.OriginalTotalHours,
		m.VariationHours,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.AssignedEmployees,
		m.Departments,
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
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		UPDATE projects SET
			name = $2,
			total_hours = $3,
			junior_hours = $4,
			junior_completed = $5,
			senior_hours = $6,
			senior_completed = $7,
			original_total_hours = $8,
			variation_hours = $9,
			status = $10,
			start_date = $11,
			end_date = $12,
			assigned_employees = $13,
			departments = $14,
			last_updated_at = $15,
			last_updated_by = $16
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.TotalHours,
		m.JuniorHours,
		m.JuniorCompleted,
		m.SeniorHours,
		m.SeniorCompleted,
		m.OriginalTotalHours,
		m.VariationHours,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.AssignedEmployees,
		m.Departments,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", m.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
