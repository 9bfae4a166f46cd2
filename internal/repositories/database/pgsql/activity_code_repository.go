package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/engiops/timesheet_mgmt_app/internal/models"
	"github.com/engiops/timesheet_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityCodeRepository struct {
	BaseRepository
}

func newPgxActivityCodeRepository(pool *pgxpool.Pool) portsrepo.ActivityCodeRepositoryFacade {
	return &PgxActivityCodeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxActivityCodeRepository implements portsrepo.ActivityCodeRepositoryFacade
var _ portsrepo.ActivityCodeRepositoryFacade = (*PgxActivityCodeRepository)(nil)

const activityCodeColumns = `
	activity_code_id, code, name, department, description,
	created_at, created_by, last_updated_at, last_updated_by`

func scanActivityCode(row pgx.Row) (models.ActivityCode, error) {
	var m models.ActivityCode
	err := row.Scan(
		&m.ActivityCodeID,
		&m.Code,
		&m.Name,
		&m.Department,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxActivityCodeRepository) FindActivityCodeByID(ctx context.Context, activityCodeID string) (*domain.ActivityCode, error) {
	query := `SELECT ` + activityCodeColumns + ` FROM activity_codes WHERE activity_code_id = $1;`
	m, err := scanActivityCode(r.Pool.QueryRow(ctx, query, activityCodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find activity code by ID %s: %w", activityCodeID, err)
	}
	ac := mapping.ToDomainActivityCode(m)
	return &ac, nil
}

func (r *PgxActivityCodeRepository) FindActivityCode(ctx context.Context, code string, department string) (*domain.ActivityCode, error) {
	query := `SELECT ` + activityCodeColumns + ` FROM activity_codes WHERE code = $1 AND department = $2;`
	m, err := scanActivityCode(r.Pool.QueryRow(ctx, query, code, department))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find activity code %s/%s: %w", code, department, err)
	}
	ac := mapping.ToDomainActivityCode(m)
	return &ac, nil
}

func (r *PgxActivityCodeRepository) ListActivityCodes(ctx context.Context, department string) ([]domain.ActivityCode, error) {
	query := `SELECT ` + activityCodeColumns + ` FROM activity_codes`
	var args []interface{}
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity codes: %w", err)
	}
	defer rows.Close()

	var out []domain.ActivityCode
	for rows.Next() {
		m, err := scanActivityCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity code row: %w", err)
		}
		out = append(out, mapping.ToDomainActivityCode(m))
	}
	return out, rows.Err()
}

func (r *PgxActivityCodeRepository) SaveActivityCode(ctx context.Context, ac domain.ActivityCode) error {
	m := mapping.ToModelActivityCode(ac)
	query := `
		INSERT INTO activity_codes (
			activity_code_id, code, name, department, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActivityCodeID,
		m.Code,
		m.Name,
		m.Department,
		m.Description,
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
		return fmt.Errorf("failed to save activity code %s: %w", m.ActivityCodeID, err)
	}
	return nil
}

func (r *PgxActivityCodeRepository) UpdateActivityCode(ctx context.Context, ac domain.ActivityCode) error {
	m := mapping.ToModelActivityCode(ac)
	query := `
		UPDATE activity_codes SET
			name = $2,
			description = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE activity_code_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ActivityCodeID,
		m.Name,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity code %s: %w", m.ActivityCodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxActivityCodeRepository) DeleteActivityCode(ctx context.Context, activityCodeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM activity_codes WHERE activity_code_id = $1;`, activityCodeID)
	if err != nil {
		return fmt.Errorf("failed to delete activity code %s: %w", activityCodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
