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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeaveRepository struct {
	BaseRepository
}

func newPgxLeaveRepository(pool *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeaveRepository implements portsrepo.LeaveRepositoryFacade
var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

const leaveColumns = `
	leave_request_id, employee_id, start_date, end_date, leave_type, reason,
	document_filename, document_original_name, document_path, document_size,
	status, approved_by, approved_at, rejection_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLeaveRequest(row pgx.Row) (models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.LeaveRequestID,
		&m.EmployeeID,
		&m.StartDate,
		&m.EndDate,
		&m.LeaveType,
		&m.Reason,
		&m.DocumentFilename,
		&m.DocumentOriginalName,
		&m.DocumentPath,
		&m.DocumentSize,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE leave_request_id = $1;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query, leaveRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request by ID %s: %w", leaveRequestID, err)
	}
	lr := mapping.ToDomainLeaveRequest(m)
	return &lr, nil
}

func (r *PgxLeaveRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.ListLeaveRequestsFilter) ([]domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE 1=1`
	var args []interface{}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += ` OFFSET $` + strconv.Itoa(len(args))
		}
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []domain.LeaveRequest
	for rows.Next() {
		m, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		out = append(out, mapping.ToDomainLeaveRequest(m))
	}
	return out, rows.Err()
}

func (r *PgxLeaveRepository) SaveLeaveRequest(ctx context.Context, lr domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(lr)
	query := `
		INSERT INTO leave_requests (
			leave_request_id, employee_id, start_date, end_date, leave_type, reason,
			document_filename, document_original_name, document_path, document_size,
			status, approved_by, approved_at, rejection_reason,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LeaveRequestID,
		m.EmployeeID,
		m.StartDate,
		m.EndDate,
		m.LeaveType,
		m.Reason,
		m.DocumentFilename,
		m.DocumentOriginalName,
		m.DocumentPath,
		m.DocumentSize,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectionReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave request %s: %w", m.LeaveRequestID, err)
	}
	return nil
}

// TransitionLeaveStatus flips status only while the row still holds
// fromStatus, mirroring the timesheet transition guard.
func (r *PgxLeaveRepository) TransitionLeaveStatus(ctx context.Context, leaveRequestID string, fromStatus, toStatus domain.LeaveStatus, approvedBy *string, approvedAt *time.Time, rejectionReason string, updatedBy string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE leave_requests SET
			status = $3,
			approved_by = $4,
			approved_at = $5,
			rejection_reason = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE leave_request_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		leaveRequestID,
		string(fromStatus),
		string(toStatus),
		approvedBy,
		approvedAt,
		rejectionReason,
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition leave request %s: %w", leaveRequestID, err)
	}
	return tag.RowsAffected() > 0, nil
}
