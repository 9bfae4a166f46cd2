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
	"github.com/engiops/timesheet_mgmt_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTimesheetRepository struct {
	BaseRepository
}

func newPgxTimesheetRepository(pool *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTimesheetRepository implements portsrepo.TimesheetRepositoryFacade
var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

const timesheetColumns = `
	timesheet_id, employee_id, employee_code, employee_name, department,
	week_start_date, week_end_date, week_number, year,
	total_normal_hours, total_overtime_hours, total_hours,
	status, submitted_at, approved_by, approved_by_name, approved_at, rejection_reason,
	is_archived, archive_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTimesheet(row pgx.Row) (models.Timesheet, error) {
	var m models.Timesheet
	err := row.Scan(
		&m.TimesheetID,
		&m.EmployeeID,
		&m.EmployeeCode,
		&m.EmployeeName,
		&m.Department,
		&m.WeekStartDate,
		&m.WeekEndDate,
		&m.WeekNumber,
		&m.Year,
		&m.TotalNormalHours,
		&m.TotalOvertimeHours,
		&m.TotalHours,
		&m.Status,
		&m.SubmittedAt,
		&m.ApprovedBy,
		&m.ApprovedByName,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.IsArchived,
		&m.ArchiveDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTimesheetRepository) queryTimesheets(ctx context.Context, query string, args ...interface{}) ([]domain.Timesheet, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	var out []domain.Timesheet
	for rows.Next() {
		m, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		out = append(out, mapping.ToDomainTimesheet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet rows: %w", err)
	}
	return out, nil
}

// loadEntries fetches and attaches entries for the given timesheets, ordered
// by entry date within each timesheet.
func (r *PgxTimesheetRepository) loadEntries(ctx context.Context, timesheets []domain.Timesheet) error {
	if len(timesheets) == 0 {
		return nil
	}
	ids := make([]string, len(timesheets))
	byID := make(map[string]*domain.Timesheet, len(timesheets))
	for i := range timesheets {
		ids[i] = timesheets[i].TimesheetID
		byID[timesheets[i].TimesheetID] = &timesheets[i]
	}

	query := `
		SELECT entry_id, timesheet_id, entry_date, project_code, location,
		       normal_hours, overtime_hours, activity_code, remarks, day_of_week
		FROM time_entries
		WHERE timesheet_id = ANY($1)
		ORDER BY entry_date ASC, entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TimeEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TimesheetID,
			&m.EntryDate,
			&m.ProjectCode,
			&m.Location,
			&m.NormalHours,
			&m.OvertimeHours,
			&m.ActivityCode,
			&m.Remarks,
			&m.DayOfWeek,
		); err != nil {
			return fmt.Errorf("failed to scan time entry row: %w", err)
		}
		if ts, ok := byID[m.TimesheetID]; ok {
			ts.Entries = append(ts.Entries, mapping.ToDomainTimeEntry(m))
		}
	}
	return rows.Err()
}

func (r *PgxTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE timesheet_id = $1;`
	m, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet by ID %s: %w", timesheetID, err)
	}
	list := []domain.Timesheet{mapping.ToDomainTimesheet(m)}
	if err := r.loadEntries(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *PgxTimesheetRepository) FindTimesheetByEmployeeAndWeek(ctx context.Context, employeeID string, weekStart, weekEnd time.Time) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_id = $1 AND week_start_date = $2 AND week_end_date = $3;`
	m, err := scanTimesheet(r.Pool.QueryRow(ctx, query, employeeID, weekStart, weekEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet by employee and week: %w", err)
	}
	list := []domain.Timesheet{mapping.ToDomainTimesheet(m)}
	if err := r.loadEntries(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *PgxTimesheetRepository) FindTimesheetsByIDs(ctx context.Context, timesheetIDs []string) ([]domain.Timesheet, error) {
	if len(timesheetIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE timesheet_id = ANY($1)
		ORDER BY week_start_date ASC;`
	out, err := r.queryTimesheets(ctx, query, timesheetIDs)
	if err != nil {
		return nil, err
	}
	if err := r.loadEntries(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgxTimesheetRepository) ListTimesheetsByEmployee(ctx context.Context, employeeID string, year int, month time.Month) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if year > 0 {
		args = append(args, year)
		query += ` AND year = $` + strconv.Itoa(len(args))
		if month > 0 {
			args = append(args, int(month))
			query += ` AND EXTRACT(MONTH FROM week_start_date) = $` + strconv.Itoa(len(args))
		}
	}
	query += ` ORDER BY week_start_date DESC, created_at DESC;`
	out, err := r.queryTimesheets(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.loadEntries(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgxTimesheetRepository) ListTimesheets(ctx context.Context, filter portsrepo.ListTimesheetsFilter) ([]domain.Timesheet, *string, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += ` AND department = $` + strconv.Itoa(len(args))
	}
	if filter.EmployeeCode != "" {
		args = append(args, "%"+filter.EmployeeCode+"%")
		query += ` AND employee_code ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		query += ` AND year = $` + strconv.Itoa(len(args))
		if filter.Month > 0 {
			args = append(args, int(filter.Month))
			query += ` AND EXTRACT(MONTH FROM week_start_date) = $` + strconv.Itoa(len(args))
		}
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		weekStart, createdAt, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("invalid pagination token")
		}
		args = append(args, weekStart, createdAt)
		query += fmt.Sprintf(` AND (week_start_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	// One extra row tells us whether another page exists.
	args = append(args, limit+1)
	query += ` ORDER BY week_start_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	out, err := r.queryTimesheets(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		token := pagination.EncodeToken(last.WeekStartDate, last.CreatedAt)
		nextToken = &token
	}
	if err := r.loadEntries(ctx, out); err != nil {
		return nil, nil, err
	}
	return out, nextToken, nil
}

func (r *PgxTimesheetRepository) ListRecentTimesheets(ctx context.Context, limit int) ([]domain.Timesheet, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `SELECT ` + timesheetColumns + `
		FROM timesheets
		ORDER BY created_at DESC
		LIMIT $1;`
	return r.queryTimesheets(ctx, query, limit)
}

func (r *PgxTimesheetRepository) SaveTimesheet(ctx context.Context, ts domain.Timesheet) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTimesheet(ts)
	headerQuery := `
		INSERT INTO timesheets (
			timesheet_id, employee_id, employee_code, employee_name, department,
			week_start_date, week_end_date, week_number, year,
			total_normal_hours, total_overtime_hours, total_hours,
			status, submitted_at, approved_by, approved_by_name, approved_at, rejection_reason,
			is_archived, archive_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.TimesheetID,
		m.EmployeeID,
		m.EmployeeCode,
		m.EmployeeName,
		m.Department,
		m.WeekStartDate,
		m.WeekEndDate,
		m.WeekNumber,
		m.Year,
		m.TotalNormalHours,
		m.TotalOvertimeHours,
		m.TotalHours,
		m.Status,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedByName,
		m.ApprovedAt,
		m.RejectionReason,
		m.IsArchived,
		m.ArchiveDate,
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
		return fmt.Errorf("failed to insert timesheet %s: %w", m.TimesheetID, err)
	}

	if err := insertEntries(ctx, tx, ts.TimesheetID, ts.Entries); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTimesheetRepository) ReplaceTimesheetEntries(ctx context.Context, ts domain.Timesheet) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE timesheet_id = $1;`, ts.TimesheetID); err != nil {
		return fmt.Errorf("failed to clear entries for timesheet %s: %w", ts.TimesheetID, err)
	}
	if err := insertEntries(ctx, tx, ts.TimesheetID, ts.Entries); err != nil {
		return err
	}

	m := mapping.ToModelTimesheet(ts)
	updateQuery := `
		UPDATE timesheets SET
			total_normal_hours = $2,
			total_overtime_hours = $3,
			total_hours = $4,
			week_number = $5,
			year = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE timesheet_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.TimesheetID,
		m.TotalNormalHours,
		m.TotalOvertimeHours,
		m.TotalHours,
		m.WeekNumber,
		m.Year,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet totals %s: %w", m.TimesheetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func insertEntries(ctx context.Context, tx pgx.Tx, timesheetID string, entries []domain.TimeEntry) error {
	entryQuery := `
		INSERT INTO time_entries (
			entry_id, timesheet_id, entry_date, project_code, location,
			normal_hours, overtime_hours, activity_code, remarks, day_of_week
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, e := range entries {
		m := mapping.ToModelTimeEntry(e, timesheetID)
		if _, err := tx.Exec(ctx, entryQuery,
			m.EntryID,
			m.TimesheetID,
			m.EntryDate,
			m.ProjectCode,
			m.Location,
			m.NormalHours,
			m.OvertimeHours,
			m.ActivityCode,
			m.Remarks,
			m.DayOfWeek,
		); err != nil {
			return fmt.Errorf("failed to insert time entry %s: %w", m.EntryID, err)
		}
	}
	return nil
}

// TransitionTimesheetStatus flips status only while the row still holds
// fromStatus, so concurrent approvals cannot both win.
func (r *PgxTimesheetRepository) TransitionTimesheetStatus(ctx context.Context, timesheetID string, fromStatus, toStatus domain.TimesheetStatus, approvedBy *string, approvedAt *time.Time, rejectionReason string, updatedBy string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE timesheets SET
			status = $3,
			approved_by = $4,
			approved_at = $5,
			rejection_reason = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE timesheet_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		timesheetID,
		string(fromStatus),
		string(toStatus),
		approvedBy,
		approvedAt,
		rejectionReason,
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition timesheet %s: %w", timesheetID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxTimesheetRepository) ArchiveTimesheetsCreatedBefore(ctx context.Context, cutoff time.Time, archiveDate time.Time) (int64, error) {
	query := `
		UPDATE timesheets SET
			is_archived = TRUE,
			archive_date = $2,
			last_updated_at = $2
		WHERE created_at < $1 AND is_archived = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, cutoff, archiveDate)
	if err != nil {
		return 0, fmt.Errorf("failed to archive timesheets: %w", err)
	}
	return tag.RowsAffected(), nil
}
