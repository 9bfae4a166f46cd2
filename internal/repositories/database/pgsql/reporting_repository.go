package pgsql

import (
	"context"
	"fmt"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetDashboardStats computes all counters in one round trip. Resubmitted is
// hardcoded to zero: the lifecycle has no resubmission transition, but the
// dashboard payload keeps the slot.
func (r *reportingRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'submitted'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			(SELECT COUNT(*) FROM time_entries WHERE activity_code = $1 OR project_code = $2)
		FROM timesheets;
	`
	var stats domain.DashboardStats
	err := r.Pool.QueryRow(ctx, query, domain.ActivityCodeMisc, domain.MiscProjectName).Scan(
		&stats.TotalUsers,
		&stats.TotalTimesheets,
		&stats.ApprovedTimesheets,
		&stats.PendingTimesheets,
		&stats.RejectedTimesheets,
		&stats.MiscHoursCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return &stats, nil
}

// ListMiscEntriesByEmployees sums MISC hours per employee week. The week label
// matches the export format: "<week start> - <week end>".
func (r *reportingRepository) ListMiscEntriesByEmployees(ctx context.Context, employeeIDs []string) ([]domain.MiscHoursDetail, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT
			t.employee_name,
			t.employee_code,
			to_char(t.week_start_date, 'YYYY-MM-DD') || ' - ' || to_char(t.week_end_date, 'YYYY-MM-DD'),
			COALESCE(SUM(e.normal_hours + e.overtime_hours), 0)
		FROM timesheets t
		JOIN time_entries e ON e.timesheet_id = t.timesheet_id
		WHERE t.employee_id = ANY($1)
			AND (e.activity_code = $2 OR e.project_code = $3)
		GROUP BY t.timesheet_id, t.employee_name, t.employee_code, t.week_start_date, t.week_end_date
		ORDER BY t.week_start_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeIDs, domain.ActivityCodeMisc, domain.MiscProjectName)
	if err != nil {
		return nil, fmt.Errorf("failed to query misc hours: %w", err)
	}
	defer rows.Close()

	var out []domain.MiscHoursDetail
	for rows.Next() {
		var d domain.MiscHoursDetail
		if err := rows.Scan(&d.EmployeeName, &d.EmployeeCode, &d.Week, &d.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan misc hours row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
