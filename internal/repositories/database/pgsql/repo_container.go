package pgsql

import (
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	timesheetRepo := newPgxTimesheetRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	activityCodeRepo := newPgxActivityCodeRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TimesheetRepo:    timesheetRepo,
		EmployeeRepo:     employeeRepo,
		ProjectRepo:      projectRepo,
		ActivityCodeRepo: activityCodeRepo,
		LeaveRepo:        leaveRepo,
		ReportingRepo:    reportingRepo,
	}
}
