package services

import (
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Employee first since auth and timesheet services depend on it
	container.Employee = NewEmployeeService(repos.EmployeeRepo)

	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.EmployeeRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.ActivityCode = NewActivityCodeService(repos.ActivityCodeRepo)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.EmployeeRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.ProjectRepo, repos.EmployeeRepo, repos.TimesheetRepo)

	container.Token = NewTokenService(cfg, container.Employee)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
