package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TimesheetRepo    TimesheetRepositoryFacade
	EmployeeRepo     EmployeeRepositoryFacade
	ProjectRepo      ProjectRepositoryFacade
	ActivityCodeRepo ActivityCodeRepositoryFacade
	LeaveRepo        LeaveRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
