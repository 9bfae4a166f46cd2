package repositories

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ProjectSearchFilter matches projects by plNo and/or name, both
// case-insensitive substrings; zero values mean "all projects".
type ProjectSearchFilter struct {
	PlNo       string
	Name       string
	Status     domain.ProjectStatus
	Department string
}

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by internal ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectByPlNo retrieves a project by its exact project number.
	FindProjectByPlNo(ctx context.Context, plNo string) (*domain.Project, error)

	// FindProjectByName retrieves the first project whose name matches the
	// given case-insensitive substring.
	FindProjectByName(ctx context.Context, name string) (*domain.Project, error)

	// SearchProjects retrieves projects matching the filter.
	SearchProjects(ctx context.Context, filter ProjectSearchFilter) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project. A plNo conflict surfaces as
	// apperrors.ErrDuplicate.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project, including its assigned
	// employee set.
	UpdateProject(ctx context.Context, project domain.Project) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
