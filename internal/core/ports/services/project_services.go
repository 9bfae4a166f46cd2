package services

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// ProjectReaderSvc defines read operations for project data.
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project by internal ID.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// GetProjectByPlNo retrieves a project by its exact project number.
	GetProjectByPlNo(ctx context.Context, plNo string) (*domain.Project, error)

	// ListProjects retrieves projects matching the filter.
	ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data.
type ProjectWriterSvc interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorID string) (*domain.Project, error)

	// UpdateProject applies a partial update to a project.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingEmployeeID string) (*domain.Project, error)
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
