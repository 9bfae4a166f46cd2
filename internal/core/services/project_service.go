package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// projectService provides project budget management.
type projectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

// Ensure projectService implements the portssvc.ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) GetProjectByPlNo(ctx context.Context, plNo string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByPlNo(ctx, plNo)
}

func (s *projectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error) {
	filter := portsrepo.ProjectSearchFilter{
		PlNo:       params.PlNo,
		Name:       params.Name,
		Status:     domain.ProjectStatus(params.Status),
		Department: params.Department,
	}
	return s.projectRepo.SearchProjects(ctx, filter)
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectActive
	}

	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:         uuid.NewString(),
		PlNo:              req.PlNo,
		Name:              req.Name,
		TotalHours:        req.TotalHours,
		JuniorHours:       req.JuniorHours,
		SeniorHours:       req.SeniorHours,
		VariationHours:    req.VariationHours,
		Status:            status,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		AssignedEmployees: req.AssignedEmployees,
		Departments:       req.Departments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	logger.Info("Project created", slog.String("project_id", project.ProjectID), slog.String("pl_no", project.PlNo))
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingEmployeeID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.TotalHours != nil {
		// First change to the total budget snapshots the original value.
		if project.OriginalTotalHours == nil && !project.TotalHours.Equal(*req.TotalHours) {
			original := project.TotalHours
			project.OriginalTotalHours = &original
		}
		project.TotalHours = *req.TotalHours
	}
	if req.JuniorHours != nil {
		project.JuniorHours = *req.JuniorHours
	}
	if req.JuniorCompleted != nil {
		project.JuniorCompleted = *req.JuniorCompleted
	}
	if req.SeniorHours != nil {
		project.SeniorHours = *req.SeniorHours
	}
	if req.SeniorCompleted != nil {
		project.SeniorCompleted = *req.SeniorCompleted
	}
	if req.VariationHours != nil {
		project.VariationHours = *req.VariationHours
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.AssignedEmployees != nil {
		project.AssignedEmployees = *req.AssignedEmployees
	}
	if req.Departments != nil {
		project.Departments = *req.Departments
	}
	project.LastUpdatedAt = time.Now().UTC()
	project.LastUpdatedBy = requestingEmployeeID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}
