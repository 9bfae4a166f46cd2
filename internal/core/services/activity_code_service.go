package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// activityCodeService manages department-scoped activity codes.
type activityCodeService struct {
	activityCodeRepo portsrepo.ActivityCodeRepositoryFacade
}

// NewActivityCodeService creates a new activity code service.
func NewActivityCodeService(activityCodeRepo portsrepo.ActivityCodeRepositoryFacade) portssvc.ActivityCodeSvcFacade {
	return &activityCodeService{activityCodeRepo: activityCodeRepo}
}

// Ensure activityCodeService implements the portssvc.ActivityCodeSvcFacade interface
var _ portssvc.ActivityCodeSvcFacade = (*activityCodeService)(nil)

func (s *activityCodeService) GetActivityCodeByID(ctx context.Context, activityCodeID string) (*domain.ActivityCode, error) {
	return s.activityCodeRepo.FindActivityCodeByID(ctx, activityCodeID)
}

func (s *activityCodeService) ListActivityCodes(ctx context.Context, department string) ([]domain.ActivityCode, error) {
	return s.activityCodeRepo.ListActivityCodes(ctx, department)
}

func (s *activityCodeService) CreateActivityCode(ctx context.Context, req dto.CreateActivityCodeRequest, creatorID string) (*domain.ActivityCode, error) {
	now := time.Now().UTC()
	ac := domain.ActivityCode{
		ActivityCodeID: uuid.NewString(),
		Code:           req.Code,
		Name:           req.Name,
		Department:     req.Department,
		Description:    req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.activityCodeRepo.SaveActivityCode(ctx, ac); err != nil {
		return nil, err
	}
	return &ac, nil
}

func (s *activityCodeService) UpdateActivityCode(ctx context.Context, activityCodeID string, req dto.UpdateActivityCodeRequest, requestingEmployeeID string) (*domain.ActivityCode, error) {
	ac, err := s.activityCodeRepo.FindActivityCodeByID(ctx, activityCodeID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		ac.Name = *req.Name
	}
	if req.Description != nil {
		ac.Description = *req.Description
	}
	ac.LastUpdatedAt = time.Now().UTC()
	ac.LastUpdatedBy = requestingEmployeeID

	if err := s.activityCodeRepo.UpdateActivityCode(ctx, *ac); err != nil {
		return nil, err
	}
	return ac, nil
}

func (s *activityCodeService) DeleteActivityCode(ctx context.Context, activityCodeID string) error {
	return s.activityCodeRepo.DeleteActivityCode(ctx, activityCodeID)
}
