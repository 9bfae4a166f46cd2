package services

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
)

// ActivityCodeSvcFacade defines operations for managing activity codes.
type ActivityCodeSvcFacade interface {
	// GetActivityCodeByID retrieves an activity code by internal ID.
	GetActivityCodeByID(ctx context.Context, activityCodeID string) (*domain.ActivityCode, error)

	// ListActivityCodes retrieves activity codes, optionally narrowed to a
	// department.
	ListActivityCodes(ctx context.Context, department string) ([]domain.ActivityCode, error)

	// CreateActivityCode creates a new department-scoped activity code.
	CreateActivityCode(ctx context.Context, req dto.CreateActivityCodeRequest, creatorID string) (*domain.ActivityCode, error)

	// UpdateActivityCode applies a partial update to an activity code.
	UpdateActivityCode(ctx context.Context, activityCodeID string, req dto.UpdateActivityCodeRequest, requestingEmployeeID string) (*domain.ActivityCode, error)

	// DeleteActivityCode removes an activity code.
	DeleteActivityCode(ctx context.Context, activityCodeID string) error
}
