package repositories

import (
	"context"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// ActivityCodeReader defines read operations for activity code data.
type ActivityCodeReader interface {
	// FindActivityCodeByID retrieves an activity code by internal ID.
	FindActivityCodeByID(ctx context.Context, activityCodeID string) (*domain.ActivityCode, error)

	// FindActivityCode retrieves the activity code matching the unique
	// (code, department) pair.
	FindActivityCode(ctx context.Context, code string, department string) (*domain.ActivityCode, error)

	// ListActivityCodes retrieves activity codes, optionally narrowed to a
	// department, ordered by code.
	ListActivityCodes(ctx context.Context, department string) ([]domain.ActivityCode, error)
}

// ActivityCodeWriter defines write operations for activity code data.
type ActivityCodeWriter interface {
	// SaveActivityCode persists a new activity code. A (code, department)
	// conflict surfaces as apperrors.ErrDuplicate.
	SaveActivityCode(ctx context.Context, ac domain.ActivityCode) error

	// UpdateActivityCode updates an existing activity code.
	UpdateActivityCode(ctx context.Context, ac domain.ActivityCode) error

	// DeleteActivityCode removes an activity code by ID.
	DeleteActivityCode(ctx context.Context, activityCodeID string) error
}

// ActivityCodeRepositoryFacade combines all activity code repository interfaces.
type ActivityCodeRepositoryFacade interface {
	ActivityCodeReader
	ActivityCodeWriter
}
