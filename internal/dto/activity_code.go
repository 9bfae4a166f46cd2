package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// CreateActivityCodeRequest creates a department-scoped activity code.
type CreateActivityCodeRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Description string `json:"description"`
}

// UpdateActivityCodeRequest carries optional activity code updates.
type UpdateActivityCodeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ActivityCodeResponse is the API shape of an activity code.
type ActivityCodeResponse struct {
	ActivityCodeID string    `json:"activityCodeID"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Department     string    `json:"department"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToActivityCodeResponse converts a domain activity code to its API shape.
func ToActivityCodeResponse(a *domain.ActivityCode) ActivityCodeResponse {
	return ActivityCodeResponse{
		ActivityCodeID: a.ActivityCodeID,
		Code:           a.Code,
		Name:           a.Name,
		Department:     a.Department,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
	}
}

// ToActivityCodeResponses converts a slice of domain activity codes.
func ToActivityCodeResponses(as []domain.ActivityCode) []ActivityCodeResponse {
	out := make([]ActivityCodeResponse, len(as))
	for i := range as {
		out[i] = ToActivityCodeResponse(&as[i])
	}
	return out
}
