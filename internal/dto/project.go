package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest creates a project (admin only).
type CreateProjectRequest struct {
	PlNo            string          `json:"plNo" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	TotalHours      decimal.Decimal `json:"totalHours" binding:"required"`
	JuniorHours     decimal.Decimal `json:"juniorHours"`
	SeniorHours     decimal.Decimal `json:"seniorHours"`
	VariationHours  decimal.Decimal `json:"variationHours"`
	Status          string          `json:"status" binding:"omitempty,oneof=active on-hold completed cancelled"`
	StartDate       *time.Time      `json:"startDate"`
	EndDate         *time.Time      `json:"endDate"`
	AssignedEmployees []string      `json:"assignedEmployees"`
	Departments     []string        `json:"departments"`
}

// UpdateProjectRequest carries optional project field updates, including
// progress on the junior/senior completed counters.
type UpdateProjectRequest struct {
	Name            *string          `json:"name"`
	TotalHours      *decimal.Decimal `json:"totalHours"`
	JuniorHours     *decimal.Decimal `json:"juniorHours"`
	JuniorCompleted *decimal.Decimal `json:"juniorCompleted"`
	SeniorHours     *decimal.Decimal `json:"seniorHours"`
	SeniorCompleted *decimal.Decimal `json:"seniorCompleted"`
	VariationHours  *decimal.Decimal `json:"variationHours"`
	Status          *string          `json:"status" binding:"omitempty,oneof=active on-hold completed cancelled"`
	StartDate       *time.Time       `json:"startDate"`
	EndDate         *time.Time       `json:"endDate"`
	AssignedEmployees *[]string      `json:"assignedEmployees"`
	Departments     *[]string        `json:"departments"`
}

// ListProjectsParams filters the project listing.
type ListProjectsParams struct {
	Status     string `form:"status"`
	Department string `form:"department"`
	PlNo       string `form:"plNo"`
	Name       string `form:"name"`
}

// ProjectResponse is the API shape of a project including the derived
// consumed/balance rollups.
type ProjectResponse struct {
	ProjectID       string          `json:"projectID"`
	PlNo            string          `json:"plNo"`
	Name            string          `json:"name"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	JuniorHours     decimal.Decimal `json:"juniorHours"`
	JuniorCompleted decimal.Decimal `json:"juniorCompleted"`
	SeniorHours     decimal.Decimal `json:"seniorHours"`
	SeniorCompleted decimal.Decimal `json:"seniorCompleted"`
	VariationHours  decimal.Decimal `json:"variationHours"`
	ConsumedHours   decimal.Decimal `json:"consumedHours"`
	BalanceHours    decimal.Decimal `json:"balanceHours"`
	Status          string          `json:"status"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	AssignedEmployees []string      `json:"assignedEmployees,omitempty"`
	Departments     []string        `json:"departments,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToProjectResponse converts a domain project to its API shape.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ProjectID,
		PlNo:            p.PlNo,
		Name:            p.Name,
		TotalHours:      p.TotalHours,
		JuniorHours:     p.JuniorHours,
		JuniorCompleted: p.JuniorCompleted,
		SeniorHours:     p.SeniorHours,
		SeniorCompleted: p.SeniorCompleted,
		VariationHours:  p.VariationHours,
		ConsumedHours:   p.ConsumedHours(),
		BalanceHours:    p.BalanceHours(),
		Status:          string(p.Status),
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		AssignedEmployees: p.AssignedEmployees,
		Departments:     p.Departments,
		CreatedAt:       p.CreatedAt,
	}
}

// ToProjectResponses converts a slice of domain projects.
func ToProjectResponses(ps []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(ps))
	for i := range ps {
		out[i] = ToProjectResponse(&ps[i])
	}
	return out
}
