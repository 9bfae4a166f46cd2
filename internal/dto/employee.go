package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// CreateEmployeeRequest creates a new employee account (admin only).
type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Department   string `json:"department"`
	JoinDate     *time.Time `json:"joinDate"`
}

// UpdateEmployeeRequest carries optional employee field updates.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Department *string `json:"department"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListEmployeesParams filters the employee listing.
type ListEmployeesParams struct {
	Role       string `form:"role"`
	Department string `form:"department"`
	Status     string `form:"status"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// EmployeeResponse is the API shape of an employee; credentials never leave
// the service layer.
type EmployeeResponse struct {
	EmployeeID   string     `json:"employeeID"`
	EmployeeCode string     `json:"employeeCode"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	Department   string     `json:"department"`
	JoinDate     *time.Time `json:"joinDate,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ToEmployeeResponse converts a domain employee to its API shape.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Username:     e.Username,
		Email:        e.Email,
		Phone:        e.Phone,
		Role:         string(e.Role),
		Department:   e.Department,
		JoinDate:     e.JoinDate,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain employees.
func ToEmployeeResponses(es []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(es))
	for i := range es {
		out[i] = ToEmployeeResponse(&es[i])
	}
	return out
}
