package dto

import "time"

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-service registration payload. Registered
// accounts always start with the employee role.
type RegisterRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Department   string `json:"department"`
}

// LoginResponse returns the access token plus the authenticated employee.
// The refresh token travels in an HTTP-only cookie, not the body.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      EmployeeResponse `json:"user"`
}

// RefreshResponse returns a rotated access token.
type RefreshResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
