package domain

import (
	"database/sql"
	"time"
)

// EmployeeRole defines the access level of an employee account.
type EmployeeRole string

const (
	RoleAdmin    EmployeeRole = "admin"
	RoleManager  EmployeeRole = "manager"
	RoleEmployee EmployeeRole = "employee"
)

// CanManageTimesheets reports whether the role may approve, reject and list
// other employees' timesheets.
func (r EmployeeRole) CanManageTimesheets() bool {
	return r == RoleAdmin || r == RoleManager
}

// EmployeeStatus marks whether an account may authenticate.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee represents a user of the application. EmployeeCode is the
// human-facing identifier ("EMP123" or "T1166" style); EmployeeID is the
// internal UUID referenced by timesheets and projects.
type Employee struct {
	EmployeeID   string         `json:"employeeID"`
	EmployeeCode string         `json:"employeeCode"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Role         EmployeeRole   `json:"role"`
	Department   string         `json:"department"`
	JoinDate     *time.Time     `json:"joinDate,omitempty"`
	Status       EmployeeStatus `json:"status"`
	PasswordHash string         `json:"-"`
	AuditFields

	// Refresh token state; hash only, the raw token is never stored.
	RefreshTokenHash       sql.NullString `json:"-"`
	RefreshTokenExpiryTime sql.NullTime   `json:"-"`
}

// FullName returns the display name used for snapshots and exports.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
