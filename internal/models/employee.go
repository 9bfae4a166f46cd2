package models

import (
	"database/sql"
	"time"
)

// Employee is the row shape of the employees table.
type Employee struct {
	EmployeeID   string     `db:"employee_id"`
	EmployeeCode string     `db:"employee_code"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Role         string     `db:"role"`
	Department   string     `db:"department"`
	JoinDate     *time.Time `db:"join_date"`
	Status       string     `db:"status"`
	PasswordHash string     `db:"password_hash"`
	AuditFields

	// Refresh token state; hash only, the raw token is never stored.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
