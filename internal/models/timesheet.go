package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet is the row shape of the timesheets table. Entries live in their
// own table and are loaded separately.
type Timesheet struct {
	TimesheetID  string `db:"timesheet_id"`
	EmployeeID   string `db:"employee_id"`
	EmployeeCode string `db:"employee_code"`
	EmployeeName string `db:"employee_name"`
	Department   string `db:"department"`

	WeekStartDate time.Time `db:"week_start_date"`
	WeekEndDate   time.Time `db:"week_end_date"`
	WeekNumber    int       `db:"week_number"`
	Year          int       `db:"year"`

	TotalNormalHours   decimal.Decimal `db:"total_normal_hours"`
	TotalOvertimeHours decimal.Decimal `db:"total_overtime_hours"`
	TotalHours         decimal.Decimal `db:"total_hours"`

	Status          string     `db:"status"`
	SubmittedAt     *time.Time `db:"submitted_at"`
	ApprovedBy      *string    `db:"approved_by"`
	ApprovedByName  string     `db:"approved_by_name"`
	ApprovedAt      *time.Time `db:"approved_at"`
	RejectionReason string     `db:"rejection_reason"`

	IsArchived  bool       `db:"is_archived"`
	ArchiveDate *time.Time `db:"archive_date"`

	AuditFields
}

// TimeEntry is the row shape of the time_entries table.
type TimeEntry struct {
	EntryID       string          `db:"entry_id"`
	TimesheetID   string          `db:"timesheet_id"`
	EntryDate     time.Time       `db:"entry_date"`
	ProjectCode   string          `db:"project_code"`
	Location      string          `db:"location"`
	NormalHours   decimal.Decimal `db:"normal_hours"`
	OvertimeHours decimal.Decimal `db:"overtime_hours"`
	ActivityCode  string          `db:"activity_code"`
	Remarks       string          `db:"remarks"`
	DayOfWeek     string          `db:"day_of_week"`
}
