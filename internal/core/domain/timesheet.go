package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus indicates where a timesheet sits in its approval lifecycle.
type TimesheetStatus string

const (
	TimesheetDraft     TimesheetStatus = "draft"
	TimesheetSubmitted TimesheetStatus = "submitted"
	TimesheetApproved  TimesheetStatus = "approved"
	TimesheetRejected  TimesheetStatus = "rejected"
)

// Sentinel project codes an entry may carry instead of a real project.
const (
	ProjectCodeMisc    = "MISC"
	ProjectCodeHoliday = "Holiday"
	ProjectCodeLeave   = "Leave"

	// ActivityCodeMisc marks miscellaneous (non-project) time on an entry.
	ActivityCodeMisc = "MISC"

	// MiscProjectName is the long-form project code some clients send for
	// miscellaneous time; reporting treats it the same as ActivityCodeMisc.
	MiscProjectName = "Miscellaneous Activity"
)

// MaxHoursPerEntry bounds normal and overtime hours on a single entry.
var MaxHoursPerEntry = decimal.NewFromInt(24)

// TimeEntry is a single day/project/activity record of hours within a timesheet.
// It has no identity outside its owning timesheet.
type TimeEntry struct {
	EntryID       string          `json:"entryID"`
	Date          time.Time       `json:"date"`
	ProjectCode   string          `json:"projectCode"`
	Location      string          `json:"location,omitempty"`
	NormalHours   decimal.Decimal `json:"normalHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	ActivityCode  string          `json:"activityCode"`
	Remarks       string          `json:"remarks,omitempty"`
	DayOfWeek     string          `json:"dayOfWeek,omitempty"` // informational only, never used for rollups
}

// TotalHours returns normal plus overtime hours for this entry.
func (e TimeEntry) TotalHours() decimal.Decimal {
	return e.NormalHours.Add(e.OvertimeHours)
}

// IsMisc reports whether the entry records miscellaneous (non-project) time.
func (e TimeEntry) IsMisc() bool {
	return e.ActivityCode == ActivityCodeMisc || e.ProjectCode == MiscProjectName
}

// Timesheet is one employee's weekly aggregate of entries plus its lifecycle
// state. Totals, week number and year are derived fields: they are recomputed
// from the entries and the week start date on every persist and never trusted
// from client input.
type Timesheet struct {
	TimesheetID string `json:"timesheetID"`
	EmployeeID  string `json:"employeeID"`

	// Snapshot of the employee at submission time. Deliberately not
	// re-synced when the employee record later changes.
	EmployeeCode string `json:"employeeCode"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`

	WeekStartDate time.Time `json:"weekStartDate"`
	WeekEndDate   time.Time `json:"weekEndDate"`
	WeekNumber    int       `json:"weekNumber"` // derived, see WeekOfYear
	Year          int       `json:"year"`       // derived, see WeekOfYear

	Entries []TimeEntry `json:"entries,omitempty"`

	TotalNormalHours   decimal.Decimal `json:"totalNormalHours"`
	TotalOvertimeHours decimal.Decimal `json:"totalOvertimeHours"`
	TotalHours         decimal.Decimal `json:"totalHours"`

	Status          TimesheetStatus `json:"status"`
	SubmittedAt     *time.Time      `json:"submittedAt,omitempty"`
	ApprovedBy      *string         `json:"approvedBy,omitempty"`
	ApprovedByName  string          `json:"approvedByName,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`

	IsArchived  bool       `json:"isArchived"`
	ArchiveDate *time.Time `json:"archiveDate,omitempty"`

	AuditFields
}

// WeekOfYear derives (year, weekNumber) from a week start date.
//
// year is the calendar year of the start date, not an ISO week-year: a week
// spanning a year boundary keeps the start date's year. weekNumber is
// ceil((daysSinceJan1+1)/7) with daysSinceJan1 counted zero-based. This is a
// simplified ordinal week, intentionally not ISO-8601.
func WeekOfYear(weekStart time.Time) (year int, weekNumber int) {
	d := DateOnly(weekStart)
	year = d.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceJan1 := int(d.Sub(jan1).Hours() / 24)
	weekNumber = (daysSinceJan1 + 7) / 7 // ceil((days+1)/7) for non-negative days
	return year, weekNumber
}

// DateOnly strips any time-of-day component, normalizing to midnight UTC.
// Week boundaries and entry dates are date-only values; normalizing here is
// what makes the duplicate-week uniqueness comparison exact.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Recalculate recomputes every derived field of the timesheet from its
// entries and week start date. It runs on every persist path and is
// idempotent: recomputing an unchanged timesheet yields identical values.
func (t *Timesheet) Recalculate() {
	t.Year, t.WeekNumber = WeekOfYear(t.WeekStartDate)

	normal := decimal.Zero
	overtime := decimal.Zero
	for _, e := range t.Entries {
		normal = normal.Add(e.NormalHours)
		overtime = overtime.Add(e.OvertimeHours)
	}
	t.TotalNormalHours = normal
	t.TotalOvertimeHours = overtime
	t.TotalHours = normal.Add(overtime)
}
