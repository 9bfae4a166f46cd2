package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TimeEntryRequest is a single day's hours within a timesheet submission.
// Hour bounds are checked by the service-side entry validation, not binding,
// so a whole submission fails as one unit.
type TimeEntryRequest struct {
	Date          time.Time       `json:"date" binding:"required"`
	ProjectCode   string          `json:"projectCode" binding:"required"`
	Location      string          `json:"location"`
	NormalHours   decimal.Decimal `json:"normalHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	ActivityCode  string          `json:"activityCode" binding:"required"`
	Remarks       string          `json:"remarks"`
	DayOfWeek     string          `json:"dayOfWeek"`
}

// SubmitTimesheetRequest is the payload for submitting a weekly timesheet.
type SubmitTimesheetRequest struct {
	WeekStartDate time.Time          `json:"weekStartDate" binding:"required"`
	WeekEndDate   time.Time          `json:"weekEndDate" binding:"required"`
	Entries       []TimeEntryRequest `json:"entries" binding:"required"`
}

// RejectTimesheetRequest carries the mandatory rejection reason.
type RejectTimesheetRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ExportTimesheetsRequest selects the timesheets for a bulk export.
type ExportTimesheetsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// ListTimesheetsParams are the manager/admin list filters.
type ListTimesheetsParams struct {
	Status       string `form:"status"`
	Department   string `form:"department"`
	EmployeeCode string `form:"employeeCode"`
	Year         int    `form:"year"`
	Month        int    `form:"month"`
	Limit        int    `form:"limit"`
	NextToken    *string `form:"nextToken"`
}

// MyTimesheetsParams are the owner-scoped list filters.
type MyTimesheetsParams struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

// TimeEntryResponse mirrors a persisted time entry.
type TimeEntryResponse struct {
	EntryID       string          `json:"entryID"`
	Date          time.Time       `json:"date"`
	ProjectCode   string          `json:"projectCode"`
	Location      string          `json:"location,omitempty"`
	NormalHours   decimal.Decimal `json:"normalHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	ActivityCode  string          `json:"activityCode"`
	Remarks       string          `json:"remarks,omitempty"`
	DayOfWeek     string          `json:"dayOfWeek,omitempty"`
}

// TimesheetResponse is the API shape of a timesheet with its derived fields.
type TimesheetResponse struct {
	TimesheetID        string                 `json:"timesheetID"`
	EmployeeID         string                 `json:"employeeID"`
	EmployeeCode       string                 `json:"employeeCode"`
	EmployeeName       string                 `json:"employeeName"`
	Department         string                 `json:"department"`
	WeekStartDate      time.Time              `json:"weekStartDate"`
	WeekEndDate        time.Time              `json:"weekEndDate"`
	WeekNumber         int                    `json:"weekNumber"`
	Year               int                    `json:"year"`
	Entries            []TimeEntryResponse    `json:"entries,omitempty"`
	TotalNormalHours   decimal.Decimal        `json:"totalNormalHours"`
	TotalOvertimeHours decimal.Decimal        `json:"totalOvertimeHours"`
	TotalHours         decimal.Decimal        `json:"totalHours"`
	Status             domain.TimesheetStatus `json:"status"`
	SubmittedAt        *time.Time             `json:"submittedAt,omitempty"`
	ApprovedBy         *string                `json:"approvedBy,omitempty"`
	ApprovedByName     string                 `json:"approvedByName,omitempty"`
	ApprovedAt         *time.Time             `json:"approvedAt,omitempty"`
	RejectionReason    string                 `json:"rejectionReason,omitempty"`
	IsArchived         bool                   `json:"isArchived"`
	CreatedAt          time.Time              `json:"createdAt"`
}

// ListTimesheetsResponse is a paginated timesheet listing.
type ListTimesheetsResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

// SubmitTimesheetResponse wraps the persisted, fully aggregated timesheet.
type SubmitTimesheetResponse struct {
	Message   string            `json:"message"`
	Timesheet TimesheetResponse `json:"timesheet"`
}

// DuplicateTimesheetResponse is returned on a duplicate-week conflict so the
// client can disambiguate against the existing record.
type DuplicateTimesheetResponse struct {
	Error             string             `json:"error"`
	ExistingTimesheet *TimesheetResponse `json:"existingTimesheet,omitempty"`
}

// ToTimesheetResponse converts a domain timesheet to its API shape.
func ToTimesheetResponse(t *domain.Timesheet) TimesheetResponse {
	entries := make([]TimeEntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = TimeEntryResponse{
			EntryID:       e.EntryID,
			Date:          e.Date,
			ProjectCode:   e.ProjectCode,
			Location:      e.Location,
			NormalHours:   e.NormalHours,
			OvertimeHours: e.OvertimeHours,
			ActivityCode:  e.ActivityCode,
			Remarks:       e.Remarks,
			DayOfWeek:     e.DayOfWeek,
		}
	}
	return TimesheetResponse{
		TimesheetID:        t.TimesheetID,
		EmployeeID:         t.EmployeeID,
		EmployeeCode:       t.EmployeeCode,
		EmployeeName:       t.EmployeeName,
		Department:         t.Department,
		WeekStartDate:      t.WeekStartDate,
		WeekEndDate:        t.WeekEndDate,
		WeekNumber:         t.WeekNumber,
		Year:               t.Year,
		Entries:            entries,
		TotalNormalHours:   t.TotalNormalHours,
		TotalOvertimeHours: t.TotalOvertimeHours,
		TotalHours:         t.TotalHours,
		Status:             t.Status,
		SubmittedAt:        t.SubmittedAt,
		ApprovedBy:         t.ApprovedBy,
		ApprovedByName:     t.ApprovedByName,
		ApprovedAt:         t.ApprovedAt,
		RejectionReason:    t.RejectionReason,
		IsArchived:         t.IsArchived,
		CreatedAt:          t.CreatedAt,
	}
}

// ToTimesheetResponses converts a slice of domain timesheets.
func ToTimesheetResponses(ts []domain.Timesheet) []TimesheetResponse {
	out := make([]TimesheetResponse, len(ts))
	for i := range ts {
		out[i] = ToTimesheetResponse(&ts[i])
	}
	return out
}
