package dto

import (
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
)

// HoursTrackingParams are the optional project filters for hours tracking.
type HoursTrackingParams struct {
	PlNo        string `form:"plNo"`
	ProjectName string `form:"projectName"`
}

// HoursTrackingResponse returns the matched projects and the rollup totals.
type HoursTrackingResponse struct {
	Projects []ProjectResponse          `json:"projects"`
	Totals   domain.HoursTrackingTotals `json:"totals"`
	Count    int                        `json:"count"`
}

// EmployeeReportParams look up either an employee or a project; an employee
// match takes priority when both could match.
type EmployeeReportParams struct {
	EmployeeID string     `form:"employeeId"` // employee code
	PlNo       string     `form:"plNo"`
	Name       string     `form:"name"`
	StartDate  *time.Time `form:"startDate"`
	EndDate    *time.Time `form:"endDate"`
}

// EmployeeReportResponse is either an employee branch (timesheets) or a
// project branch (assigned employees); Type tells which.
type EmployeeReportResponse struct {
	Type              string              `json:"type,omitempty"` // "employee" or "project"
	Employee          *EmployeeResponse   `json:"employee,omitempty"`
	Timesheets        []TimesheetResponse `json:"timesheets,omitempty"`
	Project           *ProjectResponse    `json:"project,omitempty"`
	AssignedEmployees []EmployeeResponse  `json:"assignedEmployees,omitempty"`
}

// MiscHoursSearchResponse returns the matching MISC-hours rows.
type MiscHoursSearchResponse struct {
	Count   int                      `json:"count"`
	Details []domain.MiscHoursDetail `json:"details"`
}

// ArchiveSweepResponse reports the result of an archival sweep run.
type ArchiveSweepResponse struct {
	Message       string `json:"message"`
	ArchivedCount int64  `json:"archivedCount"`
}
