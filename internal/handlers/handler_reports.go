package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// reportsHandler handles reporting rollups and timesheet exports.
type reportsHandler struct {
	reportingService portssvc.ReportingService
	timesheetService portssvc.TimesheetSvcFacade
}

func newReportsHandler(rs portssvc.ReportingService, ts portssvc.TimesheetSvcFacade) *reportsHandler {
	return &reportsHandler{reportingService: rs, timesheetService: ts}
}

// registerReportRoutes registers reporting and export routes. All of them are
// manager/admin operations.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, timesheetService portssvc.TimesheetSvcFacade, employeeService portssvc.EmployeeSvcFacade) {
	h := newReportsHandler(reportingService, timesheetService)
	managerOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin)

	reports := rg.Group("/reports", managerOnly)
	{
		reports.GET("/hours-tracking", h.hoursTracking)
		reports.GET("/employee-report", h.employeeReport)
		reports.GET("/misc-hours", adminOnly, h.searchMiscHours)
		reports.GET("/timesheets/:id/export", h.exportTimesheetCSV)
		reports.POST("/timesheets/export", h.exportTimesheetsCSV)
		reports.POST("/timesheets/export/xlsx", h.exportTimesheetsXLSX)
	}
}

// hoursTracking godoc
// @Summary Project hours tracking
// @Description Returns matched projects with consumed/balance rollups and totals across the match set.
// @Tags reports
// @Produce json
// @Param plNo query string false "Project number substring"
// @Param projectName query string false "Project name substring"
// @Success 200 {object} dto.HoursTrackingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/hours-tracking [get]
func (h *reportsHandler) hoursTracking(c *gin.Context) {
	var params dto.HoursTrackingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.reportingService.HoursTracking(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to build hours tracking report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// employeeReport godoc
// @Summary Combined employee/project report
// @Description Looks up an employee (by code or name) or, failing that, a project (by plNo or name). The response type field tells which branch matched.
// @Tags reports
// @Produce json
// @Param employeeId query string false "Employee code"
// @Param plNo query string false "Project number"
// @Param name query string false "Employee or project name"
// @Param startDate query string false "Week range start (RFC 3339)"
// @Param endDate query string false "Week range end (RFC 3339)"
// @Success 200 {object} dto.EmployeeReportResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Neither an employee nor a project matched"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/employee-report [get]
func (h *reportsHandler) employeeReport(c *gin.Context) {
	var params dto.EmployeeReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.reportingService.EmployeeReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to build employee report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// searchMiscHours godoc
// @Summary Search miscellaneous hours
// @Description Finds per-week MISC hour totals for employees matching the query.
// @Tags reports
// @Produce json
// @Param query query string true "Employee name or code"
// @Success 200 {object} dto.MiscHoursSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/misc-hours [get]
func (h *reportsHandler) searchMiscHours(c *gin.Context) {
	details, err := h.reportingService.SearchMiscHours(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err, "Failed to search misc hours")
		return
	}

	c.JSON(http.StatusOK, dto.MiscHoursSearchResponse{Count: len(details), Details: details})
}

// writeCSV streams the rows as a CSV attachment.
func writeCSV(c *gin.Context, filename string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream CSV", slog.String("error", err.Error()))
	}
}

// exportTimesheetCSV godoc
// @Summary Export one timesheet as CSV
// @Description Renders a single timesheet's entries plus a TOTAL summary row as a CSV attachment.
// @Tags reports
// @Produce text/csv
// @Param id path string true "Timesheet ID"
// @Success 200 {string} string "CSV file"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/timesheets/{id}/export [get]
func (h *reportsHandler) exportTimesheetCSV(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	ts, err := h.timesheetService.GetTimesheetByID(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve timesheet")
		return
	}

	rows, err := h.reportingService.ExportTimesheetCSV(c.Request.Context(), ts)
	if err != nil {
		respondError(c, err, "Failed to export timesheet")
		return
	}

	filename := fmt.Sprintf("timesheet-%s-%s.csv", ts.EmployeeCode, ts.WeekStartDate.Format(time.DateOnly))
	writeCSV(c, filename, rows)
}

// exportTimesheetsCSV godoc
// @Summary Export timesheets as CSV
// @Description Renders the selected timesheets as one flat CSV attachment, sorted by week start date, with approver columns.
// @Tags reports
// @Accept json
// @Produce text/csv
// @Param selection body dto.ExportTimesheetsRequest true "Timesheet IDs"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No matching timesheets"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/timesheets/export [post]
func (h *reportsHandler) exportTimesheetsCSV(c *gin.Context) {
	var req dto.ExportTimesheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one timesheet ID is required"})
		return
	}

	timesheets, err := h.timesheetService.GetTimesheetsByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to load timesheets")
		return
	}

	rows, err := h.reportingService.ExportTimesheetsCSV(c.Request.Context(), timesheets)
	if err != nil {
		respondError(c, err, "Failed to export timesheets")
		return
	}

	filename := fmt.Sprintf("timesheets-export-%s.csv", time.Now().UTC().Format(time.DateOnly))
	writeCSV(c, filename, rows)
}

// exportTimesheetsXLSX godoc
// @Summary Export timesheets as XLSX
// @Description Renders the selected timesheets as an XLSX workbook with the same columns as the CSV export.
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param selection body dto.ExportTimesheetsRequest true "Timesheet IDs"
// @Success 200 {string} string "XLSX file"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No matching timesheets"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/timesheets/export/xlsx [post]
func (h *reportsHandler) exportTimesheetsXLSX(c *gin.Context) {
	var req dto.ExportTimesheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one timesheet ID is required"})
		return
	}

	timesheets, err := h.timesheetService.GetTimesheetsByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to load timesheets")
		return
	}

	data, err := h.reportingService.ExportTimesheetsXLSX(c.Request.Context(), timesheets)
	if err != nil {
		respondError(c, err, "Failed to export timesheets")
		return
	}

	filename := fmt.Sprintf("timesheets-export-%s.xlsx", time.Now().UTC().Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
