package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/engiops/timesheet_mgmt_app/internal/apperrors"
	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portsrepo "github.com/engiops/timesheet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// timesheetHandler handles HTTP requests related to timesheets.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{timesheetService: ts}
}

// registerTimesheetRoutes registers routes related to timesheets.
func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade, employeeService portssvc.EmployeeSvcFacade) {
	h := newTimesheetHandler(timesheetService)
	managerOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("", h.submitTimesheet)
		timesheets.GET("/my", h.listMyTimesheets)
		timesheets.GET("/:id", h.getTimesheetByID)
		timesheets.PUT("/:id/entries", h.updateTimesheetEntries)

		timesheets.GET("", managerOnly, h.listTimesheets)
		timesheets.POST("/:id/approve", managerOnly, h.approveTimesheet)
		timesheets.POST("/:id/reject", managerOnly, h.rejectTimesheet)
		timesheets.POST("/archive", adminOnly, h.archiveOldTimesheets)
	}
}

// submitTimesheet godoc
// @Summary Submit a weekly timesheet
// @Description Validates and persists a weekly timesheet; totals, week number and year are derived server-side.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param timesheet body dto.SubmitTimesheetRequest true "Timesheet details"
// @Success 201 {object} dto.SubmitTimesheetResponse
// @Failure 400 {object} ErrorResponse "Invalid entries or week range"
// @Failure 409 {object} dto.DuplicateTimesheetResponse "Timesheet already exists for this week"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [post]
func (h *timesheetHandler) submitTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitTimesheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	ts, existing, err := h.timesheetService.SubmitTimesheet(c.Request.Context(), employeeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			resp := dto.DuplicateTimesheetResponse{Error: "A timesheet for this week already exists"}
			if existing != nil {
				existingResp := dto.ToTimesheetResponse(existing)
				resp.ExistingTimesheet = &existingResp
			}
			c.JSON(http.StatusConflict, resp)
			return
		}
		respondError(c, err, "Failed to submit timesheet")
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitTimesheetResponse{
		Message:   "Timesheet submitted successfully",
		Timesheet: dto.ToTimesheetResponse(ts),
	})
}

// listMyTimesheets godoc
// @Summary List own timesheets
// @Description Retrieves the authenticated employee's timesheets, newest week first.
// @Tags timesheets
// @Produce json
// @Param year query int false "Filter by year"
// @Param month query int false "Filter by month (requires year)"
// @Success 200 {array} dto.TimesheetResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/my [get]
func (h *timesheetHandler) listMyTimesheets(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var params dto.MyTimesheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	timesheets, err := h.timesheetService.ListMyTimesheets(c.Request.Context(), employeeID, params)
	if err != nil {
		respondError(c, err, "Failed to list timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponses(timesheets))
}

// listTimesheets godoc
// @Summary List timesheets (manager)
// @Description Retrieves a filtered, token-paginated timesheet listing across employees.
// @Tags timesheets
// @Produce json
// @Param status query string false "Filter by status"
// @Param department query string false "Filter by department"
// @Param employeeCode query string false "Filter by employee code substring"
// @Param year query int false "Filter by year"
// @Param month query int false "Filter by month (requires year)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListTimesheetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [get]
func (h *timesheetHandler) listTimesheets(c *gin.Context) {
	var params dto.ListTimesheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	filter := portsrepo.ListTimesheetsFilter{
		Status:       domain.TimesheetStatus(params.Status),
		Department:   params.Department,
		EmployeeCode: params.EmployeeCode,
		Year:         params.Year,
		Month:        time.Month(params.Month),
		Limit:        params.Limit,
		NextToken:    params.NextToken,
	}

	timesheets, nextToken, err := h.timesheetService.ListTimesheets(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ListTimesheetsResponse{
		Timesheets: dto.ToTimesheetResponses(timesheets),
		NextToken:  nextToken,
	})
}

// getTimesheetByID godoc
// @Summary Get a timesheet
// @Description Retrieves a timesheet with its entries. Owners always see their own; other employees need a manager or admin role.
// @Tags timesheets
// @Produce json
// @Param id path string true "Timesheet ID"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id} [get]
func (h *timesheetHandler) getTimesheetByID(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	ts, err := h.timesheetService.GetTimesheetByID(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// updateTimesheetEntries godoc
// @Summary Replace a draft timesheet's entries
// @Description Rewrites the entries of a draft timesheet and recomputes its totals. Submitted and processed timesheets are immutable.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param id path string true "Timesheet ID"
// @Param entries body []dto.TimeEntryRequest true "Replacement entries"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Timesheet is not a draft"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id}/entries [put]
func (h *timesheetHandler) updateTimesheetEntries(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var entries []dto.TimeEntryRequest
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ts, err := h.timesheetService.UpdateTimesheetEntries(c.Request.Context(), c.Param("id"), employeeID, entries)
	if err != nil {
		respondError(c, err, "Failed to update timesheet entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// approveTimesheet godoc
// @Summary Approve a submitted timesheet
// @Description Moves a submitted timesheet to approved, recording the approver and timestamp.
// @Tags timesheets
// @Produce json
// @Param id path string true "Timesheet ID"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Timesheet has already been processed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id}/approve [post]
func (h *timesheetHandler) approveTimesheet(c *gin.Context) {
	approverID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	ts, err := h.timesheetService.ApproveTimesheet(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "Failed to approve timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// rejectTimesheet godoc
// @Summary Reject a submitted timesheet
// @Description Moves a submitted timesheet to rejected with a mandatory reason.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param id path string true "Timesheet ID"
// @Param rejection body dto.RejectTimesheetRequest true "Rejection reason"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse "Missing rejection reason"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Timesheet has already been processed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id}/reject [post]
func (h *timesheetHandler) rejectTimesheet(c *gin.Context) {
	approverID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.RejectTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rejection reason is required"})
		return
	}

	ts, err := h.timesheetService.RejectTimesheet(c.Request.Context(), c.Param("id"), approverID, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reject timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// archiveOldTimesheets godoc
// @Summary Archive old timesheets
// @Description Marks every timesheet created more than a year ago as archived. The sweep is idempotent.
// @Tags timesheets
// @Produce json
// @Success 200 {object} dto.ArchiveSweepResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/archive [post]
func (h *timesheetHandler) archiveOldTimesheets(c *gin.Context) {
	count, err := h.timesheetService.ArchiveOldTimesheets(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err, "Failed to archive timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ArchiveSweepResponse{
		Message:       fmt.Sprintf("Archived %d timesheets older than 1 year", count),
		ArchivedCount: count,
	})
}
