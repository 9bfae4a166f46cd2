package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// dashboardHandler serves the admin dashboard counters.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, employeeService portssvc.EmployeeSvcFacade) {
	h := &dashboardHandler{reportingService: reportingService}
	adminOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin)

	dashboard := rg.Group("/dashboard", adminOnly)
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/recent-timesheets", h.getRecentTimesheets)
	}
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns employee and timesheet counters for the admin dashboard.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	stats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getRecentTimesheets godoc
// @Summary Recent timesheets
// @Description Returns the ten most recently created timesheets.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.ListTimesheetsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent-timesheets [get]
func (h *dashboardHandler) getRecentTimesheets(c *gin.Context) {
	timesheets, err := h.reportingService.RecentTimesheets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load recent timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ListTimesheetsResponse{
		Timesheets: dto.ToTimesheetResponses(timesheets),
	})
}
