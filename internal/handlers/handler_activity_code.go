package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// activityCodeHandler handles HTTP requests related to activity codes.
type activityCodeHandler struct {
	activityCodeService portssvc.ActivityCodeSvcFacade
}

// registerActivityCodeRoutes registers routes related to activity codes.
// Reads are open to every authenticated employee; writes are admin operations.
func registerActivityCodeRoutes(rg *gin.RouterGroup, activityCodeService portssvc.ActivityCodeSvcFacade, employeeService portssvc.EmployeeSvcFacade) {
	h := &activityCodeHandler{activityCodeService: activityCodeService}
	adminOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin)

	codes := rg.Group("/activity-codes")
	{
		codes.GET("", h.listActivityCodes)
		codes.POST("", adminOnly, h.createActivityCode)
		codes.PUT("/:id", adminOnly, h.updateActivityCode)
		codes.DELETE("/:id", adminOnly, h.deleteActivityCode)
	}
}

// listActivityCodes godoc
// @Summary List activity codes
// @Tags activity-codes
// @Produce json
// @Param department query string false "Filter by department"
// @Success 200 {array} dto.ActivityCodeResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-codes [get]
func (h *activityCodeHandler) listActivityCodes(c *gin.Context) {
	codes, err := h.activityCodeService.ListActivityCodes(c.Request.Context(), c.Query("department"))
	if err != nil {
		respondError(c, err, "Failed to list activity codes")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityCodeResponses(codes))
}

// createActivityCode godoc
// @Summary Create an activity code
// @Tags activity-codes
// @Accept json
// @Produce json
// @Param activityCode body dto.CreateActivityCodeRequest true "Activity code details"
// @Success 201 {object} dto.ActivityCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already exists in this department"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-codes [post]
func (h *activityCodeHandler) createActivityCode(c *gin.Context) {
	var req dto.CreateActivityCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	code, err := h.activityCodeService.CreateActivityCode(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create activity code")
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityCodeResponse(code))
}

// updateActivityCode godoc
// @Summary Update an activity code
// @Tags activity-codes
// @Accept json
// @Produce json
// @Param id path string true "Activity Code ID"
// @Param activityCode body dto.UpdateActivityCodeRequest true "Fields to update"
// @Success 200 {object} dto.ActivityCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-codes/{id} [put]
func (h *activityCodeHandler) updateActivityCode(c *gin.Context) {
	var req dto.UpdateActivityCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	code, err := h.activityCodeService.UpdateActivityCode(c.Request.Context(), c.Param("id"), req, requesterID)
	if err != nil {
		respondError(c, err, "Failed to update activity code")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityCodeResponse(code))
}

// deleteActivityCode godoc
// @Summary Delete an activity code
// @Tags activity-codes
// @Produce json
// @Param id path string true "Activity Code ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-codes/{id} [delete]
func (h *activityCodeHandler) deleteActivityCode(c *gin.Context) {
	if err := h.activityCodeService.DeleteActivityCode(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete activity code")
		return
	}

	c.Status(http.StatusNoContent)
}
