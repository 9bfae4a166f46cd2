package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
	"github.com/engiops/timesheet_mgmt_app/internal/platform/config"
)

// maxSupportingDocumentSize bounds leave request attachments at 5 MiB.
const maxSupportingDocumentSize = 5 << 20

// leaveHandler handles HTTP requests related to leave requests.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
	uploadDir    string
}

// registerLeaveRoutes registers routes related to leave requests.
func registerLeaveRoutes(rg *gin.RouterGroup, cfg *config.Config, leaveService portssvc.LeaveSvcFacade, employeeService portssvc.EmployeeSvcFacade) {
	h := &leaveHandler{leaveService: leaveService, uploadDir: cfg.UploadDir}
	managerOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin, domain.RoleManager)

	leaves := rg.Group("/leave-requests")
	{
		leaves.POST("", h.createLeaveRequest)
		leaves.GET("/my", h.listMyLeaveRequests)
		leaves.GET("/:id", h.getLeaveRequestByID)

		leaves.GET("", managerOnly, h.listLeaveRequests)
		leaves.POST("/:id/approve", managerOnly, h.approveLeaveRequest)
		leaves.POST("/:id/reject", managerOnly, h.rejectLeaveRequest)
	}
}

// saveSupportingDocument stores an uploaded file under the upload directory
// with a generated name, keeping the original extension.
func (h *leaveHandler) saveSupportingDocument(c *gin.Context) (*domain.SupportingDocument, error) {
	file, err := c.FormFile("document")
	if err != nil {
		// The document is optional.
		return nil, nil
	}
	if file.Size > maxSupportingDocumentSize {
		return nil, fmt.Errorf("supporting document exceeds the 5MB limit")
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return nil, fmt.Errorf("failed to store supporting document: %w", err)
	}

	return &domain.SupportingDocument{
		Filename:     filename,
		OriginalName: file.Filename,
		Path:         dst,
		Size:         file.Size,
	}, nil
}

// createLeaveRequest godoc
// @Summary Create a leave request
// @Description Submits a leave request from a multipart form; an optional supporting document travels in the "document" field.
// @Tags leave-requests
// @Accept multipart/form-data
// @Produce json
// @Param startDate formData string true "Leave start date (RFC 3339)"
// @Param endDate formData string true "Leave end date (RFC 3339)"
// @Param leaveType formData string true "sick, casual, annual, emergency or other"
// @Param reason formData string true "Reason for leave"
// @Param document formData file false "Supporting document"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *leaveHandler) createLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequestRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind form for CreateLeaveRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.saveSupportingDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lr, err := h.leaveService.CreateLeaveRequest(c.Request.Context(), employeeID, req, doc)
	if err != nil {
		respondError(c, err, "Failed to create leave request")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(lr, nil))
}

// listMyLeaveRequests godoc
// @Summary List own leave requests
// @Tags leave-requests
// @Produce json
// @Success 200 {array} dto.LeaveRequestResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/my [get]
func (h *leaveHandler) listMyLeaveRequests(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	requests, err := h.leaveService.ListMyLeaveRequests(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to list leave requests")
		return
	}

	out := make([]dto.LeaveRequestResponse, len(requests))
	for i := range requests {
		out[i] = dto.ToLeaveRequestResponse(&requests[i], nil)
	}
	c.JSON(http.StatusOK, out)
}

// getLeaveRequestByID godoc
// @Summary Get a leave request
// @Description Retrieves a leave request. Owners always see their own; other employees need a manager or admin role.
// @Tags leave-requests
// @Produce json
// @Param id path string true "Leave Request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id} [get]
func (h *leaveHandler) getLeaveRequestByID(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	lr, err := h.leaveService.GetLeaveRequestByID(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve leave request")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(lr, nil))
}

// listLeaveRequests godoc
// @Summary List leave requests (manager)
// @Description Retrieves leave requests across employees, optionally filtered by status or employee name/code.
// @Tags leave-requests
// @Produce json
// @Param status query string false "Filter by status"
// @Param employee query string false "Employee name or code substring"
// @Success 200 {array} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests [get]
func (h *leaveHandler) listLeaveRequests(c *gin.Context) {
	var params dto.ListLeaveRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	requests, employees, err := h.leaveService.ListLeaveRequests(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list leave requests")
		return
	}

	out := make([]dto.LeaveRequestResponse, len(requests))
	for i := range requests {
		var emp *domain.Employee
		if e, ok := employees[requests[i].EmployeeID]; ok {
			emp = &e
		}
		out[i] = dto.ToLeaveRequestResponse(&requests[i], emp)
	}
	c.JSON(http.StatusOK, out)
}

// approveLeaveRequest godoc
// @Summary Approve a leave request
// @Tags leave-requests
// @Produce json
// @Param id path string true "Leave Request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Leave request has already been processed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/approve [post]
func (h *leaveHandler) approveLeaveRequest(c *gin.Context) {
	approverID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	lr, err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "Failed to approve leave request")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(lr, nil))
}

// rejectLeaveRequest godoc
// @Summary Reject a leave request
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave Request ID"
// @Param rejection body dto.RejectLeaveRequest true "Rejection reason"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse "Missing rejection reason"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Leave request has already been processed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/reject [post]
func (h *leaveHandler) rejectLeaveRequest(c *gin.Context) {
	approverID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rejection reason is required"})
		return
	}

	lr, err := h.leaveService.RejectLeaveRequest(c.Request.Context(), c.Param("id"), approverID, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reject leave request")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(lr, nil))
}
