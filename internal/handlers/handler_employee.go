package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employee accounts.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)
	managerOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRoles(employeeService, domain.RoleAdmin)

	employees := rg.Group("/employees")
	{
		employees.GET("/me", h.getCurrentEmployee)
		employees.GET("/search", managerOnly, h.searchEmployees)
		employees.GET("", managerOnly, h.listEmployees)
		employees.GET("/:id", managerOnly, h.getEmployeeByID)
		employees.POST("", adminOnly, h.createEmployee)
		employees.PUT("/:id", adminOnly, h.updateEmployee)
		employees.DELETE("/:id", adminOnly, h.deactivateEmployee)
	}
}

// getCurrentEmployee godoc
// @Summary Get own profile
// @Tags employees
// @Produce json
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/me [get]
func (h *employeeHandler) getCurrentEmployee(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// searchEmployees godoc
// @Summary Search employees
// @Description Matches the query against names and employee codes.
// @Tags employees
// @Produce json
// @Param query query string true "Name or code substring"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/search [get]
func (h *employeeHandler) searchEmployees(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Search query is required"})
		return
	}

	employees, err := h.employeeService.SearchEmployees(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Failed to search employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param role query string false "Filter by role"
// @Param department query string false "Filter by department"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// getEmployeeByID godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// createEmployee godoc
// @Summary Create an employee account
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee code, username or email already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID), slog.String("employee_code", employee.EmployeeCode))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, requesterID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Marks the account inactive; inactive accounts cannot authenticate.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	requesterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), c.Param("id"), requesterID); err != nil {
		respondError(c, err, "Failed to deactivate employee")
		return
	}

	c.Status(http.StatusNoContent)
}
