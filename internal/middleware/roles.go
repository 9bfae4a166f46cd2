package middleware

import (
	"net/http"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireRoles creates a Gin middleware that loads the authenticated
// employee and rejects the request unless their role is in the allowed set.
// It must run after AuthMiddleware.
func RequireRoles(employeeSvc portssvc.EmployeeReaderSvc, allowed ...domain.EmployeeRole) gin.HandlerFunc {
	allowedSet := make(map[domain.EmployeeRole]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	return func(c *gin.Context) {
		employeeID, ok := GetEmployeeIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		employee, err := employeeSvc.GetEmployeeByID(c.Request.Context(), employeeID)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Failed to load employee for role check", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !allowedSet[employee.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
