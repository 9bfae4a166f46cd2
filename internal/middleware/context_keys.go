package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	// employeeIDKey is the key used to store the authenticated employee's ID.
	employeeIDKey = contextKey("employeeID")

	// loggerCtxKey is the key used to store the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the
// Gin context. It returns the employee ID and a boolean indicating if it was
// found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	idVal, exists := c.Get(string(employeeIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(employeeIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	employeeID, ok := idVal.(string)
	if !ok {
		return "", false
	}

	return employeeID, true
}

// ContextWithEmployeeID returns a standard context carrying the employee ID.
// Used by the auth middleware and by tests that exercise services directly.
func ContextWithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeIDKey, employeeID)
}
