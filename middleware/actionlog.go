package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/internal/auditlog"
	"github.com/schoolms/school-management-backend/internal/auth"
)

// ActionLogger records every mutating request as an audit entry once the
// handler chain has finished. Reads are not logged.
func ActionLogger(auditSvc auditlog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}

		var userID *uint
		if id := c.GetUint("user_id"); id != 0 {
			userID = &id
		}
		var tenantID *uint
		if id := c.GetUint("tenant_id"); id != 0 {
			tenantID = &id
		}

		status := "SUCCESS"
		if c.Writer.Status() >= http.StatusBadRequest {
			status = "FAILURE"
		}

		action := actionName(c)
		details := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if user, ok := userFromContext(c); ok {
			details["role"] = auth.RoleName(user.UserType)
		}

		// Logging must never fail the request it describes.
		_ = auditSvc.LogAction(c.Request.Context(), userID, tenantID, action, details, GetIPFromContext(c), status)
	}
}

// actionName derives a stable action label like "POST /api/v1/students"
// from the matched route, falling back to the raw path for unmatched ones.
func actionName(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + strings.TrimSuffix(route, "/")
}
