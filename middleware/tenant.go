package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/tenant"
)

// TenantMiddleware resolves the X-Tenant-ID header to a tenant record
// and scopes the rest of the request to it.
func TenantMiddleware(tenantSvc tenant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		schemaName := c.GetHeader("X-Tenant-ID")
		if schemaName == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing X-Tenant-ID header"})
			return
		}

		t, err := tenantSvc.Resolve(schemaName)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnresolvedTenant) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": "unknown tenant"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not resolve tenant"})
			return
		}

		c.Set("tenant", *t)
		c.Set("tenant_id", t.ID)

		c.Next()
	}
}
