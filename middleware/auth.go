package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/internal/auth"
)

// AuthMiddleware verifies the bearer token, rejects revoked tokens and
// loads the authenticated user into the request context.
func AuthMiddleware(cfg *config.Config, authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTAccessSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid claims"})
			return
		}

		if jti, ok := claims["jti"].(string); ok && authSvc.IsTokenRevoked(jti) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token has been revoked"})
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user_id missing in token"})
			return
		}
		tenantIDFloat, ok := claims["tenant_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "tenant_id missing in token"})
			return
		}
		tokenTenantID := uint(tenantIDFloat)

		// A token minted for one tenant must not cross into another.
		if headerTenantID := c.GetUint("tenant_id"); headerTenantID != 0 && headerTenantID != tokenTenantID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token does not belong to this tenant"})
			return
		}

		user, err := authSvc.GetUserByID(tokenTenantID, uint(userIDFloat))
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "account is inactive"})
			return
		}

		c.Set("user", *user)
		c.Set("user_id", user.ID)
		c.Set("tenant_id", tokenTenantID)
		c.Set("claims", claims)

		c.Next()
	}
}
