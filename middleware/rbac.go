package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/internal/auth"
)

func userFromContext(c *gin.Context) (auth.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return auth.User{}, false
	}
	user, ok := userVal.(auth.User)
	return user, ok
}

// AdminRequired allows only admin users through.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthenticated"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}
		c.Next()
	}
}

// TeacherRequired allows teachers through; admins qualify as well.
func TeacherRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthenticated"})
			return
		}
		if !user.IsTeacher() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "teacher access required"})
			return
		}
		c.Next()
	}
}
