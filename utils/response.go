package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

// Success writes the uniform {success, data} envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the uniform {success, error} envelope
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// ErrorFrom maps a domain error onto the status taxonomy:
// 400 duplicate/validation/integrity, 401, 403, 404.
func ErrorFrom(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateEmail),
		errors.Is(err, apperrors.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrIntegrityViolation):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrUnresolvedTenant):
		Error(c, http.StatusNotFound, err.Error())
	default:
		Error(c, http.StatusInternalServerError, err.Error())
	}
}
