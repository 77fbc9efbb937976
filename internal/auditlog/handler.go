package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// GetAuditLogs - GET /auditlogs?page=1&limit=50&action=LOGIN&status=failure
func (h *Handler) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := Filter{
		Action: c.Query("action"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if id, err := strconv.ParseUint(userIDStr, 10, 32); err == nil {
			uid := uint(id)
			filter.UserID = &uid
		}
	}

	result, err := h.service.GetAuditLogs(c.Request.Context(), c.GetUint("tenant_id"), filter)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}
