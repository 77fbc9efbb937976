package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

type provisionReq struct {
	Name       string `json:"name" binding:"required"`
	SchemaName string `json:"schema_name" binding:"required,alphanum,lowercase"`
}

// Provision creates a new isolated tenant - POST /tenants
func (h *Handler) Provision(c *gin.Context) {
	var req provisionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.service.Provision(ProvisionInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, gin.H{"tenant": t})
}

// List returns all tenants - GET /tenants
func (h *Handler) List(c *gin.Context) {
	tenants, err := h.service.List()
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"tenants": tenants})
}
