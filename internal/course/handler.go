package course

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func courseView(c *Course) gin.H {
	return gin.H{
		"id":          c.ID,
		"name":        c.Name,
		"code":        c.Code,
		"description": c.Description,
	}
}

type createReq struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

// Create - POST /courses
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.Create(c.GetUint("tenant_id"), CreateInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{
		"message": "Course created successfully",
		"course":  courseView(course),
	})
}

// List - GET /courses
func (h *Handler) List(c *gin.Context) {
	courses, err := h.service.List(c.GetUint("tenant_id"))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(courses))
	for i := range courses {
		views = append(views, courseView(&courses[i]))
	}
	utils.Success(c, http.StatusOK, gin.H{"courses": views})
}

// Get - GET /courses/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.service.GetByID(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if course == nil {
		utils.Error(c, http.StatusNotFound, "Course not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"course": courseView(course)})
}

type updateReq struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// Update - PUT /courses/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.Update(c.GetUint("tenant_id"), uint(id), UpdateInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"message": "Course updated successfully",
		"course":  courseView(course),
	})
}

// Delete - DELETE /courses/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	found, err := h.service.Delete(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !found {
		utils.Error(c, http.StatusNotFound, "Course not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
