package grade

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func gradeView(g *Grade) gin.H {
	return gin.H{
		"id":         g.ID,
		"student_id": g.StudentID,
		"course_id":  g.CourseID,
		"value":      g.Value,
		"term":       g.Term,
	}
}

type createReq struct {
	StudentID uint     `json:"student_id" binding:"required"`
	CourseID  uint     `json:"course_id" binding:"required"`
	Value     *float64 `json:"value" binding:"required"`
	Term      string   `json:"term" binding:"omitempty"`
}

// Create - POST /grades
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	g, err := h.service.Create(c.GetUint("tenant_id"), CreateInput{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Value:     *req.Value,
		Term:      req.Term,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, gradeView(g))
}

// List - GET /grades with optional student_id and course_id filters
func (h *Handler) List(c *gin.Context) {
	var filter Filter
	if raw := c.Query("student_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid student_id filter")
			return
		}
		sid := uint(id)
		filter.StudentID = &sid
	}
	if raw := c.Query("course_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid course_id filter")
			return
		}
		cid := uint(id)
		filter.CourseID = &cid
	}

	grades, err := h.service.List(c.GetUint("tenant_id"), filter)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(grades))
	for i := range grades {
		views = append(views, gradeView(&grades[i]))
	}
	utils.Success(c, http.StatusOK, views)
}

// Get - GET /grades/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid grade id")
		return
	}

	g, err := h.service.GetByID(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if g == nil {
		utils.Error(c, http.StatusNotFound, "grade not found")
		return
	}
	utils.Success(c, http.StatusOK, gradeView(g))
}

type updateReq struct {
	StudentID *uint    `json:"student_id" binding:"omitempty"`
	CourseID  *uint    `json:"course_id" binding:"omitempty"`
	Value     *float64 `json:"value" binding:"omitempty"`
	Term      *string  `json:"term" binding:"omitempty"`
}

// Update - PUT /grades/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid grade id")
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	g, err := h.service.Update(c.GetUint("tenant_id"), uint(id), UpdateInput{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Value:     req.Value,
		Term:      req.Term,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gradeView(g))
}

// Delete - DELETE /grades/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid grade id")
		return
	}

	deleted, err := h.service.Delete(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !deleted {
		utils.Error(c, http.StatusNotFound, "grade not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "grade deleted successfully"})
}
