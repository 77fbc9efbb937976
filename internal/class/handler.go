package class

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func classView(cl *Class) gin.H {
	return gin.H{
		"id":         cl.ID,
		"name":       cl.Name,
		"course_id":  cl.CourseID,
		"teacher_id": cl.TeacherID,
		"schedule":   cl.Schedule,
	}
}

type createReq struct {
	Name      string `json:"name" binding:"required"`
	CourseID  uint   `json:"course_id" binding:"required"`
	TeacherID *uint  `json:"teacher_id"`
	Schedule  string `json:"schedule"`
}

// Create - POST /classes
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cl, err := h.service.Create(c.GetUint("tenant_id"), CreateInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{
		"message": "Class created successfully",
		"class":   classView(cl),
	})
}

// List - GET /classes
func (h *Handler) List(c *gin.Context) {
	classes, err := h.service.List(c.GetUint("tenant_id"))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(classes))
	for i := range classes {
		views = append(views, classView(&classes[i]))
	}
	utils.Success(c, http.StatusOK, gin.H{"classes": views})
}

// Get - GET /classes/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid class id")
		return
	}

	cl, err := h.service.GetByID(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if cl == nil {
		utils.Error(c, http.StatusNotFound, "Class not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"class": classView(cl)})
}

type updateReq struct {
	Name      *string `json:"name"`
	CourseID  *uint   `json:"course_id"`
	TeacherID *uint   `json:"teacher_id"`
	Schedule  *string `json:"schedule"`
}

// Update - PUT /classes/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid class id")
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cl, err := h.service.Update(c.GetUint("tenant_id"), uint(id), UpdateInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"message": "Class updated successfully",
		"class":   classView(cl),
	})
}

// Delete - DELETE /classes/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid class id")
		return
	}

	found, err := h.service.Delete(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !found {
		utils.Error(c, http.StatusNotFound, "Class not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "Class deleted successfully"})
}
