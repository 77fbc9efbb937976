package attendance

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

func recordView(record *Attendance) gin.H {
	return gin.H{
		"id":         record.ID,
		"student_id": record.StudentID,
		"class_id":   record.ClassID,
		"date":       record.Date.Format(dateLayout),
		"status":     record.Status,
	}
}

type createReq struct {
	StudentID uint   `json:"student_id" binding:"required"`
	ClassID   uint   `json:"class_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=present absent late"`
}

// Create - POST /attendance
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Create(c.GetUint("tenant_id"), CreateInput{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      req.Date,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, recordView(record))
}

// List - GET /attendance with optional student_id and class_id filters
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
	if raw := c.Query("class_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid class_id filter")
			return
		}
		cid := uint(id)
		filter.ClassID = &cid
	}

	records, err := h.service.List(c.GetUint("tenant_id"), filter)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(records))
	for i := range records {
		views = append(views, recordView(&records[i]))
	}
	utils.Success(c, http.StatusOK, views)
}

// Get - GET /attendance/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid attendance id")
		return
	}

	record, err := h.service.GetByID(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if record == nil {
		utils.Error(c, http.StatusNotFound, "attendance record not found")
		return
	}
	utils.Success(c, http.StatusOK, recordView(record))
}

type updateReq struct {
	StudentID *uint   `json:"student_id" binding:"omitempty"`
	ClassID   *uint   `json:"class_id" binding:"omitempty"`
	Date      *string `json:"date" binding:"omitempty"`
	Status    *string `json:"status" binding:"omitempty,oneof=present absent late"`
}

// Update - PUT /attendance/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid attendance id")
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Update(c.GetUint("tenant_id"), uint(id), UpdateInput{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      req.Date,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, recordView(record))
}

// Delete - DELETE /attendance/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid attendance id")
		return
	}

	deleted, err := h.service.Delete(c.GetUint("tenant_id"), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !deleted {
		utils.Error(c, http.StatusNotFound, "attendance record not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "attendance record deleted successfully"})
}
