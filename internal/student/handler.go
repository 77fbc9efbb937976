package student

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// studentView flattens the owning User into the student payload. Empty
// projected fields render as null rather than "".
func studentView(st *Student) gin.H {
	view := gin.H{
		"id":               st.ID,
		"student_id":       st.StudentID,
		"gender":           st.Gender,
		"address":          st.Address,
		"current_class_id": st.CurrentClassID,
		"first_name":       nullable(st.FirstName()),
		"last_name":        nullable(st.LastName()),
		"email":            nullable(st.Email()),
	}
	if st.DOB != nil {
		view["dob"] = st.DOB.Format(dateLayout)
	} else {
		view["dob"] = nil
	}
	if st.Parents != nil {
		parents := make([]gin.H, 0, len(st.Parents))
		for _, p := range st.Parents {
			parents = append(parents, gin.H{
				"id":         p.ID,
				"email":      p.Email,
				"first_name": p.FirstName,
				"last_name":  p.LastName,
			})
		}
		view["parents"] = parents
	}
	return view
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

type createUserReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=6"`
	FirstName string `json:"first_name" binding:"omitempty"`
	LastName  string `json:"last_name" binding:"omitempty"`
}

type createStudentReq struct {
	User           createUserReq `json:"user" binding:"required"`
	StudentID      string        `json:"student_id" binding:"required"`
	DOB            string        `json:"dob" binding:"omitempty"`
	Gender         string        `json:"gender" binding:"omitempty"`
	Address        string        `json:"address" binding:"omitempty"`
	CurrentClassID *uint         `json:"current_class_id" binding:"omitempty"`
	Parents        []string      `json:"parents" binding:"omitempty,dive,email"`
}

// CreateStudent handles POST /students
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tenantID := auth.TenantIDFromContext(c)
	st, err := h.service.Create(tenantID, CreateInput{
		User: UserInput{
			Email:     req.User.Email,
			Password:  req.User.Password,
			FirstName: req.User.FirstName,
			LastName:  req.User.LastName,
		},
		StudentID:      req.StudentID,
		DOB:            req.DOB,
		Gender:         req.Gender,
		Address:        req.Address,
		CurrentClassID: req.CurrentClassID,
		Parents:        req.Parents,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, gin.H{
		"id":         st.ID,
		"student_id": st.StudentID,
		"first_name": nullable(st.FirstName()),
		"last_name":  nullable(st.LastName()),
		"email":      nullable(st.Email()),
	})
}

// GetStudents handles GET /students
func (h *Handler) GetStudents(c *gin.Context) {
	tenantID := auth.TenantIDFromContext(c)
	students, err := h.service.List(tenantID)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(students))
	for i := range students {
		views = append(views, studentView(&students[i]))
	}
	utils.Success(c, http.StatusOK, views)
}

// GetStudent handles GET /students/:id
func (h *Handler) GetStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	tenantID := auth.TenantIDFromContext(c)
	st, err := h.service.GetByID(tenantID, uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if st == nil {
		utils.Error(c, http.StatusNotFound, "student not found")
		return
	}
	utils.Success(c, http.StatusOK, studentView(st))
}

type updateStudentReq struct {
	StudentID      *string `json:"student_id" binding:"omitempty"`
	DOB            *string `json:"dob" binding:"omitempty"`
	Gender         *string `json:"gender" binding:"omitempty"`
	Address        *string `json:"address" binding:"omitempty"`
	CurrentClassID *uint   `json:"current_class_id" binding:"omitempty"`
	Email          *string `json:"email" binding:"omitempty,email"`
	FirstName      *string `json:"first_name" binding:"omitempty"`
	LastName       *string `json:"last_name" binding:"omitempty"`
}

// UpdateStudent handles PUT /students/:id
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req updateStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tenantID := auth.TenantIDFromContext(c)
	st, err := h.service.Update(tenantID, uint(id), UpdateInput{
		StudentID:      req.StudentID,
		DOB:            req.DOB,
		Gender:         req.Gender,
		Address:        req.Address,
		CurrentClassID: req.CurrentClassID,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	})
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, studentView(st))
}

// DeleteStudent handles DELETE /students/:id
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	tenantID := auth.TenantIDFromContext(c)
	deleted, err := h.service.Delete(tenantID, uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !deleted {
		utils.Error(c, http.StatusNotFound, "student not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
