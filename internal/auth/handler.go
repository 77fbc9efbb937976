package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// userView is the serialized shape of a user. password_hash never leaves
// the service layer.
func userView(u *User) gin.H {
	return gin.H{
		"id":          u.ID,
		"email":       u.Email,
		"first_name":  u.FirstName,
		"last_name":   u.LastName,
		"user_type":   u.UserType,
		"phone":       u.Phone,
		"profile_pic": u.ProfilePic,
		"is_active":   u.IsActive,
	}
}

// TenantIDFromContext reads the tenant resolved by the tenant middleware
func TenantIDFromContext(c *gin.Context) uint {
	return c.GetUint("tenant_id")
}

// ===============================
// Registration - POST /auth/register
// ===============================

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  int    `json:"user_type"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Register(TenantIDFromContext(c), RegisterInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userView(user),
	})
}

// ===============================
// Login - POST /auth/login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tokens, user, err := h.service.Login(TenantIDFromContext(c), LoginInput(req))
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}
	if user == nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"message":       "User logged in successfully",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          userView(user),
	})
}

// ===============================
// Refresh - POST /auth/refresh
// ===============================

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"message":      "Token refreshed successfully",
		"access_token": token,
	})
}

// ===============================
// Logout - POST /auth/logout
// ===============================

func (h *Handler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.Error(c, http.StatusUnauthorized, "invalid Authorization header")
		return
	}

	if err := h.service.Logout(parts[1]); err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// ===============================
// User management
// ===============================

// GetUsers - GET /users (admin)
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(TenantIDFromContext(c))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}
	utils.Success(c, http.StatusOK, gin.H{"users": views})
}

// GetUser - GET /users/:id (admin)
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.GetUserByID(TenantIDFromContext(c), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if user == nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

type updateUserReq struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"is_active"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

// UpdateMe - PUT /users/me (current user)
func (h *Handler) UpdateMe(c *gin.Context) {
	h.update(c, c.GetUint("user_id"))
}

// UpdateUser - PUT /users/:id (admin)
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}
	h.update(c, uint(id))
}

func (h *Handler) update(c *gin.Context, userID uint) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.UpdateUser(TenantIDFromContext(c), userID, UpdateInput(req))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    userView(user),
	})
}

// DeleteUser - DELETE /users/:id (admin)
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	found, err := h.service.DeleteUser(TenantIDFromContext(c), uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}
	if !found {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
