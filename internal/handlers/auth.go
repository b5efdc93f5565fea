package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/middleware"
	"brandhub/api/internal/models"
	"brandhub/api/internal/service"
)

type adminResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newAdminResponse(admin models.Admin) adminResponse {
	return adminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      string(admin.Role),
		IsActive:  admin.IsActive,
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "login successful", gin.H{
		"token": result.Token,
		"admin": newAdminResponse(result.Admin),
	})
}

func (h HandlerSet) Verify(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	respondData(c, http.StatusOK, gin.H{"admin": newAdminResponse(admin)})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h HandlerSet) ChangePassword(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "password changed", nil)
}

// Logout is an acknowledgement only: sessions are stateless tokens, the
// client discards its copy.
func (h HandlerSet) Logout(c *gin.Context) {
	respondMessage(c, http.StatusOK, "logged out", nil)
}

type createAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin moderator"`
}

func (h HandlerSet) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admin, err := h.auth.CreateAdmin(c.Request.Context(), service.CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.AdminRole(req.Role),
	})
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "admin created", newAdminResponse(admin))
}

func (h HandlerSet) ListAdmins(c *gin.Context) {
	admins, err := h.auth.ListAdmins(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	resp := make([]adminResponse, 0, len(admins))
	for _, admin := range admins {
		resp = append(resp, newAdminResponse(admin))
	}
	respondData(c, http.StatusOK, resp)
}

func (h HandlerSet) ToggleAdminStatus(c *gin.Context) {
	actor, ok := middleware.CurrentAdmin(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	admin, err := h.auth.ToggleAdminStatus(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	message := "admin deactivated"
	if admin.IsActive {
		message = "admin activated"
	}
	respondMessage(c, http.StatusOK, message, newAdminResponse(admin))
}
