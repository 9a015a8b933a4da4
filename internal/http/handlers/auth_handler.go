package handlers

import (
	"net/http"

	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "please provide email, password and role")
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "please provide email and password")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil))
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	})
}
