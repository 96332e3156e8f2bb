package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/service"
	"github.com/ainthinai/booking-api/internal/transport/middleware"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Google token missing")
		return
	}

	result, err := h.authService.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Google login successful",
		"token":   result.Token,
		"role":    result.Role,
	})
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req service.AdminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	if _, err := h.authService.RegisterAdmin(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
	})
}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req service.AdminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.authService.LoginAdmin(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"role":  result.Role,
	})
}

// GetDashboard returns the admin dashboard counters.
func (h *AuthHandler) GetDashboard(c *gin.Context) {
	count, err := h.userService.CountUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": count})
}

func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	admin, err := h.authService.GetAdminProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}
