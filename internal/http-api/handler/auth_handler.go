package handler

import (
	"errors"
	"net/http"
	"time"

	"moviezone/internal/config"
	"moviezone/internal/http-api/dto"
	"moviezone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	resetService service.PasswordResetService
	cfg          *config.Config
}

func NewAuthHandler(authService service.AuthService, resetService service.PasswordResetService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/token/refresh", h.RefreshToken)
	rg.POST("/password-reset", h.PasswordResetRequest)
	rg.POST("/password-reset-confirm", h.PasswordResetConfirm)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if errors.Is(err, service.ErrPasswordMismatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrNameInUse) {
		c.JSON(http.StatusBadRequest, gin.H{"username": "a user with that username already exists"})
		return
	}
	if errors.Is(err, service.ErrEmailInUse) {
		c.JSON(http.StatusBadRequest, gin.H{"email": "a user with that email already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.Login, req.Password)
	if err != nil {
		// same response whether the account exists or not
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Username:     user.Username,
		ExpiresIn:    int64(h.cfg.AccessTokenTTL.Seconds()),
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: newAccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.cfg.AccessTokenTTL.Seconds()),
	})
}

// PasswordResetRequest always answers with the same generic message so
// the endpoint cannot be used to probe registered emails.
func (h *AuthHandler) PasswordResetRequest(c *gin.Context) {
	var req dto.PasswordResetRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resetService.RequestReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": service.ResetRequestMessage})
}

func (h *AuthHandler) PasswordResetConfirm(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.resetService.ConfirmReset(req.UID, req.Token, req.NewPassword, req.ConfirmPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidResetLink),
		errors.Is(err, service.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset password"})
	}
}

// Profile handles GET /api/user for the authenticated user
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}
