package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"awards-cms-go/internal/auth"
	"awards-cms-go/pkg/model"
)

// AuthHandler handles authentication related HTTP requests
type AuthHandler struct {
	authService *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var creds model.UserCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, err := h.authService.Login(creds)
	if err != nil {
		if errors.Is(err, auth.ErrTOTPRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":        "TOTP code required",
				"require_totp": true,
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:    token,
		Username: creds.Username,
	})
}

// Session handles GET /api/session, protected by the session middleware.
// The page layer calls it to decide whether the editor UI may load.
func (h *AuthHandler) Session(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, model.SessionResponse{
		Authenticated: true,
		Username:      username,
	})
}
