package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/middleware"
	"github.com/gipis/website/internal/services"
)

type AuthHandler struct {
	config      *config.Config
	authService *services.AuthService
}

func NewAuthHandler(cfg *config.Config, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		config:      cfg,
		authService: authService,
	}
}

// LoginRequest represents login input
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a member and sets the session cookie. Unknown email and
// wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}

	c.SetCookie(
		h.config.SessionCookieName,
		token,
		0, // session cookie, no expiry
		h.config.SessionCookiePath,
		"",
		h.config.CookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"member": member.ToResponse()})
}

// Logout invalidates the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.config.SessionCookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}

	c.SetCookie(
		h.config.SessionCookieName,
		"",
		-1,
		h.config.SessionCookiePath,
		"",
		h.config.CookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// Dashboard returns the session-bound member.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member.ToResponse()})
}

// UpdateProfile applies a partial profile edit to the session-bound member.
// The target record always comes from the session, never from the request.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.EditProfile(member, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado correctamente",
		"member":  member.ToResponse(),
	})
}
