package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/models"
	"github.com/gipis/website/internal/services"
)

const memberKey = "sessionMember"

// SessionMiddleware resolves the session cookie into a member on every
// request. Requests without a valid session continue as anonymous.
func SessionMiddleware(cfg *config.Config, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		member, err := authService.LoadSessionUser(token)
		if err != nil || member == nil {
			c.Next()
			return
		}

		c.Set(memberKey, member)
		c.Next()
	}
}

// RequireMember guards routes that need an authenticated session.
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(memberKey); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentMember extracts the session-bound member from the context.
func CurrentMember(c *gin.Context) (*models.Member, bool) {
	value, exists := c.Get(memberKey)
	if !exists {
		return nil, false
	}
	member, ok := value.(*models.Member)
	return member, ok
}
