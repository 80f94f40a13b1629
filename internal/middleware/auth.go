package middleware

import (
	"strings"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/pkg/session"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "fullsco_token"

	ContextKeyUser = "current_user"
	ContextKeySID  = "session_id"
)

// Auth returns a middleware that requires a live session. The token comes
// from the session cookie or an Authorization bearer header.
func Auth(reg *session.Registry, db *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := reg.Resolve(ExtractToken(c))
		if !ok {
			response.Unauthorized(c, "")
			return
		}
		user, ok := db.GetUser(s.UserID)
		if !ok {
			// User deleted while the session was live.
			reg.Revoke(s.ID)
			response.Unauthorized(c, "")
			return
		}
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeySID, s.ID)
		c.Next()
	}
}

// AdminOnly blocks authenticated non-admin users. It must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "")
			return
		}
		if !user.IsAdmin() {
			response.Forbidden(c, "Forbidden: Admin access required")
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(ContextKeyUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// ExtractToken returns the session token from the cookie or, failing that,
// the Authorization header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	return normalizeToken(c.GetHeader("Authorization"))
}

func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
