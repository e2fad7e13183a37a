package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/network/internal/auth"
	"github.com/d60-Lab/network/pkg/response"
)

// Context keys for the authenticated user. The user is threaded through
// the request context, never global state.
const (
	CtxUserID   = "auth.user_id"
	CtxUsername = "auth.username"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

func tokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie(SessionCookie); err == nil {
		return tok
	}
	return ""
}

// Authenticate resolves the session token if one is present and stores the
// claims on the request context. It never rejects; use RequireAuth or
// RequireAuthPage to enforce login.
func Authenticate(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := tokenFrom(c); tok != "" {
			if claims, err := mgr.Parse(tok); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 for API endpoints.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserID) == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthPage redirects page requests to the login route instead of
// returning 401.
func RequireAuthPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserID) == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, empty when anonymous.
func CurrentUserID(c *gin.Context) string { return c.GetString(CtxUserID) }
