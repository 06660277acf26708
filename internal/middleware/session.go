package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/model"
)

const (
	// UserIDKey is the gin context key holding the session user's id.
	UserIDKey = "user_id"
	// NewSessionKey is set when the request arrived without a usable
	// session and a new user was created for it.
	NewSessionKey = "new_session"
)

// SessionResolver maps a session token to a user. A non-empty second
// return value is a new token that must be sent back to the client.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, string, error)
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Session resolves or creates the visitor's user and stores its id in the
// context under UserIDKey.
func Session(resolver SessionResolver, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookie.Name)

		user, newToken, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("failed to resolve session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			return
		}

		if newToken != "" {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, newToken, int(cookie.MaxAge.Seconds()), "/", "", cookie.Secure, true)
			c.Set(NewSessionKey, true)
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the session user's id set by Session.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// IsNewSession reports whether Session created the user on this request.
func IsNewSession(c *gin.Context) bool {
	return c.GetBool(NewSessionKey)
}
