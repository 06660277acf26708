package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims identifies an anonymous session user. It is carried in a
// signed cookie instead of server-side session storage.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID    uint      `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
}
