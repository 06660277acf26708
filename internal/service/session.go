package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/types"
)

const sessionIssuer = "vegichef"

// SessionService identifies anonymous visitors. The user id travels in a
// signed token; the user row is created on first use.
type SessionService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionService instance. Without a
// configured secret a random one is used, so sessions end on restart.
func NewSessionService(db *gorm.DB, cfg config.SessionConfig) *SessionService {
	secret := cfg.Secret
	if secret == "" {
		logger.Warn("session secret not configured, using an ephemeral key")
		secret = uuid.NewString() + uuid.NewString()
	}
	return &SessionService{
		db:     db,
		secret: []byte(secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// Resolve returns the user behind token. When token is empty, invalid,
// expired or names a user that no longer exists, a new user is created and
// its freshly signed token is returned as the second value. For a valid
// token the second value is empty.
func (s *SessionService) Resolve(ctx context.Context, token string) (*model.User, string, error) {
	if token != "" {
		user, err := s.lookup(ctx, token)
		if err == nil {
			return user, "", nil
		}
		logger.Debug("session token rejected", zap.Error(err))
	}

	user := &model.User{
		SessionID:  uuid.NewString(),
		LastActive: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create session user: %w", err)
	}

	signed, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

func (s *SessionService) lookup(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = s.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", claims.UserID, claims.SessionID.String()).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("last_active", s.now()).Error; err != nil {
		logger.Warn("failed to update last_active", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return &user, nil
}

func (s *SessionService) issue(user *model.User) (string, error) {
	sessionID, err := uuid.Parse(user.SessionID)
	if err != nil {
		return "", fmt.Errorf("invalid session id: %w", err)
	}

	now := s.now()
	claims := types.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:    user.ID,
		SessionID: sessionID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature, issuer and expiry of a session token.
func (s *SessionService) ValidateToken(token string) (*types.SessionClaims, error) {
	claims := &types.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
