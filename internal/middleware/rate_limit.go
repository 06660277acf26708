package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vegichef/backend/internal/logger"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Limiter counts requests per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// RedisLimiter is a fixed-window counter shared by every server instance.
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRedisLimiter creates a new rate limiter instance
func NewRedisLimiter(redisClient *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		redis:  redisClient,
		config: config,
	}
}

// Allow increments the counter for key in the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= rl.config.Limit,
		Remaining: remaining,
		Reset:     windowStart.Add(rl.config.Window),
	}, nil
}

// MemoryLimiter is a per-process token bucket per key, used when Redis is
// not configured. Limit tokens refill evenly over Window.
type MemoryLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewMemoryLimiter creates a limiter that keeps its state in memory.
func NewMemoryLimiter(config RateLimitConfig) *MemoryLimiter {
	if config.Limit <= 0 {
		config.Limit = 1
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &MemoryLimiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (m *MemoryLimiter) limiter(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.limiters[key]
	if !ok {
		every := m.config.Window / time.Duration(m.config.Limit)
		l = rate.NewLimiter(rate.Every(every), m.config.Limit)
		m.limiters[key] = l
	}
	return l
}

// Allow takes one token for key.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l := m.limiter(key)
	now := time.Now()
	allowed := l.AllowN(now, 1)

	remaining := int(l.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	every := m.config.Window / time.Duration(m.config.Limit)
	return Decision{
		Allowed:   allowed,
		Remaining: remaining,
		Reset:     now.Add(every),
	}, nil
}

// RateLimit enforces limiter per session user, or per client IP for
// requests without an established session. A session created on this very
// request counts as none, so dropping the cookie does not reset the limit.
// Limiter failures let the request through.
func RateLimit(limiter Limiter, config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if id, ok := UserID(c); ok && !IsNewSession(c) {
			key = "user:" + strconv.FormatUint(uint64(id), 10)
		}

		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))

		if !d.Allowed {
			retryAfter := int(time.Until(d.Reset).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", config.Limit, config.Window),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
