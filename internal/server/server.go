package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/api"
	"github.com/vegichef/backend/internal/database"
	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/middleware"
	"github.com/vegichef/backend/internal/router"
	"github.com/vegichef/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
	cfg    *config.Config
}

// New wires services, middleware and routes. rdb may be nil, in which case
// guidance is not cached and rate limiting is kept in process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Server {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := service.NewCatalogService(db)
	search := service.NewSearchService(catalog, matching.NewMatcher(matching.Config{
		MinPercentage: cfg.Search.MinPercentage,
		MaxResults:    cfg.Search.MaxResults,
	}))
	llm := service.NewLLMService(cfg.LLM, rdb)
	sessions := service.NewSessionService(db, cfg.Session)
	favorites := service.NewFavoriteService(db)

	limit := middleware.RateLimitConfig{
		Window:    cfg.RateLimit.Window,
		Limit:     cfg.RateLimit.Requests,
		KeyPrefix: "ratelimit:instructions",
	}
	var limiter middleware.Limiter
	if rdb != nil {
		limiter = middleware.NewRedisLimiter(rdb, limit)
	} else {
		logger.Warn("redis not configured, using in-memory rate limiting")
		limiter = middleware.NewMemoryLimiter(limit)
	}

	checks := []api.ReadyCheck{
		{Name: "database", Check: func(ctx context.Context) error { return database.HealthCheck(ctx, db) }},
	}
	if rdb != nil {
		checks = append(checks, api.ReadyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	engine := router.SetupRouter(cfg.Server.AllowedOrigins, api.Routes{
		Recipes:   api.NewRecipeHandler(catalog, search, llm),
		Favorites: api.NewFavoriteHandler(favorites),
		Session: middleware.Session(sessions, middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		}),
		InstructionLimit: middleware.RateLimit(limiter, limit),
		ReadyChecks:      checks,
	})

	return &Server{
		router: engine,
		db:     db,
		redis:  rdb,
		cfg:    cfg,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until the server is shut down. A clean shutdown returns nil.
func (s *Server) Start() error {
	logger.Info("starting server", zap.String("addr", s.http.Addr), zap.String("env", s.cfg.Environment.String()))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, bounded by the configured shutdown
// timeout, then closes the database and redis handles.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cfg.Server.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
		defer cancel()
	}

	err := s.http.Shutdown(ctx)

	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			logger.Warn("failed to close redis client", zap.Error(cerr))
		}
	}
	if sqlDB, derr := s.db.DB(); derr == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			logger.Warn("failed to close database", zap.Error(cerr))
		}
	}
	return err
}
