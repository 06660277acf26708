package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.Server.Port == "" {
		add("server.port", "is required")
	}

	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.Host == "" {
			add("db.host", "is required for postgres")
		}
		if cfg.Database.Name == "" {
			add("db.name", "is required for postgres")
		}
		if cfg.Environment.IsProduction() && cfg.Database.Password == "" {
			add("db.password", "db_password secret is required in production")
		}
	case "sqlite":
		if cfg.Database.Path == "" {
			add("db.path", "is required for sqlite")
		}
	default:
		add("db.driver", fmt.Sprintf("must be postgres or sqlite, got %q", cfg.Database.Driver))
	}

	if cfg.Environment.IsProduction() && cfg.Session.Secret == "" {
		add("session.secret", "session_secret secret is required in production")
	}
	if cfg.Session.CookieName == "" {
		add("session.cookie_name", "is required")
	}
	if cfg.Session.TTL <= 0 {
		add("session.ttl", "must be positive")
	}

	if cfg.LLM.MaxTokens <= 0 {
		add("llm.max_tokens", "must be positive")
	}
	if cfg.LLM.Timeout <= 0 {
		add("llm.timeout", "must be positive")
	}

	if cfg.RateLimit.Requests <= 0 {
		add("rate_limit.requests", "must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		add("rate_limit.window", "must be positive")
	}

	if cfg.Search.MinPercentage < 0 || cfg.Search.MinPercentage > 100 {
		add("search.min_percentage", "must be between 0 and 100")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
