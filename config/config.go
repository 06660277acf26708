package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSecretsDir = "/run/secrets"

// Config holds all configuration for the application
type Config struct {
	Environment Environment `mapstructure:"-"`

	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	LLM       LLMConfig       `mapstructure:"llm"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Search    SearchConfig    `mapstructure:"search"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	LogLevel  string          `mapstructure:"log_level"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DatabaseConfig selects the relational store. Driver is "postgres" or
// "sqlite"; Path is only used by sqlite.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	Path     string `mapstructure:"path"`
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// URL builds the Postgres connection URL used by lib/pq.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// RedisConfig is optional: an empty URL disables the guidance cache and
// switches rate limiting to the in-process limiter.
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
}

type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// RateLimitConfig bounds guidance requests per session.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type SearchConfig struct {
	MinPercentage int `mapstructure:"min_percentage"`
	MaxResults    int `mapstructure:"max_results"`
}

// CatalogConfig names the recipes.json source for the importer. File takes
// precedence over S3.
type CatalogConfig struct {
	File       string `mapstructure:"file"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Key      string `mapstructure:"s3_key"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
	AWSRegion  string `mapstructure:"aws_region"`
}

// secretKeys maps config keys to files in the secrets directory.
var secretKeys = map[string]string{
	"db.password":    "db_password",
	"db.user":        "db_user",
	"redis.password": "redis_password",
	"session.secret": "session_secret",
	"llm.api_key":    "llm_api_key",
}

// LoadConfig reads an optional .env file, then environment variables, then
// secrets, and validates the result for the current environment.
func LoadConfig() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	env := GetEnvironment()
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if env != CI {
		for key, name := range secretKeys {
			if secret := readSecret(name); secret != "" {
				v.Set(key, secret)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Environment = env
	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "vegichef")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.path", "recipes.db")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.password", "")

	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "vegichef_session")
	v.SetDefault("session.ttl", "720h")
	v.SetDefault("session.secure", false)

	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.max_tokens", 1500)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.cache_ttl", "24h")

	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("search.min_percentage", 30)
	v.SetDefault("search.max_results", 10)

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.s3_bucket", "")
	v.SetDefault("catalog.s3_key", "recipes.json")
	v.SetDefault("catalog.s3_endpoint", "")
	v.SetDefault("catalog.aws_region", "us-east-1")

	v.SetDefault("log_level", "info")
}

// bindLegacyEnv accepts the variable names used by existing deployments.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("db.ssl_mode", "DB_SSL_MODE")
	_ = v.BindEnv("session.secret", "SESSION_SECRET", "JWT_SECRET")
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("catalog.aws_region", "CATALOG_AWS_REGION", "AWS_REGION")
	_ = v.BindEnv("catalog.s3_bucket", "CATALOG_S3_BUCKET", "S3_BUCKET_NAME")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// splitList flattens comma-separated entries and drops blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
