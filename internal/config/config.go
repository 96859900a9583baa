package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service. It is built once
// at startup and passed down; nothing reads the environment afterwards.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Comments CommentsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DatabaseConfig holds the DB connection values. Driver, Server, Name, User
// and Password are required; when any is missing the service starts degraded
// with a warning rather than failing.
type DatabaseConfig struct {
	Driver         string
	Server         string
	Name           string
	User           string
	Password       string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values for the reference-list cache.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	ReferenceTTLSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// CommentsConfig gates comment-ledger matching behavior.
type CommentsConfig struct {
	// AllowUnscopedFallback permits locating a comment target by ticket
	// number and row id alone when the company-scoped lookups miss. Off by
	// default; every unscoped match is logged.
	AllowUnscopedFallback bool
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: DatabaseConfig{
			Driver:         os.Getenv("DB_DRIVER"),
			Server:         os.Getenv("DB_SERVER"),
			Name:           os.Getenv("DB_DATABASE"),
			User:           os.Getenv("DB_UID"),
			Password:       os.Getenv("DB_PASSWORD"),
			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("DB_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("DB_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			ReferenceTTLSec: getEnvAsInt("REDIS_REFERENCE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 30),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Comments: CommentsConfig{
			AllowUnscopedFallback: getEnvAsBool("COMMENTS_ALLOW_UNSCOPED_FALLBACK", false),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// MissingVars lists the required connection values that were not provided.
func (d DatabaseConfig) MissingVars() []string {
	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"DB_DRIVER", d.Driver},
		{"DB_SERVER", d.Server},
		{"DB_DATABASE", d.Name},
		{"DB_UID", d.User},
		{"DB_PASSWORD", d.Password},
	} {
		if kv.val == "" {
			missing = append(missing, kv.key)
		}
	}
	return missing
}

// DSN renders the connection string, or empty when required values are
// missing.
func (d DatabaseConfig) DSN() string {
	if len(d.MissingVars()) > 0 {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Server,
		d.Name,
	)
}

// ReferenceTTL returns the dropdown cache entry lifetime.
func (r RedisConfig) ReferenceTTL() time.Duration {
	if r.ReferenceTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(r.ReferenceTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
