// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// TokenStorage selects the token persistence strategy. The in-memory
// default matches a session-scoped credential; "redis" opts into durable
// storage that survives restarts.
type TokenStorage string

const (
	TokenStorageMemory TokenStorage = "memory"
	TokenStorageRedis  TokenStorage = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Backend platform API
	Platform PlatformConfig

	// External identity provider
	Identity IdentityConfig

	// Token persistence
	Tokens TokenConfig

	// Chatbot behavior
	Chat ChatConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"APP_NAME" env-default:"access-hub"`
	Environment Environment `env:"APP_ENV" env-default:"development"`
	Debug       bool        `env:"APP_DEBUG" env-default:"false"`

	// Origin is the address this client is reachable at; it doubles as the
	// OAuth redirect_uri.
	Origin string `env:"APP_ORIGIN" env-default:"http://localhost:3000"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// PlatformConfig holds backend API settings.
type PlatformConfig struct {
	// BaseURL of the Owl & Lion backend.
	BaseURL string `env:"PLATFORM_BASE_URL" env-default:"https://customized-training.org"`

	// RequestTimeout is the per-request HTTP timeout.
	RequestTimeout time.Duration `env:"PLATFORM_REQUEST_TIMEOUT" env-default:"30s"`
}

// IdentityConfig holds the external identity-provider settings.
type IdentityConfig struct {
	// AuthorizeEndpoint is the provider's authorization URL.
	AuthorizeEndpoint string `env:"IDENTITY_AUTHORIZE_URL" env-default:"https://auth.fhda.edu/authorize"`

	// ClientID identifies this application to the provider.
	ClientID string `env:"IDENTITY_CLIENT_ID"`

	// Scope is the requested scope string.
	Scope string `env:"IDENTITY_SCOPE" env-default:"openid profile"`
}

// TokenConfig holds token persistence settings.
type TokenConfig struct {
	// Storage is "memory" (default) or "redis".
	Storage TokenStorage `env:"TOKEN_STORAGE" env-default:"memory"`

	// Redis connection, used only when Storage is "redis".
	RedisHost     string        `env:"TOKEN_REDIS_HOST" env-default:"localhost"`
	RedisPort     int           `env:"TOKEN_REDIS_PORT" env-default:"6379"`
	RedisPassword string        `env:"TOKEN_REDIS_PASSWORD"`
	RedisDB       int           `env:"TOKEN_REDIS_DB" env-default:"0"`
	RedisKey      string        `env:"TOKEN_REDIS_KEY" env-default:"access-hub:token"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"24h"`
}

// ChatConfig holds the scripted chatbot settings.
type ChatConfig struct {
	// ReplyDelay is the fixed delay before a canned reply lands.
	ReplyDelay time.Duration `env:"CHAT_REPLY_DELAY" env-default:"1s"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Platform.BaseURL == "" {
		errs = append(errs, "PLATFORM_BASE_URL is required")
	}
	if c.Tokens.Storage != TokenStorageMemory && c.Tokens.Storage != TokenStorageRedis {
		errs = append(errs, "TOKEN_STORAGE must be memory or redis")
	}

	// The client ID is only needed to build the sign-in redirect, but a
	// production build without one can never complete a login.
	if c.App.Environment == EnvProduction && c.Identity.ClientID == "" {
		errs = append(errs, "IDENTITY_CLIENT_ID is required in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}
