// Package redis implements the durable token storage strategy. It is the
// opt-in alternative to the default in-memory token store: the bearer token
// survives client restarts for as long as its TTL, which mirrors the
// localStorage behavior of the original web client.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/owl-lion/access-hub/pkg/logger"
	"github.com/owl-lion/access-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config holds Redis connection configuration for the token store.
type Config struct {
	// Host is the Redis server hostname.
	Host string

	// Port is the Redis server port.
	Port int

	// Password is the Redis authentication password (empty if no auth).
	Password string

	// DB is the Redis database number.
	DB int

	// Key is the key the token is stored under.
	Key string

	// TokenTTL bounds how long a persisted token outlives the process.
	// Zero means no expiry.
	TokenTTL time.Duration

	// OpTimeout bounds each store operation. The TokenStore contract is
	// synchronous, so every call runs under its own deadline.
	OpTimeout time.Duration

	// Logger for structured logging.
	Logger *slog.Logger
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:      "localhost",
		Port:      6379,
		DB:        0,
		Key:       "access-hub:token",
		TokenTTL:  24 * time.Hour,
		OpTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ══════════════════════════════════════════════════════════════════════════════
// TOKEN STORE
// ══════════════════════════════════════════════════════════════════════════════

// TokenStore is a session.TokenStore backed by Redis. A read miss — whether
// the key is absent, expired, or Redis is unreachable — reports "no token",
// which sends the auth flow back through a fresh login rather than failing.
type TokenStore struct {
	client *redis.Client
	config Config
	logger *slog.Logger
}

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(config Config) *TokenStore {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Key == "" {
		config.Key = DefaultConfig().Key
	}
	if config.OpTimeout <= 0 {
		config.OpTimeout = DefaultConfig().OpTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr(),
		Password: config.Password,
		DB:       config.DB,
	})

	return &TokenStore{
		client: client,
		config: config,
		logger: config.Logger,
	}
}

// Ping verifies the Redis connection.
func (s *TokenStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("token store ping: %w", err)
	}
	return nil
}

// Get returns the persisted token and whether one is held. An absent key is
// permanent and not retried; transient connection errors get a few fast
// attempts before reporting a miss.
func (s *TokenStore) Get() (string, bool) {
	ctx, cancel := s.opContext()
	defer cancel()

	token, err := retry.DoWithData(ctx, func(ctx context.Context) (string, error) {
		result, err := s.client.Get(ctx, s.config.Key).Result()
		if errors.Is(err, redis.Nil) {
			return "", retry.Permanent(err)
		}
		return result, err
	}, retry.StoreOptions()...)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("token store read failed", logger.Err(err))
		}
		return "", false
	}
	return token, true
}

// Set replaces the persisted token.
func (s *TokenStore) Set(token string) {
	ctx, cancel := s.opContext()
	defer cancel()

	err := retry.Do(ctx, func(ctx context.Context) error {
		return s.client.Set(ctx, s.config.Key, token, s.config.TokenTTL).Err()
	}, retry.StoreOptions()...)
	if err != nil {
		s.logger.Warn("token store write failed", logger.Err(err))
	}
}

// Clear discards the persisted token.
func (s *TokenStore) Clear() {
	ctx, cancel := s.opContext()
	defer cancel()

	err := retry.Do(ctx, func(ctx context.Context) error {
		return s.client.Del(ctx, s.config.Key).Err()
	}, retry.StoreOptions()...)
	if err != nil {
		s.logger.Warn("token store delete failed", logger.Err(err))
	}
}

// Close releases the underlying Redis connection.
func (s *TokenStore) Close() error {
	return s.client.Close()
}

func (s *TokenStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.config.OpTimeout)
}
