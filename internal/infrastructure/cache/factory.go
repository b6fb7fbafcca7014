package cache

import (
	"fmt"
	"time"

	"github.com/campaign/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// StoreFactory creates cache stores based on configuration
type StoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	keyPrefix             string
	defaultTTL            time.Duration
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to a memory store when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithKeyPrefix sets the Redis key prefix
func WithKeyPrefix(prefix string) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.keyPrefix = prefix
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg config.RedisConfig, defaultTTL time.Duration, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		keyPrefix:             "campaign:",
		defaultTTL:            defaultTTL,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateStore returns a Redis store when Redis is enabled and reachable,
// otherwise a memory store if fallback is allowed
func (f *StoreFactory) CreateStore() (Store, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory cache")
		return NewMemoryStore(f.defaultTTL), nil
	}

	store, err := NewRedisStore(f.redisConfig, f.keyPrefix, f.defaultTTL)
	if err == nil {
		f.logger.Info("Using Redis cache", zap.String("addr", f.redisConfig.Addr()))
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory cache. "+
		"Catalog lookups will not be shared between instances.",
		zap.Error(err),
	)
	return NewMemoryStore(f.defaultTTL), nil
}
