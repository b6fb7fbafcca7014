// Package cache provides byte-oriented key/value stores with per-entry TTLs,
// backed by Redis or by process memory.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Store is a key/value cache
type Store interface {
	// Get returns ErrCacheMiss when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key; a zero ttl uses the store default
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
