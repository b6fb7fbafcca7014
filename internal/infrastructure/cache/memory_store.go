package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements Store in process memory.
// Entries are not shared between instances.
type MemoryStore struct {
	c          *gocache.Cache
	defaultTTL time.Duration
}

// NewMemoryStore creates a memory store; expired entries are purged every minute
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		c:          gocache.New(defaultTTL, time.Minute),
		defaultTTL: defaultTTL,
	}
}

// Get returns the value stored under key
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	b, _ := v.([]byte)
	return b, nil
}

// Set stores a copy of value under key
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	m.c.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Delete removes key
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// ItemCount returns the number of cached entries, including expired ones not yet purged
func (m *MemoryStore) ItemCount() int {
	return m.c.ItemCount()
}

// Close drops every entry
func (m *MemoryStore) Close() error {
	m.c.Flush()
	return nil
}

var _ Store = (*MemoryStore)(nil)
