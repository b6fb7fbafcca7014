package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/infrastructure/cache"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "catalog:product:"

// cacheEntry is what CachedClient stores per barcode
type cacheEntry struct {
	NotFound bool                    `json:"not_found,omitempty"`
	Product  *catalog.CatalogProduct `json:"product,omitempty"`
}

// CachedClient caches catalog hits for ttl and misses for negativeTTL.
// Cache failures are logged and fall through to the wrapped client.
type CachedClient struct {
	next        catalog.CatalogClient
	store       cache.Store
	ttl         time.Duration
	negativeTTL time.Duration
	metrics     *telemetry.Metrics
	logger      *zap.Logger
}

// NewCachedClient wraps next with store
func NewCachedClient(next catalog.CatalogClient, store cache.Store, ttl, negativeTTL time.Duration, metrics *telemetry.Metrics, logger *zap.Logger) *CachedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedClient{
		next:        next,
		store:       store,
		ttl:         ttl,
		negativeTTL: negativeTTL,
		metrics:     metrics,
		logger:      logger.Named("catalog_cache"),
	}
}

// Lookup answers from the cache when possible
func (c *CachedClient) Lookup(ctx context.Context, barcode string) (*catalog.CatalogProduct, error) {
	key := cacheKeyPrefix + barcode

	if entry, ok := c.get(ctx, key); ok {
		if entry.NotFound {
			c.metrics.ObserveCatalogLookup(ctx, telemetry.CatalogResultCacheNegative, 0)
			return nil, catalog.ErrCatalogNotFound
		}
		c.metrics.ObserveCatalogLookup(ctx, telemetry.CatalogResultCacheHit, 0)
		return entry.Product, nil
	}

	product, err := c.next.Lookup(ctx, barcode)
	switch {
	case errors.Is(err, catalog.ErrCatalogNotFound):
		if c.negativeTTL > 0 {
			c.set(ctx, key, cacheEntry{NotFound: true}, c.negativeTTL)
		}
		return nil, err
	case err != nil:
		return nil, err
	}

	c.set(ctx, key, cacheEntry{Product: product}, c.ttl)
	return product, nil
}

func (c *CachedClient) get(ctx context.Context, key string) (cacheEntry, bool) {
	var entry cacheEntry
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return entry, false
	}
	if err := json.Unmarshal(raw, &entry); err != nil || (!entry.NotFound && entry.Product == nil) {
		c.logger.Warn("Discarding corrupt catalog cache entry", zap.String("key", key))
		_ = c.store.Delete(ctx, key)
		return entry, false
	}
	return entry, true
}

func (c *CachedClient) set(ctx context.Context, key string, entry cacheEntry, ttl time.Duration) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.logger.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

var _ catalog.CatalogClient = (*CachedClient)(nil)
