// Package openfoodfacts implements the product catalog client against the
// OpenFoodFacts public API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public OpenFoodFacts endpoint
	DefaultBaseURL = "https://world.openfoodfacts.org"

	maxResponseSize = 1 << 20
)

// Client looks products up in OpenFoodFacts
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *telemetry.Metrics
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records lookup outcomes on m
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client from the catalog configuration.
// A non-positive rate limit disables throttling.
func NewClient(cfg config.CatalogConfig, zl *zap.Logger, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	if zl == nil {
		zl = zap.NewNop()
	}

	c := &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		logger:     zl.Named("openfoodfacts"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the product registered under barcode.
// It returns catalog.ErrCatalogNotFound on a miss and an error wrapping
// catalog.ErrCatalogUnavailable on any other failure.
func (c *Client) Lookup(ctx context.Context, barcode string) (*catalog.CatalogProduct, error) {
	ctx, span := telemetry.StartSpan(ctx, "openfoodfacts.lookup",
		telemetry.WithSpanKind(trace.SpanKindClient),
		telemetry.WithAttribute(telemetry.SpanAttrBarcode, barcode),
	)
	defer span.End()

	start := time.Now()
	product, err := c.lookup(ctx, barcode)
	result := telemetry.CatalogResultFound
	switch {
	case errors.Is(err, catalog.ErrCatalogNotFound):
		result = telemetry.CatalogResultNotFound
	case err != nil:
		result = telemetry.CatalogResultError
		telemetry.RecordError(span, err)
		logger.L(ctx).Zap().Named("openfoodfacts").Warn("Catalog lookup failed",
			zap.String("barcode", barcode),
			zap.Error(err),
		)
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCatalogResult, result)
	c.metrics.ObserveCatalogLookup(ctx, result, time.Since(start))
	return product, err
}

func (c *Client) lookup(ctx context.Context, barcode string) (*catalog.CatalogProduct, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", catalog.ErrCatalogUnavailable, err)
	}

	endpoint := c.baseURL + "/api/v0/product/" + url.PathEscape(barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", catalog.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, catalog.ErrCatalogNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", catalog.ErrCatalogUnavailable, resp.StatusCode)
	}

	var payload productResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", catalog.ErrCatalogUnavailable, err)
	}
	if payload.notFound() {
		return nil, catalog.ErrCatalogNotFound
	}

	p := payload.Product
	code := p.Code
	if code == "" {
		code = barcode
	}
	return &catalog.CatalogProduct{
		ExternalID:   p.ID,
		Barcode:      code,
		Name:         strings.TrimSpace(p.ProductName),
		GenericName:  strings.TrimSpace(p.GenericName),
		Quantity:     string(p.ProductQuantity),
		QuantityUnit: strings.TrimSpace(p.ProductQuantityUnit),
	}, nil
}

var _ catalog.CatalogClient = (*Client)(nil)
