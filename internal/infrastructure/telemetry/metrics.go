package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Catalog lookup results
const (
	CatalogResultFound         = "found"
	CatalogResultNotFound      = "not_found"
	CatalogResultError         = "error"
	CatalogResultCacheHit      = "cache_hit"
	CatalogResultCacheNegative = "cache_negative"
)

// Product resolution sources
const (
	ResolvedFromLocal   = "local"
	ResolvedFromCatalog = "catalog"
)

// Attribute keys of the exported business metrics
var (
	AttrCatalogResult    = attribute.Key("catalog.result")
	AttrResolutionSource = attribute.Key("resolution.source")
)

// Metrics holds the Prometheus collectors of the service on a private registry.
// After Export, business metrics are also recorded on OpenTelemetry instruments.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        prometheus.Gauge

	catalogLookupsTotal   *prometheus.CounterVec
	catalogLookupDuration prometheus.Histogram
	productResolutions    *prometheus.CounterVec
	associationsUpserted  prometheus.Counter

	exported *instruments
}

// instruments are the OpenTelemetry counterparts of the business collectors
type instruments struct {
	catalogLookups        metric.Int64Counter
	catalogLookupDuration metric.Float64Histogram
	productResolutions    metric.Int64Counter
	associationsUpserted  metric.Int64Counter
}

// NewMetrics creates and registers all collectors under namespace
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_inflight_requests",
			Help:      "HTTP requests currently being served",
		}),
		catalogLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_lookups_total",
			Help:      "External catalog lookups by result",
		}, []string{"result"}),
		catalogLookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_lookup_duration_seconds",
			Help:      "Latency of calls to the external catalog",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		productResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_resolutions_total",
			Help:      "Barcode resolutions by source",
		}, []string{"source"}),
		associationsUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_product_upserts_total",
			Help:      "Campaign product associations inserted or updated",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpInflight,
		m.catalogLookupsTotal,
		m.catalogLookupDuration,
		m.productResolutions,
		m.associationsUpserted,
	)
	return m
}

// Export creates the business instruments on meter so that every later
// observation is also pushed through the OpenTelemetry pipeline.
func (m *Metrics) Export(meter metric.Meter) error {
	lookups, err := meter.Int64Counter("catalog.lookups",
		metric.WithDescription("External catalog lookups by result"),
		metric.WithUnit("{lookup}"))
	if err != nil {
		return fmt.Errorf("failed to create counter catalog.lookups: %w", err)
	}
	duration, err := meter.Float64Histogram("catalog.lookup.duration",
		metric.WithDescription("Latency of calls to the external catalog"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10))
	if err != nil {
		return fmt.Errorf("failed to create histogram catalog.lookup.duration: %w", err)
	}
	resolutions, err := meter.Int64Counter("product.resolutions",
		metric.WithDescription("Barcode resolutions by source"),
		metric.WithUnit("{resolution}"))
	if err != nil {
		return fmt.Errorf("failed to create counter product.resolutions: %w", err)
	}
	upserts, err := meter.Int64Counter("campaign.product.upserts",
		metric.WithDescription("Campaign product associations inserted or updated"),
		metric.WithUnit("{association}"))
	if err != nil {
		return fmt.Errorf("failed to create counter campaign.product.upserts: %w", err)
	}

	m.exported = &instruments{
		catalogLookups:        lookups,
		catalogLookupDuration: duration,
		productResolutions:    resolutions,
		associationsUpserted:  upserts,
	}
	return nil
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GinMiddleware records request count, latency and in-flight requests.
// Requests are labelled by route template so IDs do not explode cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		m.httpInflight.Inc()
		defer m.httpInflight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveCatalogLookup records one catalog lookup; d is ignored for cache results
func (m *Metrics) ObserveCatalogLookup(ctx context.Context, result string, d time.Duration) {
	if m == nil {
		return
	}
	cached := result == CatalogResultCacheHit || result == CatalogResultCacheNegative
	m.catalogLookupsTotal.WithLabelValues(result).Inc()
	if !cached {
		m.catalogLookupDuration.Observe(d.Seconds())
	}

	if m.exported == nil {
		return
	}
	attrs := metric.WithAttributes(AttrCatalogResult.String(result))
	m.exported.catalogLookups.Add(ctx, 1, attrs)
	if !cached {
		m.exported.catalogLookupDuration.Record(ctx, d.Seconds(), attrs)
	}
}

// IncProductResolution counts a successful barcode resolution from source
func (m *Metrics) IncProductResolution(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.productResolutions.WithLabelValues(source).Inc()
	if m.exported != nil {
		m.exported.productResolutions.Add(ctx, 1, metric.WithAttributes(AttrResolutionSource.String(source)))
	}
}

// IncAssociationUpsert counts a campaign product insert or quantity replacement
func (m *Metrics) IncAssociationUpsert(ctx context.Context) {
	if m == nil {
		return
	}
	m.associationsUpserted.Inc()
	if m.exported != nil {
		m.exported.associationsUpserted.Add(ctx, 1)
	}
}
