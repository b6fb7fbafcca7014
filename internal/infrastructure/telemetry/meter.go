package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const defaultExportInterval = 60 * time.Second

// MeterConfig holds OTLP metrics export configuration.
type MeterConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration // Default: 60s
	ServiceName       string
	ServiceVersion    string
	Insecure          bool
}

// MeterProvider wraps the OpenTelemetry MeterProvider with lifecycle management.
// It pushes the same business metrics that Metrics exposes for scraping.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
	config   MeterConfig
}

// NewMeterProvider creates a MeterProvider that exports to the collector over
// OTLP gRPC on a fixed interval. If export is disabled, it returns a provider
// that wraps the no-op global meter.
func NewMeterProvider(ctx context.Context, cfg MeterConfig, logger *zap.Logger) (*MeterProvider, error) {
	if !cfg.Enabled {
		logger.Info("Metrics export disabled, using no-op meter provider")
		return &MeterProvider{logger: logger, config: cfg}, nil
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	exporterOpts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint),
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	mp, err := NewMeterProviderWithReader(cfg, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
		zap.String("service_name", cfg.ServiceName),
	)
	return mp, nil
}

// NewMeterProviderWithReader builds an enabled provider around reader and
// installs it as the global meter provider.
func NewMeterProviderWithReader(cfg MeterConfig, reader sdkmetric.Reader, logger *zap.Logger) (*MeterProvider, error) {
	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(provider)

	cfg.Enabled = true
	return &MeterProvider{provider: provider, logger: logger, config: cfg}, nil
}

// Shutdown flushes pending metrics and stops the provider.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}

	mp.logger.Info("Shutting down OpenTelemetry MeterProvider...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		mp.logger.Error("Error shutting down meter provider", zap.Error(err))
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}

// Meter returns a named meter from the provider.
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled returns whether metrics export is enabled.
func (mp *MeterProvider) IsEnabled() bool {
	return mp.config.Enabled && mp.provider != nil
}

// ForceFlush immediately exports all metrics that have not yet been exported.
func (mp *MeterProvider) ForceFlush(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	return mp.provider.ForceFlush(ctx)
}
