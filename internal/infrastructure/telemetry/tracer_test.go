package telemetry_test

import (
	"context"
	"testing"

	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	cfg := telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     1.0,
		ServiceName:       "test-service",
	}

	tp, err := telemetry.NewTracerProvider(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.False(t, tp.IsEnabled())
	assert.Equal(t, "test-service", tp.GetConfig().ServiceName)
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProviderWithExporter(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()

	tp, err := telemetry.NewTracerProviderWithExporter(telemetry.Config{
		SamplingRatio: 1.0,
		ServiceName:   "test-service",
	}, exporter, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.True(t, tp.IsEnabled())

	_, span := telemetry.StartSpan(ctx, "test-span")
	span.End()
	require.NoError(t, tp.ForceFlush(ctx))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "test-span", spans[0].Name)

	require.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProviderWithExporter_NeverSample(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()

	tp, err := telemetry.NewTracerProviderWithExporter(telemetry.Config{
		SamplingRatio: 0,
		ServiceName:   "test-service",
	}, exporter, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(ctx, "dropped")
	span.End()
	require.NoError(t, tp.ForceFlush(ctx))

	assert.Empty(t, exporter.GetSpans())
	require.NoError(t, tp.Shutdown(ctx))
}
