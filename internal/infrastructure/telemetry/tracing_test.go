package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestTracer installs an in-memory span recorder as the global provider
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[string(a.Key)] = a.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)
	campaignID := uuid.New()

	ctx, span := telemetry.StartServiceSpan(context.Background(), "campaign", "add_product",
		telemetry.WithAttribute(telemetry.SpanAttrCampaignID, campaignID),
		telemetry.WithAttribute(telemetry.SpanAttrQuantity, 3),
		telemetry.WithSpanKind(trace.SpanKindServer),
	)
	assert.NotEmpty(t, telemetry.GetTraceID(ctx))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "campaign.add_product", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, campaignID.String(), attrs[telemetry.SpanAttrCampaignID].AsString())
	assert.Equal(t, int64(3), attrs[telemetry.SpanAttrQuantity].AsInt64())
}

func TestSetAttributesAndEvents(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "product.resolve")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrBarcode, "7891000100103",
		42, "skipped: key is not a string",
		"cached", true,
	)
	telemetry.AddEvent(span, "catalog_miss", "barcode", "7891000100103")
	telemetry.SetOK(span)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "7891000100103", attrs[telemetry.SpanAttrBarcode].AsString())
	assert.True(t, attrs["cached"].AsBool())
	assert.Len(t, attrs, 2)

	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "catalog_miss", spans[0].Events()[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}

func TestRecordError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "failing")
	telemetry.RecordError(span, errors.New("catalog unavailable"))
	telemetry.RecordError(span, nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "catalog unavailable", spans[0].Status().Description)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, telemetry.GetTraceID(context.Background()))
}
