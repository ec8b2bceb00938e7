package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"
)

func TestDecodeRemoteSpanContext_ValidHeaders(t *testing.T) {
	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	spanID := trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8}

	md := metadata.Pairs(traceIDHeader, traceID.String(), spanIDHeader, spanID.String())
	ctx := metadata.NewIncomingContext(context.Background(), md)

	spanCtx := decodeRemoteSpanContext(ctx)
	require.True(t, spanCtx.IsValid())
	assert.Equal(t, traceID, spanCtx.TraceID())
	assert.Equal(t, spanID, spanCtx.SpanID())
	assert.True(t, spanCtx.IsRemote())
}

func TestDecodeRemoteSpanContext_MissingHeaders(t *testing.T) {
	spanCtx := decodeRemoteSpanContext(context.Background())
	assert.False(t, spanCtx.IsValid())
}

func TestDecodeRemoteSpanContext_MalformedHeaders(t *testing.T) {
	md := metadata.Pairs(traceIDHeader, "not-hex", spanIDHeader, "also-not-hex")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	spanCtx := decodeRemoteSpanContext(ctx)
	assert.False(t, spanCtx.IsValid())
}

func TestHandleError_RecordsErrorStatus(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	handleError(span, errors.New("boom"))
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "boom", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}
