package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
)

// otlpmetricgrpc dials lazily, so InitMetrics succeeds even against an
// address nothing is listening on; only a real export attempt would block
// on the network, which this test never triggers.
func TestInitMetrics_BuildsMeterAndShutsDownCleanly(t *testing.T) {
	ctx := context.Background()
	meter, shutdown, err := InitMetrics(ctx, MetricsConfig{Service: "corevec-test", Endpoint: "127.0.0.1:0"})
	require.NoError(t, err)
	require.NotNil(t, meter)
	t.Cleanup(func() {
		require.NoError(t, shutdown(context.Background()))
	})

	gauge, err := meter.Int64Gauge("corevec_test_gauge")
	require.NoError(t, err)
	gauge.Record(ctx, 42, metric.WithAttributes())
}
