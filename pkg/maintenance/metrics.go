package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/corevecdb/corevec/pkg/leader"
	"github.com/corevecdb/corevec/pkg/logservice"
	"github.com/pingcap/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// MetricsConfig names the lease this loop competes for and how often it
// ticks once leading, mirroring the teacher's 15s lease / 1s tick ratio.
type MetricsConfig struct {
	LeaseName    string
	LeaseTTL     time.Duration
	TickInterval time.Duration
}

// Metrics publishes enumeration_offset - compaction_offset lag per
// collection (spec §4.7) via an OTel gauge, same instrument shape as the
// teacher's pkg/log/metrics/main.go uncompactedEntriesCnt.
type Metrics struct {
	logService logservice.ILogService
	lease      leader.Lease
	config     MetricsConfig
	lagGauge   metric.Int64Gauge
}

func NewMetrics(logService logservice.ILogService, lease leader.Lease, config MetricsConfig, meter metric.Meter) (*Metrics, error) {
	gauge, err := meter.Int64Gauge(
		"corevec_log_lag_offsets",
		metric.WithDescription("enumeration_offset - compaction_offset per collection"),
		metric.WithUnit("{offsets}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating log lag gauge: %w", err)
	}
	return &Metrics{logService: logService, lease: lease, config: config, lagGauge: gauge}, nil
}

func (m *Metrics) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		holder, err := m.lease.Acquire(ctx, m.config.LeaseName, m.config.LeaseTTL)
		if err != nil {
			return err
		}
		log.Info("metrics loop started leading", zap.String("lease", m.config.LeaseName))
		m.loop(ctx, holder)
		holder.Release()
		log.Info("metrics loop stopped leading", zap.String("lease", m.config.LeaseName))
	}
}

func (m *Metrics) loop(ctx context.Context, holder leader.Holder) {
	ticker := time.NewTicker(m.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-holder.Ctx().Done():
			return
		case <-ticker.C:
			states, err := m.logService.ListCollectionLogStates(ctx)
			if err != nil {
				log.Error("metrics tick failed to list collection log states", zap.Error(err))
				continue
			}
			for _, state := range states {
				lag := state.EnumerationOffset - state.CompactionOffset
				m.lagGauge.Record(ctx, lag, metric.WithAttributes(
					attribute.String("collection_id", state.CollectionID),
				))
			}
		}
	}
}
