// Package maintenance implements the leader-elected Purger and Metrics
// loops (spec §4.7): exactly one replica runs each, gated by the pkg/leader
// Lease capability, grounded on the teacher's pkg/log/purging/main.go and
// pkg/log/metrics/main.go but generalized from a direct client-go dependency
// onto the Lease/Holder abstraction.
package maintenance

import (
	"context"
	"time"

	"github.com/corevecdb/corevec/pkg/leader"
	"github.com/corevecdb/corevec/pkg/logservice"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// PurgerConfig names the lease this loop competes for and how often it
// ticks once leading, mirroring the teacher's 15s lease / 10s tick ratio.
type PurgerConfig struct {
	LeaseName    string
	LeaseTTL     time.Duration
	TickInterval time.Duration
}

// Purger deletes fully-compacted log prefixes (I3) on a tick, but only on
// the replica holding LeaseName.
type Purger struct {
	logService logservice.ILogService
	lease      leader.Lease
	config     PurgerConfig
}

func NewPurger(logService logservice.ILogService, lease leader.Lease, config PurgerConfig) *Purger {
	return &Purger{logService: logService, lease: lease, config: config}
}

// Run blocks until ctx is cancelled, competing for leadership and running
// the purge tick loop for as long as it holds the lease. Losing leadership
// returns Run to the Acquire call to try again, matching the teacher's
// elector.Run(ctx) re-election behavior.
func (p *Purger) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		holder, err := p.lease.Acquire(ctx, p.config.LeaseName, p.config.LeaseTTL)
		if err != nil {
			return err
		}
		log.Info("purger started leading", zap.String("lease", p.config.LeaseName))
		p.loop(ctx, holder)
		holder.Release()
		log.Info("purger stopped leading", zap.String("lease", p.config.LeaseName))
	}
}

// loop ticks until either the caller's ctx is cancelled or holder loses
// leadership, whichever happens first — the single cancellation check spec
// §4.7 requires at the next tick boundary.
func (p *Purger) loop(ctx context.Context, holder leader.Holder) {
	ticker := time.NewTicker(p.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-holder.Ctx().Done():
			return
		case <-ticker.C:
			if err := p.logService.PurgeLogs(ctx); err != nil {
				log.Error("purge tick failed", zap.Error(err))
				continue
			}
		}
	}
}
