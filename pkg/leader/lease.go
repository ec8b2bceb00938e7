// Package leader abstracts distributed leader election behind the Lease
// capability named in SPEC_FULL.md's design notes, so the maintenance loops
// (Purger, Metrics — spec §4.7) depend on an interface rather than directly
// on a specific cluster-lease primitive.
package leader

import (
	"context"
	"time"
)

// Holder represents a single acquisition attempt against a Lease. Ctx is
// cancelled the instant leadership is lost (including on Release), which is
// the single cancellation check maintenance loops must honor mid-tick (spec
// §4.7: "loss of leadership mid-tick aborts the current iteration at the
// next cancellation check").
type Holder interface {
	// Ctx returns a context valid for as long as this holder remains
	// leader. Callers should select on Ctx.Done() at every suspension
	// point inside a tick.
	Ctx() context.Context

	// IsLeader reports current leadership status without blocking.
	IsLeader() bool

	// Renew is a capability-level no-op for backends (like client-go's
	// leaderelection) that renew automatically on a background timer; it
	// exists so callers that want to force a liveness check have a place
	// to do it, and so in-memory test doubles have something to assert
	// against.
	Renew(ctx context.Context) error

	// Release gives up leadership immediately, cancelling Ctx.
	Release()
}

// Lease acquires and holds a named distributed lock with a given TTL.
// Acquire blocks until either leadership is won or ctx is cancelled.
type Lease interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (Holder, error)
}
