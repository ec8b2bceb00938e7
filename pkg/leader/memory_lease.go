package leader

import (
	"context"
	"sync"
	"time"
)

// MemoryLease grants leadership to whichever caller calls Acquire first for
// a given name and hasn't Released it yet — a single-process stand-in for
// K8sLease used in tests and in single-replica deployments where
// leader.lease_name has no Kubernetes cluster backing it.
type MemoryLease struct {
	mu      sync.Mutex
	holders map[string]*memoryHolder
}

func NewMemoryLease() *MemoryLease {
	return &MemoryLease{holders: make(map[string]*memoryHolder)}
}

type memoryHolder struct {
	ctx    context.Context
	cancel context.CancelFunc
	lease  *MemoryLease
	name   string
}

func (h *memoryHolder) Ctx() context.Context { return h.ctx }
func (h *memoryHolder) IsLeader() bool       { return h.ctx.Err() == nil }
func (h *memoryHolder) Renew(_ context.Context) error {
	return nil
}

func (h *memoryHolder) Release() {
	h.lease.mu.Lock()
	delete(h.lease.holders, h.name)
	h.lease.mu.Unlock()
	h.cancel()
}

// Acquire blocks until name is free or ctx is cancelled. ttl is accepted for
// interface parity with K8sLease but otherwise unused: there is no renewal
// deadline to miss within a single process.
func (l *MemoryLease) Acquire(ctx context.Context, name string, _ time.Duration) (Holder, error) {
	for {
		l.mu.Lock()
		if _, taken := l.holders[name]; !taken {
			holderCtx, cancel := context.WithCancel(context.Background())
			holder := &memoryHolder{ctx: holderCtx, cancel: cancel, lease: l, name: name}
			l.holders[name] = holder
			l.mu.Unlock()
			return holder, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}
