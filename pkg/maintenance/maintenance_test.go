package maintenance

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/corevecdb/corevec/pkg/leader"
	"github.com/corevecdb/corevec/pkg/logservice"
	"github.com/corevecdb/corevec/pkg/logservice/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

// fakeLogService is a minimal ILogService double; only PurgeLogs and
// ListCollectionLogStates are exercised by the maintenance loops, the rest
// exist solely to satisfy the interface.
type fakeLogService struct {
	purgeCalls atomic.Int64
	states     []*dbmodel.CollectionLogState
}

var _ logservice.ILogService = (*fakeLogService)(nil)

func (f *fakeLogService) Start() error { return nil }
func (f *fakeLogService) Stop() error  { return nil }

func (f *fakeLogService) PushLogs(context.Context, types.UniqueID, [][]byte) (int, error) {
	return 0, nil
}

func (f *fakeLogService) PullLogs(context.Context, types.UniqueID, int64, int) ([]*dbmodel.RecordLog, error) {
	return nil, nil
}

func (f *fakeLogService) GetAllCollectionInfoToCompact(context.Context, int64) ([]*dbmodel.CollectionToCompact, error) {
	return nil, nil
}

func (f *fakeLogService) UpdateCollectionLogOffset(context.Context, types.UniqueID, int64) error {
	return nil
}

func (f *fakeLogService) PurgeLogs(ctx context.Context) error {
	f.purgeCalls.Add(1)
	return nil
}

func (f *fakeLogService) ListCollectionLogStates(ctx context.Context) ([]*dbmodel.CollectionLogState, error) {
	return f.states, nil
}

func TestPurger_TicksWhileLeading(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	fake := &fakeLogService{}
	purger := NewPurger(fake, leader.NewMemoryLease(), PurgerConfig{
		LeaseName:    "purger",
		LeaseTTL:     time.Second,
		TickInterval: 20 * time.Millisecond,
	})

	err := purger.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Greater(t, fake.purgeCalls.Load(), int64(0))
}

func TestMetrics_RecordsLagPerCollection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	fake := &fakeLogService{
		states: []*dbmodel.CollectionLogState{
			{CollectionID: "c1", EnumerationOffset: 10, CompactionOffset: 4},
		},
	}
	meter := noop.NewMeterProvider().Meter("test")
	m, err := NewMetrics(fake, leader.NewMemoryLease(), MetricsConfig{
		LeaseName:    "metrics",
		LeaseTTL:     time.Second,
		TickInterval: 20 * time.Millisecond,
	}, meter)
	require.NoError(t, err)

	err = m.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
