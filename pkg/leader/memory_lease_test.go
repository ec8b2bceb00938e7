package leader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLease_SecondAcquireBlocksUntilRelease(t *testing.T) {
	lease := NewMemoryLease()
	ctx := context.Background()

	first, err := lease.Acquire(ctx, "purger", 15*time.Second)
	require.NoError(t, err)
	require.True(t, first.IsLeader())

	secondAcquired := make(chan Holder, 1)
	go func() {
		holder, err := lease.Acquire(ctx, "purger", 15*time.Second)
		require.NoError(t, err)
		secondAcquired <- holder
	}()

	select {
	case <-secondAcquired:
		t.Fatal("second acquire should not succeed while first holder is live")
	case <-time.After(50 * time.Millisecond):
	}

	first.Release()
	require.False(t, first.IsLeader())
	require.Error(t, first.Ctx().Err())

	select {
	case holder := <-secondAcquired:
		require.True(t, holder.IsLeader())
	case <-time.After(time.Second):
		t.Fatal("second acquire never succeeded after release")
	}
}

func TestMemoryLease_AcquireRespectsContextCancellation(t *testing.T) {
	lease := NewMemoryLease()
	ctx := context.Background()

	holder, err := lease.Acquire(ctx, "metrics", 15*time.Second)
	require.NoError(t, err)
	defer holder.Release()

	cancelCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = lease.Acquire(cancelCtx, "metrics", 15*time.Second)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
