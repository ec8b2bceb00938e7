package grpc

import (
	"context"
	"testing"

	"github.com/corevecdb/corevec/pkg/proto/logservicepb"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Server against a fresh in-memory sqlite log store
// with Testing:true (no gRPC listener) and no coordinator mirror, for
// exercising the RPC methods directly.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	server, err := New(Config{
		DatabaseProvider: "sqlite",
		DBName:           "file::memory:?cache=shared",
		Testing:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func TestServer_PushThenPullLogs(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()
	collectionID := types.NewUniqueID().String()

	pushed, err := server.PushLogs(ctx, &logservicepb.PushLogsRequest{
		CollectionId: collectionID,
		Records:      [][]byte{[]byte("one"), []byte("two"), []byte("three")},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, pushed.RecordCount)

	pulled, err := server.PullLogs(ctx, &logservicepb.PullLogsRequest{
		CollectionId: collectionID,
		StartOffset:  1,
		BatchSize:    10,
	})
	require.NoError(t, err)
	require.Len(t, pulled.Records, 3)
	require.Equal(t, int64(1), pulled.Records[0].Offset)
	require.Equal(t, []byte("one"), pulled.Records[0].Record)
}

func TestServer_PushLogs_RejectsMalformedCollectionID(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	_, err := server.PushLogs(ctx, &logservicepb.PushLogsRequest{
		CollectionId: "not-a-uuid",
		Records:      [][]byte{[]byte("one")},
	})
	require.Error(t, err)
}

func TestServer_UpdateCollectionLogOffset_RejectsRegression(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()
	collectionID := types.NewUniqueID().String()

	_, err := server.PushLogs(ctx, &logservicepb.PushLogsRequest{
		CollectionId: collectionID,
		Records:      [][]byte{[]byte("one"), []byte("two")},
	})
	require.NoError(t, err)

	_, err = server.UpdateCollectionLogOffset(ctx, &logservicepb.UpdateCollectionLogOffsetRequest{
		CollectionId: collectionID,
		LogOffset:    2,
	})
	require.NoError(t, err)

	// compaction_offset can only advance; moving it backward must be
	// rejected (spec P3 — no regressing a collection's compaction offset).
	_, err = server.UpdateCollectionLogOffset(ctx, &logservicepb.UpdateCollectionLogOffsetRequest{
		CollectionId: collectionID,
		LogOffset:    1,
	})
	require.Error(t, err)
}
