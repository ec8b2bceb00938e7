package grpc

import (
	"context"
	"testing"

	"github.com/corevecdb/corevec/pkg/assignment"
	"github.com/corevecdb/corevec/pkg/coordinator"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbcore"
	"github.com/corevecdb/corevec/pkg/notification"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Server against a fresh in-memory sqlite catalog
// with Testing:true so no gRPC listener is bound, letting tests call the
// RPC methods directly the way the teacher's own coordinator tests do.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := dbcore.ConfigInMemoryDatabaseForTesting()
	require.NoError(t, err)

	server, err := NewWithGrpcProvider(
		Config{Testing: true},
		nil,
		db,
		coordinator.Config{
			AssignmentPolicy: assignment.NewSimplePolicy("tenant-ns", "topic-ns"),
			Notifier:         notification.NewMemoryNotifier(),
		},
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func TestServer_CreateAndGetCollection(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	created, err := server.CreateCollection(ctx, &coordinatorpb.CreateCollectionRequest{
		Name:     "my-collection",
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Collection.Id)

	got, err := server.GetCollections(ctx, &coordinatorpb.GetCollectionsRequest{
		Id:       &created.Collection.Id,
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)
	require.Len(t, got.Collections, 1)
	require.Equal(t, "my-collection", got.Collections[0].Name)
}

func TestServer_UpdateCollection_RejectsMetadataWithResetMetadata(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	created, err := server.CreateCollection(ctx, &coordinatorpb.CreateCollectionRequest{
		Name:     "reset-metadata-collection",
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)

	value := "value"
	_, err = server.UpdateCollection(ctx, &coordinatorpb.UpdateCollectionRequest{
		Id:            created.Collection.Id,
		ResetMetadata: true,
		Metadata:      map[string]coordinatorpb.MetadataValue{"key": {StringValue: &value}},
	})
	require.Error(t, err)
}

func TestServer_DeleteCollection_ThenGetReturnsEmpty(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	created, err := server.CreateCollection(ctx, &coordinatorpb.CreateCollectionRequest{
		Name:     "to-delete",
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)

	_, err = server.DeleteCollection(ctx, &coordinatorpb.DeleteCollectionRequest{
		Id:       created.Collection.Id,
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)

	got, err := server.GetCollections(ctx, &coordinatorpb.GetCollectionsRequest{
		Id:       &created.Collection.Id,
		Tenant:   "default_tenant",
		Database: "default_database",
	})
	require.NoError(t, err)
	require.Empty(t, got.Collections)
}
