package coordinator

import (
	"context"
	"testing"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbcore"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
)

func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	db, err := dbcore.ConfigInMemoryDatabaseForTesting()
	if err != nil {
		t.Fatalf("unexpected error opening in-memory catalog: %v", err)
	}
	s, err := NewCoordinator(context.Background(), db, Config{})
	if err != nil {
		t.Fatalf("unexpected error creating coordinator: %v", err)
	}
	return s
}

func TestCoordinatorCreateGetDeleteCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestCoordinator(t)

	coll := &model.CreateCollection{
		ID:   types.NewUniqueID(),
		Name: "test-collection-name",
		Metadata: &model.CollectionMetadata[model.CollectionMetadataValueType]{
			Metadata: map[string]model.CollectionMetadataValueType{
				"test-metadata-key": &model.CollectionMetadataValueStringType{Value: "test-metadata-value"},
			},
		},
		TenantID:     common.DefaultTenant,
		DatabaseName: common.DefaultDatabase,
	}
	collection, err := s.CreateCollection(ctx, coll)
	if err != nil {
		t.Fatalf("unexpected error creating collection: %v", err)
	}
	if collection.Topic == "" {
		t.Fatalf("expected collection to be assigned a topic")
	}

	collections, err := s.GetCollections(ctx, coll.ID, &coll.Name, nil, common.DefaultTenant, common.DefaultDatabase)
	if err != nil {
		t.Fatalf("unexpected error getting collections: %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(collections))
	}

	if err := s.DeleteCollection(ctx, &model.DeleteCollection{
		ID:           coll.ID,
		TenantID:     common.DefaultTenant,
		DatabaseName: common.DefaultDatabase,
	}); err != nil {
		t.Fatalf("unexpected error deleting collection: %v", err)
	}

	collections, err = s.GetCollections(ctx, coll.ID, nil, nil, common.DefaultTenant, common.DefaultDatabase)
	if err != nil {
		t.Fatalf("unexpected error getting collections after delete: %v", err)
	}
	if len(collections) != 0 {
		t.Fatalf("expected 0 collections after delete, got %d", len(collections))
	}
}

func TestCoordinatorDimensionImmutable(t *testing.T) {
	ctx := context.Background()
	s := newTestCoordinator(t)

	dim := int32(128)
	coll := &model.CreateCollection{
		ID:           types.NewUniqueID(),
		Name:         "dim-collection",
		Dimension:    &dim,
		TenantID:     common.DefaultTenant,
		DatabaseName: common.DefaultDatabase,
	}
	if _, err := s.CreateCollection(ctx, coll); err != nil {
		t.Fatalf("unexpected error creating collection: %v", err)
	}

	newDim := int32(256)
	_, err := s.UpdateCollection(ctx, &model.UpdateCollection{
		ID:        coll.ID,
		Dimension: &newDim,
	})
	if err == nil {
		t.Fatalf("expected an error changing an already-set dimension")
	}
}

func TestCoordinatorSegmentScopePolicy(t *testing.T) {
	ctx := context.Background()
	s := newTestCoordinator(t)

	coll := &model.CreateCollection{
		ID:           types.NewUniqueID(),
		Name:         "seg-collection",
		TenantID:     common.DefaultTenant,
		DatabaseName: common.DefaultDatabase,
	}
	if _, err := s.CreateCollection(ctx, coll); err != nil {
		t.Fatalf("unexpected error creating collection: %v", err)
	}

	seg := &model.CreateSegment{
		ID:           types.NewUniqueID(),
		Type:         "test-segment-type",
		Scope:        model.SegmentScopeVector,
		CollectionID: coll.ID,
	}
	if err := s.CreateSegment(ctx, seg); err != nil {
		t.Fatalf("unexpected error creating segment: %v", err)
	}

	dupe := &model.CreateSegment{
		ID:           types.NewUniqueID(),
		Type:         "test-segment-type",
		Scope:        model.SegmentScopeVector,
		CollectionID: coll.ID,
	}
	if err := s.CreateSegment(ctx, dupe); err == nil {
		t.Fatalf("expected default scope policy to reject a second VECTOR segment on the same collection")
	}
}

func TestCoordinatorTenantAndDatabase(t *testing.T) {
	ctx := context.Background()
	s := newTestCoordinator(t)

	tenant, err := s.CreateTenant(ctx, &model.CreateTenant{Name: "acme"})
	if err != nil {
		t.Fatalf("unexpected error creating tenant: %v", err)
	}
	if tenant.Name != "acme" {
		t.Fatalf("expected tenant name acme, got %s", tenant.Name)
	}

	if _, err := s.CreateTenant(ctx, &model.CreateTenant{Name: "acme"}); err == nil {
		t.Fatalf("expected duplicate tenant creation to fail")
	}

	db, err := s.CreateDatabase(ctx, &model.CreateDatabase{Name: "acme-db", Tenant: "acme"})
	if err != nil {
		t.Fatalf("unexpected error creating database: %v", err)
	}
	if db.Tenant != "acme" {
		t.Fatalf("expected database tenant acme, got %s", db.Tenant)
	}

	if _, err := s.GetDatabase(ctx, &model.GetDatabase{Name: "acme-db", Tenant: "acme"}); err != nil {
		t.Fatalf("unexpected error getting database: %v", err)
	}

	if _, err := s.CreateDatabase(ctx, &model.CreateDatabase{Name: "acme-db", Tenant: "nonexistent"}); err == nil {
		t.Fatalf("expected database creation under an unknown tenant to fail")
	}
}
