// Package coordinator implements the Coordinator service (spec §4.3): the
// in-memory cache over the Catalog Store, plus the validation and
// collection-to-partition assignment that sit in front of it.
package coordinator

import (
	"context"
	"errors"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
)

// ICoordinator is the Coordinator's API surface; it can run standalone
// (tests, embedding) without the gRPC service in front of it.
type ICoordinator interface {
	common.Component
	ResetState(ctx context.Context) error
	CreateCollection(ctx context.Context, createCollection *model.CreateCollection) (*model.Collection, error)
	GetCollections(ctx context.Context, collectionID types.UniqueID, collectionName *string, collectionTopic *string, tenantID string, databaseName string) ([]*model.Collection, error)
	DeleteCollection(ctx context.Context, deleteCollection *model.DeleteCollection) error
	UpdateCollection(ctx context.Context, updateCollection *model.UpdateCollection) (*model.Collection, error)
	CreateSegment(ctx context.Context, createSegment *model.CreateSegment) error
	GetSegments(ctx context.Context, segmentID types.UniqueID, segmentType *string, scope *model.SegmentScope, collectionID types.UniqueID) ([]*model.Segment, error)
	DeleteSegment(ctx context.Context, segmentID types.UniqueID) error
	UpdateSegment(ctx context.Context, updateSegment *model.UpdateSegment) (*model.Segment, error)
	CreateDatabase(ctx context.Context, createDatabase *model.CreateDatabase) (*model.Database, error)
	GetDatabase(ctx context.Context, getDatabase *model.GetDatabase) (*model.Database, error)
	ListDatabases(ctx context.Context, listDatabases *model.ListDatabases) ([]*model.Database, error)
	CreateTenant(ctx context.Context, createTenant *model.CreateTenant) (*model.Tenant, error)
	GetTenant(ctx context.Context, getTenant *model.GetTenant) (*model.Tenant, error)
	// SetCollectionLogOffset is called by the Log Service, never by a
	// client directly (spec §9 Open Question (a)).
	SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error
}

func (s *Coordinator) ResetState(ctx context.Context) error {
	return s.meta.ResetState(ctx)
}

func (s *Coordinator) CreateDatabase(ctx context.Context, createDatabase *model.CreateDatabase) (*model.Database, error) {
	return s.meta.CreateDatabase(ctx, createDatabase)
}

func (s *Coordinator) GetDatabase(ctx context.Context, getDatabase *model.GetDatabase) (*model.Database, error) {
	return s.meta.GetDatabase(ctx, getDatabase)
}

func (s *Coordinator) ListDatabases(ctx context.Context, listDatabases *model.ListDatabases) ([]*model.Database, error) {
	return s.meta.ListDatabases(ctx, listDatabases)
}

func (s *Coordinator) CreateTenant(ctx context.Context, createTenant *model.CreateTenant) (*model.Tenant, error) {
	return s.meta.CreateTenant(ctx, createTenant)
}

func (s *Coordinator) GetTenant(ctx context.Context, getTenant *model.GetTenant) (*model.Tenant, error) {
	return s.meta.GetTenant(ctx, getTenant)
}

func (s *Coordinator) SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error {
	return s.meta.SetCollectionLogOffset(ctx, setLogOffset)
}

func (s *Coordinator) CreateCollection(ctx context.Context, createCollection *model.CreateCollection) (*model.Collection, error) {
	if err := verifyCreateCollection(createCollection); err != nil {
		return nil, err
	}
	topic, err := s.assignCollection(createCollection.ID)
	if err != nil {
		return nil, err
	}
	createCollection.Topic = topic
	return s.meta.AddCollection(ctx, createCollection)
}

func (s *Coordinator) GetCollections(ctx context.Context, collectionID types.UniqueID, collectionName *string, collectionTopic *string, tenantID string, databaseName string) ([]*model.Collection, error) {
	return s.meta.GetCollections(ctx, collectionID, collectionName, collectionTopic, tenantID, databaseName)
}

func (s *Coordinator) DeleteCollection(ctx context.Context, deleteCollection *model.DeleteCollection) error {
	return s.meta.DeleteCollection(ctx, deleteCollection)
}

func (s *Coordinator) UpdateCollection(ctx context.Context, updateCollection *model.UpdateCollection) (*model.Collection, error) {
	if err := verifyUpdateCollection(updateCollection); err != nil {
		return nil, err
	}
	return s.meta.UpdateCollection(ctx, updateCollection)
}

func (s *Coordinator) CreateSegment(ctx context.Context, segment *model.CreateSegment) error {
	if err := verifyCreateSegment(segment); err != nil {
		return err
	}
	return s.meta.AddSegment(ctx, segment)
}

func (s *Coordinator) GetSegments(ctx context.Context, segmentID types.UniqueID, segmentType *string, scope *model.SegmentScope, collectionID types.UniqueID) ([]*model.Segment, error) {
	return s.meta.GetSegments(ctx, segmentID, segmentType, scope, collectionID)
}

func (s *Coordinator) DeleteSegment(ctx context.Context, segmentID types.UniqueID) error {
	return s.meta.DeleteSegment(ctx, segmentID)
}

func (s *Coordinator) UpdateSegment(ctx context.Context, updateSegment *model.UpdateSegment) (*model.Segment, error) {
	if err := verifyUpdateSegment(updateSegment); err != nil {
		return nil, err
	}
	return s.meta.UpdateSegment(ctx, updateSegment)
}

func verifyCreateCollection(collection *model.CreateCollection) error {
	if collection.ID.String() == "" {
		return errors.New("collection ID cannot be empty")
	}
	return verifyCollectionMetadata(collection.Metadata)
}

func verifyCollectionMetadata(metadata *model.CollectionMetadata[model.CollectionMetadataValueType]) error {
	if metadata == nil {
		return nil
	}
	for _, value := range metadata.Metadata {
		switch value.(type) {
		case *model.CollectionMetadataValueStringType, *model.CollectionMetadataValueInt64Type, *model.CollectionMetadataValueFloat64Type:
		default:
			return common.ErrUnknownCollectionMetadataType
		}
	}
	return nil
}

func verifyUpdateCollection(collection *model.UpdateCollection) error {
	if collection.ID.String() == "" {
		return errors.New("collection ID cannot be empty")
	}
	return verifyCollectionMetadata(collection.Metadata)
}

func verifyCreateSegment(segment *model.CreateSegment) error {
	return verifySegmentMetadata(segment.Metadata)
}

func verifyUpdateSegment(segment *model.UpdateSegment) error {
	return verifySegmentMetadata(segment.Metadata)
}

func verifySegmentMetadata(metadata *model.CollectionMetadata[model.SegmentMetadataValueType]) error {
	if metadata == nil {
		return nil
	}
	for _, value := range metadata.Metadata {
		switch value.(type) {
		case *model.SegmentMetadataValueStringType, *model.SegmentMetadataValueInt64Type, *model.SegmentMetadataValueFloat64Type:
		default:
			return common.ErrUnknownSegmentMetadataType
		}
	}
	return nil
}
