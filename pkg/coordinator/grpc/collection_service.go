package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"github.com/corevecdb/corevec/pkg/types"
)

func (s *Server) ResetState(ctx context.Context, _ *coordinatorpb.ResetStateRequest) (*coordinatorpb.ResetStateResponse, error) {
	if err := s.coordinator.ResetState(ctx); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.ResetStateResponse{}, nil
}

func (s *Server) SetCollectionLogOffset(ctx context.Context, req *coordinatorpb.SetCollectionLogOffsetRequest) (*coordinatorpb.SetCollectionLogOffsetResponse, error) {
	collectionID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}
	if err := s.coordinator.SetCollectionLogOffset(ctx, &model.SetCollectionLogOffset{ID: collectionID, LogPosition: req.LogOffset}); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.SetCollectionLogOffsetResponse{}, nil
}

// CreateCollection implements get_or_create semantics (spec P5): a new
// collection ID is minted here when the caller doesn't supply one, mirroring
// the teacher's pkg/coordinator/grpc/collection_service.go.
func (s *Server) CreateCollection(ctx context.Context, req *coordinatorpb.CreateCollectionRequest) (*coordinatorpb.CreateCollectionResponse, error) {
	collectionID, err := parseOptionalUniqueID(&req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}
	if collectionID == types.NilUniqueID() {
		collectionID = types.NewUniqueID()
	}

	createCollection := &model.CreateCollection{
		ID:            collectionID,
		Name:          req.Name,
		Dimension:     req.Dimension,
		Metadata:      convertMetadataFromProto(req.Metadata),
		Configuration: req.Configuration,
		GetOrCreate:   req.GetOrCreate,
		TenantID:      req.Tenant,
		DatabaseName:  req.Database,
	}

	collection, err := s.coordinator.CreateCollection(ctx, createCollection)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.CreateCollectionResponse{Collection: convertCollectionToProto(collection)}, nil
}

func (s *Server) GetCollections(ctx context.Context, req *coordinatorpb.GetCollectionsRequest) (*coordinatorpb.GetCollectionsResponse, error) {
	collectionID, err := parseOptionalUniqueID(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}

	collections, err := s.coordinator.GetCollections(ctx, collectionID, req.Name, nil, req.Tenant, req.Database)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	out := make([]*coordinatorpb.Collection, 0, len(collections))
	for _, collection := range collections {
		out = append(out, convertCollectionToProto(collection))
	}
	return &coordinatorpb.GetCollectionsResponse{Collections: out}, nil
}

func (s *Server) DeleteCollection(ctx context.Context, req *coordinatorpb.DeleteCollectionRequest) (*coordinatorpb.DeleteCollectionResponse, error) {
	collectionID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}
	err = s.coordinator.DeleteCollection(ctx, &model.DeleteCollection{
		ID:           collectionID,
		TenantID:     req.Tenant,
		DatabaseName: req.Database,
	})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.DeleteCollectionResponse{}, nil
}

// UpdateCollection enforces the same reset_metadata/metadata mutual
// exclusion as the Coordinator's verifyUpdateCollection check:
// setting reset_metadata and supplying metadata together is rejected before
// it ever reaches the coordinator.
func (s *Server) UpdateCollection(ctx context.Context, req *coordinatorpb.UpdateCollectionRequest) (*coordinatorpb.UpdateCollectionResponse, error) {
	collectionID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}

	updateCollection := &model.UpdateCollection{
		ID:            collectionID,
		Name:          req.Name,
		Dimension:     req.Dimension,
		ResetMetadata: req.ResetMetadata,
	}

	if req.ResetMetadata {
		if req.Metadata != nil {
			return nil, grpcutils.BuildGrpcError(common.ErrInvalidMetadataUpdate)
		}
	} else if req.Metadata != nil {
		updateCollection.Metadata = convertMetadataFromProto(req.Metadata)
	}

	collection, err := s.coordinator.UpdateCollection(ctx, updateCollection)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.UpdateCollectionResponse{Collection: convertCollectionToProto(collection)}, nil
}
