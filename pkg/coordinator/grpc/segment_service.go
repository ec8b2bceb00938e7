package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"github.com/corevecdb/corevec/pkg/types"
)

func (s *Server) CreateSegment(ctx context.Context, req *coordinatorpb.CreateSegmentRequest) (*coordinatorpb.CreateSegmentResponse, error) {
	segmentID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrSegmentIDFormat)
	}
	collectionID, err := types.Parse(req.CollectionId)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}

	err = s.coordinator.CreateSegment(ctx, &model.CreateSegment{
		ID:           segmentID,
		Type:         req.Type,
		Scope:        model.SegmentScope(req.Scope),
		CollectionID: collectionID,
		Metadata:     convertSegmentMetadataFromProto(req.Metadata),
	})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.CreateSegmentResponse{}, nil
}

func (s *Server) GetSegments(ctx context.Context, req *coordinatorpb.GetSegmentsRequest) (*coordinatorpb.GetSegmentsResponse, error) {
	segmentID, err := parseOptionalUniqueID(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrSegmentIDFormat)
	}
	collectionID, err := parseOptionalUniqueID(&req.CollectionId)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDFormat)
	}
	var scope *model.SegmentScope
	if req.Scope != nil {
		s := model.SegmentScope(*req.Scope)
		scope = &s
	}

	segments, err := s.coordinator.GetSegments(ctx, segmentID, req.Type, scope, collectionID)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	out := make([]*coordinatorpb.Segment, 0, len(segments))
	for _, segment := range segments {
		out = append(out, convertSegmentToProto(segment))
	}
	return &coordinatorpb.GetSegmentsResponse{Segments: out}, nil
}

func (s *Server) DeleteSegment(ctx context.Context, req *coordinatorpb.DeleteSegmentRequest) (*coordinatorpb.DeleteSegmentResponse, error) {
	segmentID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrSegmentIDFormat)
	}
	if err := s.coordinator.DeleteSegment(ctx, segmentID); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.DeleteSegmentResponse{}, nil
}

func (s *Server) UpdateSegment(ctx context.Context, req *coordinatorpb.UpdateSegmentRequest) (*coordinatorpb.UpdateSegmentResponse, error) {
	segmentID, err := types.Parse(req.Id)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrSegmentIDFormat)
	}

	updateSegment := &model.UpdateSegment{
		ID:              segmentID,
		Collection:      req.Collection,
		ResetCollection: req.ResetCollection,
		ResetMetadata:   req.ResetMetadata,
	}
	if req.ResetMetadata {
		if req.Metadata != nil {
			return nil, grpcutils.BuildGrpcError(common.ErrInvalidMetadataUpdate)
		}
	} else if req.Metadata != nil {
		updateSegment.Metadata = convertSegmentMetadataFromProto(req.Metadata)
	}

	if _, err := s.coordinator.UpdateSegment(ctx, updateSegment); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.UpdateSegmentResponse{}, nil
}
