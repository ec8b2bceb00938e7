// Package grpc exposes logservice.ILogService over logservicepb's gRPC
// service descriptor, grounded on the teacher's
// internal/logservice/grpc/record_log_service.go.
package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/logservice"
	"github.com/corevecdb/corevec/pkg/proto/logservicepb"
	"github.com/corevecdb/corevec/pkg/types"
)

type Server struct {
	logservicepb.UnimplementedLogServiceServer
	logService logservice.ILogService
	grpcServer grpcutils.GrpcServer
}

func (s *Server) PushLogs(ctx context.Context, req *logservicepb.PushLogsRequest) (*logservicepb.PushLogsResponse, error) {
	collectionID, err := types.Parse(req.CollectionId)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDInvalid)
	}
	count, err := s.logService.PushLogs(ctx, collectionID, req.Records)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &logservicepb.PushLogsResponse{RecordCount: int32(count)}, nil
}

func (s *Server) PullLogs(ctx context.Context, req *logservicepb.PullLogsRequest) (*logservicepb.PullLogsResponse, error) {
	collectionID, err := types.Parse(req.CollectionId)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDInvalid)
	}
	rows, err := s.logService.PullLogs(ctx, collectionID, req.StartOffset, int(req.BatchSize))
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	records := make([]*logservicepb.LogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &logservicepb.LogRecord{Offset: row.Offset, Record: row.Record})
	}
	return &logservicepb.PullLogsResponse{Records: records}, nil
}

func (s *Server) GetAllCollectionInfoToCompact(ctx context.Context, req *logservicepb.GetAllCollectionInfoToCompactRequest) (*logservicepb.GetAllCollectionInfoToCompactResponse, error) {
	rows, err := s.logService.GetAllCollectionInfoToCompact(ctx, int64(req.MinCompactionSize))
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	infos := make([]*logservicepb.CollectionInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, &logservicepb.CollectionInfo{
			CollectionId:   row.CollectionID,
			FirstLogOffset: row.FirstLogID,
			FirstLogTs:     row.FirstLogIDTs,
		})
	}
	return &logservicepb.GetAllCollectionInfoToCompactResponse{Collections: infos}, nil
}

func (s *Server) UpdateCollectionLogOffset(ctx context.Context, req *logservicepb.UpdateCollectionLogOffsetRequest) (*logservicepb.UpdateCollectionLogOffsetResponse, error) {
	collectionID, err := types.Parse(req.CollectionId)
	if err != nil {
		return nil, grpcutils.BuildGrpcError(common.ErrCollectionIDInvalid)
	}
	if err := s.logService.UpdateCollectionLogOffset(ctx, collectionID, req.LogOffset); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &logservicepb.UpdateCollectionLogOffsetResponse{}, nil
}

func (s *Server) Close() error {
	var err error
	if s.grpcServer != nil {
		err = s.grpcServer.Close()
	}
	if stopErr := s.logService.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

// LogService exposes the underlying ILogService so cmd/logservice can wire
// the leader-elected Purger/Metrics maintenance loops (spec §4.7) against
// the same instance serving PushLogs/PullLogs.
func (s *Server) LogService() logservice.ILogService {
	return s.logService
}
