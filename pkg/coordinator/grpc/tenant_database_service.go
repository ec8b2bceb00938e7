package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
)

func (s *Server) CreateTenant(ctx context.Context, req *coordinatorpb.CreateTenantRequest) (*coordinatorpb.CreateTenantResponse, error) {
	if _, err := s.coordinator.CreateTenant(ctx, &model.CreateTenant{Name: req.Name}); err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.CreateTenantResponse{}, nil
}

func (s *Server) GetTenant(ctx context.Context, req *coordinatorpb.GetTenantRequest) (*coordinatorpb.GetTenantResponse, error) {
	tenant, err := s.coordinator.GetTenant(ctx, &model.GetTenant{Name: req.Name})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.GetTenantResponse{Tenant: &coordinatorpb.Tenant{Name: tenant.Name}}, nil
}

func (s *Server) CreateDatabase(ctx context.Context, req *coordinatorpb.CreateDatabaseRequest) (*coordinatorpb.CreateDatabaseResponse, error) {
	_, err := s.coordinator.CreateDatabase(ctx, &model.CreateDatabase{
		ID:     req.Id,
		Name:   req.Name,
		Tenant: req.Tenant,
	})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.CreateDatabaseResponse{}, nil
}

func (s *Server) GetDatabase(ctx context.Context, req *coordinatorpb.GetDatabaseRequest) (*coordinatorpb.GetDatabaseResponse, error) {
	database, err := s.coordinator.GetDatabase(ctx, &model.GetDatabase{Name: req.Name, Tenant: req.Tenant})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	return &coordinatorpb.GetDatabaseResponse{Database: &coordinatorpb.Database{
		Id:     database.ID,
		Name:   database.Name,
		Tenant: database.Tenant,
	}}, nil
}

func (s *Server) ListDatabases(ctx context.Context, req *coordinatorpb.ListDatabasesRequest) (*coordinatorpb.ListDatabasesResponse, error) {
	databases, err := s.coordinator.ListDatabases(ctx, &model.ListDatabases{
		Tenant: req.Tenant,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, grpcutils.BuildGrpcError(err)
	}
	out := make([]*coordinatorpb.Database, 0, len(databases))
	for _, database := range databases {
		out = append(out, &coordinatorpb.Database{Id: database.ID, Name: database.Name, Tenant: database.Tenant})
	}
	return &coordinatorpb.ListDatabasesResponse{Databases: out}, nil
}
