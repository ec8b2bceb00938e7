// Package grpc exposes coordinator.ICoordinator over coordinatorpb's
// gRPC service descriptor, grounded on the teacher's
// internal/grpccoordinator/server.go.
package grpc

import (
	"context"
	"errors"

	"github.com/corevecdb/corevec/pkg/coordinator"
	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbcore"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

// Config is the Coordinator process's full bootstrap config: transport,
// catalog provider, and the options NewCoordinator needs to build the
// in-memory cache and its dependencies.
type Config struct {
	BindAddress string

	// CatalogProvider selects the Catalog Store dialect: "memory" uses an
	// in-memory sqlite database, "database" dials a real postgres instance
	// per the remaining fields.
	CatalogProvider string

	Username     string
	Password     string
	Address      string
	Port         int
	DBName       string
	MaxIdleConns int
	MaxOpenConns int

	// Testing suppresses the gRPC listener, for embedding in property tests.
	Testing bool
}

// Server wraps coordinator.ICoordinator with the gRPC service descriptor.
type Server struct {
	coordinatorpb.UnimplementedCoordinatorServer
	coordinator coordinator.ICoordinator
	grpcServer  grpcutils.GrpcServer
}

func New(config Config, coordinatorConfig coordinator.Config) (*Server, error) {
	var db *gorm.DB
	var err error

	switch config.CatalogProvider {
	case "memory", "":
		db, err = dbcore.ConfigInMemoryDatabaseForTesting()
	case "database":
		db, err = dbcore.Connect(dbcore.DBConfig{
			Provider:     "postgres",
			Username:     config.Username,
			Password:     config.Password,
			Address:      config.Address,
			Port:         config.Port,
			DBName:       config.DBName,
			MaxIdleConns: config.MaxIdleConns,
			MaxOpenConns: config.MaxOpenConns,
			SslMode:      "disable",
		})
		if err == nil {
			err = dbcore.CreateSchema(db)
		}
	default:
		return nil, errors.New("invalid catalog provider, only memory and database are supported")
	}
	if err != nil {
		return nil, err
	}

	return NewWithGrpcProvider(config, grpcutils.Default, db, coordinatorConfig)
}

func NewWithGrpcProvider(config Config, provider grpcutils.GrpcProvider, db *gorm.DB, coordinatorConfig coordinator.Config) (*Server, error) {
	ctx := context.Background()

	coord, err := coordinator.NewCoordinator(ctx, db, coordinatorConfig)
	if err != nil {
		return nil, err
	}
	if err := coord.Start(); err != nil {
		return nil, err
	}

	s := &Server{coordinator: coord}

	if !config.Testing {
		s.grpcServer, err = provider.StartGrpcServer("coordinator", &grpcutils.GrpcConfig{BindAddress: config.BindAddress}, func(registrar grpc.ServiceRegistrar) {
			coordinatorpb.RegisterCoordinatorServer(registrar, s)
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) Close() error {
	var err error
	if s.grpcServer != nil {
		err = s.grpcServer.Close()
	}
	if stopErr := s.coordinator.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}
