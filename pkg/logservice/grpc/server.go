package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/grpcutils"
	"github.com/corevecdb/corevec/pkg/logservice"
	"github.com/corevecdb/corevec/pkg/logservice/db/dao"
	"github.com/corevecdb/corevec/pkg/logservice/db/dbcore"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"github.com/corevecdb/corevec/pkg/proto/logservicepb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Config struct {
	BindAddress string

	DatabaseProvider string
	Username         string
	Password         string
	Address          string
	Port             int
	DBName           string
	MaxIdleConns     int
	MaxOpenConns     int

	// CoordinatorAddress is where the Log Service dials the Coordinator to
	// mirror compaction advances (Open Question (a)). Empty disables the
	// mirror, which is only acceptable in tests.
	CoordinatorAddress string

	Testing bool
}

func New(config Config) (*Server, error) {
	db, err := dbcore.Connect(dbcore.DBConfig{
		Provider:     config.DatabaseProvider,
		Username:     config.Username,
		Password:     config.Password,
		Address:      config.Address,
		Port:         config.Port,
		DBName:       config.DBName,
		MaxIdleConns: config.MaxIdleConns,
		MaxOpenConns: config.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}
	if err := dbcore.CreateSchema(db); err != nil {
		return nil, err
	}

	recordLogDb := dao.NewRecordLogDb(db)

	var catalog *CoordinatorOffsetSetter
	if config.CoordinatorAddress != "" {
		conn, err := grpc.NewClient(config.CoordinatorAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, err
		}
		catalog = NewCoordinatorOffsetSetter(coordinatorpb.NewCoordinatorClient(conn))
	}

	ctx := context.Background()
	var logService logservice.ILogService
	if catalog != nil {
		logService = logservice.NewLogService(ctx, recordLogDb, catalog)
	} else {
		logService = logservice.NewLogService(ctx, recordLogDb, nil)
	}
	if err := logService.Start(); err != nil {
		return nil, err
	}

	s := &Server{logService: logService}
	if !config.Testing {
		s.grpcServer, err = grpcutils.Default.StartGrpcServer("logservice", &grpcutils.GrpcConfig{BindAddress: config.BindAddress}, func(registrar grpc.ServiceRegistrar) {
			logservicepb.RegisterLogServiceServer(registrar, s)
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
