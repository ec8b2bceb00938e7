package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/corevecdb/corevec/cmd/flag"
	"github.com/corevecdb/corevec/internal/otel"
	"github.com/corevecdb/corevec/internal/utils"
	"github.com/corevecdb/corevec/pkg/config"
	"github.com/corevecdb/corevec/pkg/leader"
	"github.com/corevecdb/corevec/pkg/logservice"
	logservicegrpc "github.com/corevecdb/corevec/pkg/logservice/grpc"
	"github.com/corevecdb/corevec/pkg/maintenance"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	conf = logservicegrpc.Config{}

	configFile string

	purgeTickIntervalS   int
	metricsTickIntervalS int

	leaderLeaseName string
	useMemoryLease  bool

	tracingEndpoint string
	tracingService  string

	Cmd = &cobra.Command{
		Use:   "logservice",
		Short: "Start the corevec Log Service",
		Long:  `Start the corevec Log Service: PushLogs/PullLogs/GetAllCollectionInfoToCompact/UpdateCollectionLogOffset`,
		Run:   exec,
	}
)

func init() {
	Cmd.Flags().StringVar(&configFile, "config-file", "", "Optional YAML config file (flag > env > yaml > default)")
	flag.GRPCAddr(Cmd, &conf.BindAddress)

	Cmd.Flags().StringVar(&conf.DatabaseProvider, "db-provider", "postgres", "Log store db provider")
	Cmd.Flags().StringVar(&conf.Address, "db-host", "postgres", "Log store db host")
	Cmd.Flags().IntVar(&conf.Port, "db-port", 5432, "Log store db port")
	Cmd.Flags().StringVar(&conf.Username, "db-user", "corevec", "Log store db user")
	Cmd.Flags().StringVar(&conf.Password, "db-password", "corevec", "Log store db password")
	Cmd.Flags().StringVar(&conf.DBName, "db-name", "corevec_log", "Log store db name")
	Cmd.Flags().IntVar(&conf.MaxIdleConns, "max-idle-conns", 10, "Log store max idle connections")
	Cmd.Flags().IntVar(&conf.MaxOpenConns, "max-open-conns", 100, "Log store max open connections")
	Cmd.Flags().StringVar(&conf.CoordinatorAddress, "coordinator-address", "", "Coordinator gRPC address, for mirroring compaction offsets into the catalog")

	Cmd.Flags().IntVar(&purgeTickIntervalS, "purge-tick-interval-s", 60, "Purger tick interval, seconds")
	Cmd.Flags().IntVar(&metricsTickIntervalS, "metrics-tick-interval-s", 1, "Metrics tick interval, seconds")

	Cmd.Flags().StringVar(&leaderLeaseName, "leader-lease-name", "corevec-log-leader", "Distributed lease name for the Purger/Metrics loops")
	Cmd.Flags().BoolVar(&useMemoryLease, "leader-lease-in-memory", false, "Use an in-process lease instead of a Kubernetes one (single-replica deployments)")

	Cmd.Flags().StringVar(&tracingEndpoint, "tracing-endpoint", "jaeger:4317", "OTLP tracing collector endpoint")
	Cmd.Flags().StringVar(&tracingService, "tracing-service-name", "corevec-logservice", "OTel service name")
}

type processCloser struct {
	server            io.Closer
	cancelMaintenance context.CancelFunc
	shutdownTracing   func(context.Context) error
	shutdownMetrics   func(context.Context) error
}

func (c *processCloser) Close() error {
	if c.cancelMaintenance != nil {
		c.cancelMaintenance()
	}
	err := c.server.Close()
	if c.shutdownTracing != nil {
		if shutdownErr := c.shutdownTracing(context.Background()); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}
	if c.shutdownMetrics != nil {
		if shutdownErr := c.shutdownMetrics(context.Background()); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}
	return err
}

func buildLease() leader.Lease {
	if useMemoryLease {
		return leader.NewMemoryLease()
	}
	k8sLease, err := leader.NewK8sLease(leader.K8sLeaseConfig{
		Namespace: os.Getenv("POD_NAMESPACE"),
		PodName:   os.Getenv("POD_NAME"),
	})
	if err != nil {
		log.Error("failed to build kubernetes lease, falling back to in-memory", zap.Error(err))
		return leader.NewMemoryLease()
	}
	return k8sLease
}

// applyConfigDefaults layers config.Load's result (defaults < yaml < env)
// under whatever cobra flags the operator actually passed: a flag the user
// set on the command line always wins, matching SPEC_FULL.md's ambient
// config precedence of flag > env > yaml > default.
func applyConfigDefaults(cmd *cobra.Command) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	set := func(name string, value *string, configValue string) {
		if !cmd.Flags().Changed(name) {
			*value = configValue
		}
	}
	setInt := func(name string, value *int, configValue int) {
		if !cmd.Flags().Changed(name) {
			*value = configValue
		}
	}
	setDuration := func(name string, value *int, configValue time.Duration) {
		if !cmd.Flags().Changed(name) {
			*value = int(configValue.Seconds())
		}
	}
	setInt("db-port", &conf.Port, cfg.Catalog.Port)
	setInt("max-idle-conns", &conf.MaxIdleConns, cfg.Catalog.MaxIdleConns)
	setInt("max-open-conns", &conf.MaxOpenConns, cfg.Catalog.MaxOpenConns)
	setDuration("purge-tick-interval-s", &purgeTickIntervalS, cfg.Log.PurgeTickInterval)
	setDuration("metrics-tick-interval-s", &metricsTickIntervalS, cfg.Log.MetricsTickInterval)
	set("leader-lease-name", &leaderLeaseName, cfg.Leader.LeaseName)
	set("tracing-endpoint", &tracingEndpoint, cfg.Tracing.Endpoint)
	set("tracing-service-name", &tracingService, cfg.Tracing.ServiceName)
	return nil
}

func exec(cmd *cobra.Command, _ []string) {
	if err := applyConfigDefaults(cmd); err != nil {
		log.Error("failed to load config file, continuing with flag/env values", zap.Error(err))
	}

	ctx, cancelMaintenance := context.WithCancel(context.Background())

	shutdownTracing, err := otel.InitTracing(ctx, otel.TracingConfig{Service: tracingService, Endpoint: tracingEndpoint})
	if err != nil {
		log.Error("failed to init tracing, continuing without it", zap.Error(err))
		shutdownTracing = nil
	}
	meter, shutdownMetrics, err := otel.InitMetrics(ctx, otel.MetricsConfig{Service: tracingService, Endpoint: tracingEndpoint})
	if err != nil {
		log.Error("failed to init metrics, continuing without it", zap.Error(err))
		shutdownMetrics = nil
	}

	server, err := logservicegrpc.New(conf)
	if err != nil {
		log.Error("failed to start log service", zap.Error(err))
		os.Exit(1)
	}

	lease := buildLease()
	logService := server.LogService()

	purger := maintenance.NewPurger(logService, lease, maintenance.PurgerConfig{
		LeaseName:    leaderLeaseName + "-purger",
		LeaseTTL:     15 * time.Second,
		TickInterval: time.Duration(purgeTickIntervalS) * time.Second,
	})
	go func() {
		if err := purger.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("purger loop exited", zap.Error(err))
		}
	}()

	// The lag-gauge Metrics loop needs a working meter; skip it (but keep
	// purging) when the OTLP collector is unreachable at startup.
	if meter != nil {
		metricsLoop, err := maintenance.NewMetrics(logService, lease, maintenance.MetricsConfig{
			LeaseName:    leaderLeaseName + "-metrics",
			LeaseTTL:     15 * time.Second,
			TickInterval: time.Duration(metricsTickIntervalS) * time.Second,
		}, meter)
		if err != nil {
			log.Error("failed to build metrics loop", zap.Error(err))
		} else {
			go func() {
				if err := metricsLoop.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error("metrics loop exited", zap.Error(err))
				}
			}()
		}
	}

	utils.RunProcess(func() (io.Closer, error) {
		return &processCloser{
			server:            server,
			cancelMaintenance: cancelMaintenance,
			shutdownTracing:   shutdownTracing,
			shutdownMetrics:   shutdownMetrics,
		}, nil
	})
}
