package main

import (
	"context"
	"io"
	"os"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/corevecdb/corevec/cmd/flag"
	"github.com/corevecdb/corevec/internal/otel"
	"github.com/corevecdb/corevec/internal/utils"
	"github.com/corevecdb/corevec/pkg/assignment"
	"github.com/corevecdb/corevec/pkg/config"
	"github.com/corevecdb/corevec/pkg/coordinator"
	coordinatorgrpc "github.com/corevecdb/corevec/pkg/coordinator/grpc"
	"github.com/corevecdb/corevec/pkg/notification"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	conf = coordinatorgrpc.Config{}

	configFile string

	assignmentPolicyName string
	tenantNS             string
	topicNS              string

	notifierProvider  string
	pulsarURL         string
	notificationTopic string

	tracingEndpoint string
	tracingService  string

	Cmd = &cobra.Command{
		Use:   "coordinator",
		Short: "Start the corevec Coordinator (catalog/SysDB) service",
		Long:  `Start the corevec Coordinator: tenants, databases, collections, segments`,
		Run:   exec,
	}
)

func init() {
	Cmd.Flags().StringVar(&configFile, "config-file", "", "Optional YAML config file (flag > env > yaml > default)")
	flag.GRPCAddr(Cmd, &conf.BindAddress)

	Cmd.Flags().StringVar(&conf.CatalogProvider, "catalog-provider", "memory", "Catalog store provider (memory|database)")
	Cmd.Flags().StringVar(&conf.Username, "username", "corevec", "Catalog db username")
	Cmd.Flags().StringVar(&conf.Password, "password", "corevec", "Catalog db password")
	Cmd.Flags().StringVar(&conf.Address, "db-address", "postgres", "Catalog db address")
	Cmd.Flags().IntVar(&conf.Port, "db-port", 5432, "Catalog db port")
	Cmd.Flags().StringVar(&conf.DBName, "db-name", "corevec", "Catalog db name")
	Cmd.Flags().IntVar(&conf.MaxIdleConns, "max-idle-conns", 10, "Catalog max idle connections")
	Cmd.Flags().IntVar(&conf.MaxOpenConns, "max-open-conns", 100, "Catalog max open connections")

	Cmd.Flags().StringVar(&assignmentPolicyName, "assignment-policy", "rendezvous", "Collection assignment policy (simple|rendezvous)")
	Cmd.Flags().StringVar(&tenantNS, "assignment-tenant-ns", "default-tenant-ns", "Assignment tenant namespace")
	Cmd.Flags().StringVar(&topicNS, "assignment-topic-ns", "default-topic-ns", "Assignment topic namespace")

	Cmd.Flags().StringVar(&notifierProvider, "notifier-provider", "memory", "Notifier provider (memory|pulsar)")
	Cmd.Flags().StringVar(&pulsarURL, "pulsar-url", "pulsar://localhost:6650", "Pulsar broker url")
	Cmd.Flags().StringVar(&notificationTopic, "notification-topic", "corevec-notification", "Pulsar notification topic")

	Cmd.Flags().StringVar(&tracingEndpoint, "tracing-endpoint", "jaeger:4317", "OTLP tracing collector endpoint")
	Cmd.Flags().StringVar(&tracingService, "tracing-service-name", "corevec-coordinator", "OTel service name")
}

// processCloser aggregates every resource exec starts so RunProcess's single
// io.Closer can tear all of them down in order on shutdown.
type processCloser struct {
	server          io.Closer
	pulsarClient    pulsar.Client
	shutdownTracing func(context.Context) error
}

func (c *processCloser) Close() error {
	err := c.server.Close()
	if c.pulsarClient != nil {
		c.pulsarClient.Close()
	}
	if c.shutdownTracing != nil {
		if shutdownErr := c.shutdownTracing(context.Background()); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}
	return err
}

func createPulsarNotifier(pulsarURL, notificationTopic string) (*notification.PulsarNotifier, pulsar.Client, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, nil, err
	}
	producer, err := client.CreateProducer(pulsar.ProducerOptions{Topic: notificationTopic})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return notification.NewPulsarNotifier(producer), client, nil
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
	set("catalog-provider", &conf.CatalogProvider, cfg.Catalog.Provider)
	set("username", &conf.Username, cfg.Catalog.Username)
	set("password", &conf.Password, cfg.Catalog.Password)
	set("db-address", &conf.Address, cfg.Catalog.Address)
	setInt("db-port", &conf.Port, cfg.Catalog.Port)
	set("db-name", &conf.DBName, cfg.Catalog.DBName)
	setInt("max-idle-conns", &conf.MaxIdleConns, cfg.Catalog.MaxIdleConns)
	setInt("max-open-conns", &conf.MaxOpenConns, cfg.Catalog.MaxOpenConns)
	set("assignment-tenant-ns", &tenantNS, cfg.Assignment.TenantNamespace)
	set("assignment-topic-ns", &topicNS, cfg.Assignment.TopicNamespace)
	set("tracing-endpoint", &tracingEndpoint, cfg.Tracing.Endpoint)
	set("tracing-service-name", &tracingService, cfg.Tracing.ServiceName)
	return nil
}

func exec(cmd *cobra.Command, _ []string) {
	if err := applyConfigDefaults(cmd); err != nil {
		log.Error("failed to load config file, continuing with flag/env values", zap.Error(err))
	}

	ctx := context.Background()
	shutdownTracing, err := otel.InitTracing(ctx, otel.TracingConfig{Service: tracingService, Endpoint: tracingEndpoint})
	if err != nil {
		log.Error("failed to init tracing, continuing without it", zap.Error(err))
		shutdownTracing = nil
	}

	var assignmentPolicy assignment.CollectionAssignmentPolicy
	switch assignmentPolicyName {
	case "simple":
		assignmentPolicy = assignment.NewSimplePolicy(tenantNS, topicNS)
	default:
		assignmentPolicy = assignment.NewRendezvousPolicy(tenantNS, topicNS, "log-partition", 64)
	}

	var notifier notification.Notifier
	var pulsarClient pulsar.Client
	if notifierProvider == "pulsar" {
		pulsarNotifier, client, err := createPulsarNotifier(pulsarURL, notificationTopic)
		if err != nil {
			log.Error("failed to create pulsar notifier", zap.Error(err))
			os.Exit(1)
		}
		notifier = pulsarNotifier
		pulsarClient = client
	} else {
		notifier = notification.NewMemoryNotifier()
	}

	coordinatorConfig := coordinator.Config{
		AssignmentPolicy: assignmentPolicy,
		Notifier:         notifier,
	}

	utils.RunProcess(func() (io.Closer, error) {
		server, err := coordinatorgrpc.New(conf, coordinatorConfig)
		if err != nil {
			return nil, err
		}
		return &processCloser{server: server, pulsarClient: pulsarClient, shutdownTracing: shutdownTracing}, nil
	})
}
