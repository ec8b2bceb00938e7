// Package config is the thin YAML-or-env process configuration loader named
// in SPEC_FULL.md's ambient stack, resolving the options listed in spec §6.
// It extends the teacher's pkg/log/configuration getEnvWithDefault pattern
// with an optional YAML file underneath the env layer; cmd/*/cmd.go layers
// cobra flags on top of whatever this package resolves (flag > env > yaml >
// default).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type CatalogConfig struct {
	Provider     string `yaml:"provider"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Address      string `yaml:"address"`
	Port         int    `yaml:"port"`
	DBName       string `yaml:"dbname"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type AssignmentConfig struct {
	TenantNamespace string `yaml:"tenant_ns"`
	TopicNamespace  string `yaml:"topic_ns"`
}

type LogConfig struct {
	Port                int           `yaml:"port"`
	MinCompactionSize   int64         `yaml:"min_compaction_size"`
	PurgeTickInterval   time.Duration `yaml:"purge_tick_interval"`
	MetricsTickInterval time.Duration `yaml:"metrics_tick_interval"`
}

type LeaderConfig struct {
	LeaseName string `yaml:"lease_name"`
	Namespace string `yaml:"namespace"`
	PodName   string `yaml:"pod_name"`
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Config is the process-wide configuration tree for both the Coordinator
// and the Log Service; each binary only reads the sections it needs.
type Config struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Assignment AssignmentConfig `yaml:"assignment"`
	Log        LogConfig        `yaml:"log"`
	Leader     LeaderConfig     `yaml:"leader"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

func defaults() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Provider:     "memory",
			Address:      "postgres.corevec.svc.cluster.local",
			Port:         5432,
			DBName:       "corevec",
			MaxIdleConns: 10,
			MaxOpenConns: 100,
		},
		Assignment: AssignmentConfig{
			TenantNamespace: "default-tenant-ns",
			TopicNamespace:  "default-topic-ns",
		},
		Log: LogConfig{
			Port:                50052,
			PurgeTickInterval:   60 * time.Second,
			MetricsTickInterval: time.Second,
		},
		Leader: LeaderConfig{
			LeaseName: "corevec-leader",
		},
		Tracing: TracingConfig{
			Endpoint:    "jaeger:4317",
			ServiceName: "corevec",
		},
	}
}

// Load resolves Config from, in increasing precedence: built-in defaults,
// an optional YAML file at path (skipped entirely if path is empty or the
// file does not exist — this loader never treats a missing file as an
// error), then environment variables. Callers that also accept CLI flags
// should apply those last, after Load returns.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Catalog.Provider = getEnvWithDefault("CATALOG_PROVIDER", cfg.Catalog.Provider)
	cfg.Catalog.Username = getEnvWithDefault("CATALOG_USERNAME", cfg.Catalog.Username)
	cfg.Catalog.Password = getEnvWithDefault("CATALOG_PASSWORD", cfg.Catalog.Password)
	cfg.Catalog.Address = getEnvWithDefault("CATALOG_ADDRESS", cfg.Catalog.Address)
	cfg.Catalog.Port = getEnvIntWithDefault("CATALOG_PORT", cfg.Catalog.Port)
	cfg.Catalog.DBName = getEnvWithDefault("CATALOG_DBNAME", cfg.Catalog.DBName)
	cfg.Catalog.MaxIdleConns = getEnvIntWithDefault("CATALOG_MAX_IDLE_CONNS", cfg.Catalog.MaxIdleConns)
	cfg.Catalog.MaxOpenConns = getEnvIntWithDefault("CATALOG_MAX_OPEN_CONNS", cfg.Catalog.MaxOpenConns)

	cfg.Assignment.TenantNamespace = getEnvWithDefault("ASSIGNMENT_TENANT_NS", cfg.Assignment.TenantNamespace)
	cfg.Assignment.TopicNamespace = getEnvWithDefault("ASSIGNMENT_TOPIC_NS", cfg.Assignment.TopicNamespace)

	cfg.Log.Port = getEnvIntWithDefault("LOG_PORT", cfg.Log.Port)
	cfg.Log.MinCompactionSize = int64(getEnvIntWithDefault("MIN_COMPACTION_SIZE", int(cfg.Log.MinCompactionSize)))
	cfg.Log.PurgeTickInterval = getEnvDurationWithDefault("LOG_PURGE_TICK_INTERVAL", cfg.Log.PurgeTickInterval)
	cfg.Log.MetricsTickInterval = getEnvDurationWithDefault("LOG_METRICS_TICK_INTERVAL", cfg.Log.MetricsTickInterval)

	cfg.Leader.LeaseName = getEnvWithDefault("LEADER_LEASE_NAME", cfg.Leader.LeaseName)
	cfg.Leader.Namespace = getEnvWithDefault("POD_NAMESPACE", cfg.Leader.Namespace)
	cfg.Leader.PodName = getEnvWithDefault("POD_NAME", cfg.Leader.PodName)

	cfg.Tracing.Endpoint = getEnvWithDefault("OPTL_TRACING_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.ServiceName = getEnvWithDefault("OPTL_SERVICE_NAME", cfg.Tracing.ServiceName)
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
