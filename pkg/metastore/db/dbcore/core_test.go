package dbcore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPgContainer boots a throwaway Postgres instance and returns its
// connection parameters, grounded on the teacher's
// go/shared/libs/test_utils.go StartPgContainer.
func startPgContainer(t *testing.T, ctx context.Context) DBConfig {
	t.Helper()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		postgres.WithDatabase("corevec"),
		postgres.WithUsername("corevec"),
		postgres.WithPassword("corevec"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	var ports nat.PortMap
	ports, err = container.Ports(ctx)
	require.NoError(t, err)
	bindings, ok := ports["5432/tcp"]
	require.True(t, ok, "postgres container did not publish 5432/tcp")
	port := bindings[0].HostPort

	return DBConfig{
		Provider:     "postgres",
		Username:     "corevec",
		Password:     "corevec",
		Address:      "localhost",
		Port:         atoiMust(t, port),
		DBName:       "corevec",
		MaxIdleConns: 10,
		MaxOpenConns: 100,
		SslMode:      "disable",
	}
}

func atoiMust(t *testing.T, s string) int {
	t.Helper()
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	require.NoError(t, err)
	return n
}

func TestConnect_PostgresContainerMigratesSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers-backed test in -short mode")
	}
	ctx := context.Background()
	cfg := startPgContainer(t, ctx)

	db, err := Connect(cfg)
	require.NoError(t, err)
	SetGlobalDB(db)

	require.NoError(t, CreateSchema(db))

	defaultDatabaseID := CreateDefaultTenantAndDatabase(db)
	require.NotEmpty(t, defaultDatabaseID)

	// CreateDefaultTenantAndDatabase is idempotent: a second call against
	// the same connection must return the same database id, not create a
	// duplicate row.
	again := CreateDefaultTenantAndDatabase(db)
	require.Equal(t, defaultDatabaseID, again)
}
