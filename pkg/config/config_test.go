package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFileOrEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Catalog.Provider)
	require.Equal(t, 60*time.Second, cfg.Log.PurgeTickInterval)
}

func TestLoad_YamlOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corevec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  provider: relational
  dbname: corevec_prod
log:
  purge_tick_interval: 30s
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "relational", cfg.Catalog.Provider)
	require.Equal(t, "corevec_prod", cfg.Catalog.DBName)
	require.Equal(t, 30*time.Second, cfg.Log.PurgeTickInterval)
	// fields untouched by the yaml file keep their defaults
	require.Equal(t, 100, cfg.Catalog.MaxOpenConns)
}

func TestLoad_EnvOverridesYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corevec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  provider: relational\n"), 0o644))

	t.Setenv("CATALOG_PROVIDER", "memory")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Catalog.Provider)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Catalog.Provider)
}
