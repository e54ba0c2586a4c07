package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ganot/segboard/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "csv", cfg.Dataset.Driver)
	require.Equal(t, "rfm_data_cleaned.csv", cfg.Dataset.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SEGBOARD_SERVER_PORT", "9090")
	t.Setenv("SEGBOARD_DATASET_DRIVER", "sqlite")
	t.Setenv("SEGBOARD_DATASET_PATH", "/data/rfm.db")
	t.Setenv("SEGBOARD_DATASET_TABLE", "segments")
	t.Setenv("SEGBOARD_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Dataset.Driver)
	require.Equal(t, "/data/rfm.db", cfg.Dataset.Path)
	require.Equal(t, "segments", cfg.Dataset.Table)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 3000
dataset:
  driver: sqlite
  path: ./segments.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SEGBOARD_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Dataset.Driver)
	require.Equal(t, "./segments.db", cfg.Dataset.Path)
	// Untouched fields keep their defaults.
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("SEGBOARD_SERVER_PORT", "not-a-port")
	_, err := config.Load()
	require.Error(t, err)
}

func TestInvalidDriver(t *testing.T) {
	t.Setenv("SEGBOARD_DATASET_DRIVER", "postgres")
	_, err := config.Load()
	require.Error(t, err)
}

func TestInvalidTransportMode(t *testing.T) {
	t.Setenv("SEGBOARD_TRANSPORT_MODE", "grpc")
	_, err := config.Load()
	require.Error(t, err)
}
