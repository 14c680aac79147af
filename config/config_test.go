package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "srburger", cfg.System.Appid)
	assert.Equal(t, "development", cfg.Logger.Mode)
	assert.Equal(t, "/var/srburger/backoffice.db", cfg.Storage.Path)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "backoffice.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(`
system:
  workdir: /tmp/srburger
logger:
  mode: production
storage:
  path: /tmp/srburger/data.db
`), 0o644))

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/srburger", cfg.System.Workdir)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.Equal(t, "/tmp/srburger/data.db", cfg.Storage.Path)
	// untouched sections keep defaults
	assert.Equal(t, "srburger", cfg.System.Appid)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("SRBURGER_LOGGER_MODE", "production")
	t.Setenv("SRBURGER_LOGGER_FILE_ENABLE", "true")
	t.Setenv("SRBURGER_STORAGE_PATH", "/tmp/env.db")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.True(t, cfg.Logger.FileEnable)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
}

func TestLoadConfigDerivesStoragePathFromWorkdir(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "backoffice.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(`
system:
  workdir: /data/srburger
storage:
  path: ""
`), 0o644))

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, "/data/srburger/backoffice.db", cfg.Storage.Path)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(cfile, []byte("system: ["), 0o644))

	_, err := LoadConfig(cfile)
	assert.Error(t, err)
}
