package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/config"
	"go.trai.ch/gimmisn/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gimmisn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), *cfg)
	assert.False(t, cfg.JSONLogs())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
workdir: /srv/osm/workdir
overpass:
  url: http://localhost:12345
  timeout: 30s
reference:
  housenumbers:
    - a.tsv
cron:
  update_inactive: true
log:
  format: json
`)

	cfg, err := config.NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/osm/workdir", cfg.Workdir)
	assert.Equal(t, "data", cfg.Datadir)
	assert.Equal(t, "http://localhost:12345", cfg.Overpass.URL)
	assert.Equal(t, 30*time.Second, cfg.Overpass.Timeout)
	assert.Equal(t, []string{"a.tsv"}, cfg.Reference.Housenumbers)
	assert.True(t, cfg.Cron.UpdateInactive)
	assert.True(t, cfg.JSONLogs())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "datadir: /from/file\n")
	t.Setenv("GIMMISN_DATADIR", "/from/env")
	t.Setenv("GIMMISN_METRICS__TEXTFILE", "/var/lib/node_exporter/cron.prom")

	cfg, err := config.NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Datadir)
	assert.Equal(t, "/var/lib/node_exporter/cron.prom", cfg.Metrics.Textfile)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "workdir: [unterminated\n")

	_, err := config.NewLoader(path).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestFromEnv(t *testing.T) {
	path := writeConfig(t, "database: /tmp/state.db\n")
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.FromEnv().Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state.db", cfg.Database)
}
