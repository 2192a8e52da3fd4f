package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/metrics"
	"go.trai.ch/gimmisn/internal/core/domain"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg, "")

	r.ObserveAttempt(domain.ArtifactOSMStreets, "transport_error")
	r.ObserveAttempt(domain.ArtifactOSMStreets, "success")
	r.ObserveStep(domain.ArtifactRefStreets, "skipped")
	r.ObserveCacheLookup(domain.FamilyMissingHousenumbers, true)
	r.ObserveCacheLookup(domain.FamilyMissingHousenumbers, false)
	r.ObserveCacheLookup(domain.FamilyMissingHousenumbers, false)

	expected := `
# HELP gimmisn_cron_cache_lookups_total Cached artifact lookups by family and result.
# TYPE gimmisn_cron_cache_lookups_total counter
gimmisn_cron_cache_lookups_total{family="missing-housenumbers",result="hit"} 1
gimmisn_cron_cache_lookups_total{family="missing-housenumbers",result="miss"} 2
# HELP gimmisn_cron_fetch_attempts_total Query service attempts by artifact kind and outcome.
# TYPE gimmisn_cron_fetch_attempts_total counter
gimmisn_cron_fetch_attempts_total{kind="osm-streets",outcome="success"} 1
gimmisn_cron_fetch_attempts_total{kind="osm-streets",outcome="transport_error"} 1
# HELP gimmisn_cron_steps_total Per-relation artifact steps by kind and outcome.
# TYPE gimmisn_cron_steps_total counter
gimmisn_cron_steps_total{kind="ref-streets",outcome="skipped"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gimmisn_cron_cache_lookups_total", "gimmisn_cron_fetch_attempts_total", "gimmisn_cron_steps_total"))
}

func TestRecorder_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg, "")

	r.SetDailyCounts(115, 3)
	r.ObserveRun(90*time.Second, 2048)

	expected := `
# HELP gimmisn_cron_daily_housenumbers Distinct house numbers in today's country-wide extract.
# TYPE gimmisn_cron_daily_housenumbers gauge
gimmisn_cron_daily_housenumbers 115
# HELP gimmisn_cron_daily_users Distinct editors in today's country-wide extract.
# TYPE gimmisn_cron_daily_users gauge
gimmisn_cron_daily_users 3
# HELP gimmisn_cron_run_duration_seconds Duration of the last run.
# TYPE gimmisn_cron_run_duration_seconds gauge
gimmisn_cron_run_duration_seconds 90
# HELP gimmisn_cron_run_peak_memory_bytes Peak virtual memory of the last run.
# TYPE gimmisn_cron_run_peak_memory_bytes gauge
gimmisn_cron_run_peak_memory_bytes 2048
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gimmisn_cron_daily_housenumbers", "gimmisn_cron_daily_users",
		"gimmisn_cron_run_duration_seconds", "gimmisn_cron_run_peak_memory_bytes"))
}

func TestRecorder_FlushTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cron.prom")
	r := metrics.NewRecorder(nil, path)
	r.ObserveStep(domain.ArtifactMissingStreets, "done")

	require.NoError(t, r.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gimmisn_cron_steps_total{kind="missing-streets",outcome="done"} 1`)
}

func TestRecorder_FlushDisabled(t *testing.T) {
	assert.NoError(t, metrics.NewRecorder(nil, "").Flush())
}

func TestRecorder_FlushError(t *testing.T) {
	r := metrics.NewRecorder(nil, filepath.Join(t.TempDir(), "absent", "cron.prom"))

	err := r.Flush()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileWriteFailed.Error())
}
