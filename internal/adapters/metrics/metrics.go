// Package metrics records the nightly run as Prometheus metrics and writes
// them to a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "gimmisn_cron"

// Recorder is a ports.Metrics backed by a dedicated Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry
	textfile string

	attempts     *prometheus.CounterVec
	steps        *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	housenumbers prometheus.Gauge
	users        prometheus.Gauge
	duration     prometheus.Gauge
	peakMemory   prometheus.Gauge
	lastRun      prometheus.Gauge
}

var _ ports.Metrics = (*Recorder)(nil)

// NewRecorder creates a recorder. Flush writes to textfile unless it is empty.
// A nil registry gets a fresh one.
func NewRecorder(reg *prometheus.Registry, textfile string) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{
		registry: reg,
		textfile: textfile,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Query service attempts by artifact kind and outcome.",
		}, []string{"kind", "outcome"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Per-relation artifact steps by kind and outcome.",
		}, []string{"kind", "outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cached artifact lookups by family and result.",
		}, []string{"family", "result"}),
		housenumbers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_housenumbers",
			Help:      "Distinct house numbers in today's country-wide extract.",
		}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_users",
			Help:      "Distinct editors in today's country-wide extract.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last run.",
		}),
		peakMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_peak_memory_bytes",
			Help:      "Peak virtual memory of the last run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}

	reg.MustRegister(r.attempts, r.steps, r.cacheLookups, r.housenumbers, r.users, r.duration, r.peakMemory, r.lastRun)
	return r
}

// ObserveAttempt records one fetch attempt.
func (r *Recorder) ObserveAttempt(kind domain.ArtifactKind, outcome string) {
	r.attempts.WithLabelValues(string(kind), outcome).Inc()
}

// ObserveStep records one artifact step.
func (r *Recorder) ObserveStep(kind domain.ArtifactKind, outcome string) {
	r.steps.WithLabelValues(string(kind), outcome).Inc()
}

// ObserveCacheLookup records a cached artifact lookup.
func (r *Recorder) ObserveCacheLookup(family domain.CacheFamily, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(string(family), result).Inc()
}

// SetDailyCounts records the totals of the daily snapshot.
func (r *Recorder) SetDailyCounts(housenumbers, users int) {
	r.housenumbers.Set(float64(housenumbers))
	r.users.Set(float64(users))
}

// ObserveRun records the duration and peak memory of a finished run.
func (r *Recorder) ObserveRun(duration time.Duration, peakMemory uint64) {
	r.duration.Set(duration.Seconds())
	r.peakMemory.Set(float64(peakMemory))
	r.lastRun.SetToCurrentTime()
}

// Flush writes the registry to the textfile.
func (r *Recorder) Flush() error {
	if r.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(r.textfile, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", r.textfile)
	}
	return nil
}
