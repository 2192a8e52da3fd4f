package ports

import (
	"time"

	"go.trai.ch/gimmisn/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=run.go -destination=mocks/mock_run.go -package=mocks

// Metrics records the outcome of refresh work.
type Metrics interface {
	// ObserveAttempt records one fetch attempt and its outcome.
	ObserveAttempt(kind domain.ArtifactKind, outcome string)
	// ObserveStep records the outcome of one artifact step of a relation.
	ObserveStep(kind domain.ArtifactKind, outcome string)
	// ObserveCacheLookup records a cached artifact lookup.
	ObserveCacheLookup(family domain.CacheFamily, hit bool)
	// SetDailyCounts records the totals of the daily snapshot.
	SetDailyCounts(housenumbers, users int)
	// ObserveRun records the duration and peak memory of a finished run.
	ObserveRun(duration time.Duration, peakMemory uint64)
	// Flush persists the collected metrics, if configured.
	Flush() error
}

// MemoryProbe reads the memory usage of the current process.
type MemoryProbe interface {
	// PeakMemory returns the peak virtual memory size in bytes.
	PeakMemory() (uint64, error)
}

// Unit reports the overall health of a run.
type Unit interface {
	// Fail marks the run as failed without interrupting it.
	Fail(reason string)
	// MakeError returns a non-nil error if the run should be reported as failed.
	MakeError() error
}
