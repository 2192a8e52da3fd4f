// Package health reports the overall result of a nightly run.
package health

import (
	"sync"

	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrRunUnhealthy is returned when a run recorded failures.
var ErrRunUnhealthy = zerr.New("run finished with failures")

// Unit collects failures worth reporting through the exit code. Per-relation
// failures are logged and skipped, so an empty unit is healthy.
type Unit struct {
	mu       sync.Mutex
	failures []string
}

var _ ports.Unit = (*Unit)(nil)

// New returns a healthy unit.
func New() *Unit {
	return &Unit{}
}

// Fail records a failure.
func (u *Unit) Fail(reason string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failures = append(u.failures, reason)
}

// MakeError returns nil for a healthy run.
func (u *Unit) MakeError() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.failures) == 0 {
		return nil
	}
	return zerr.With(ErrRunUnhealthy, "failures", len(u.failures))
}
