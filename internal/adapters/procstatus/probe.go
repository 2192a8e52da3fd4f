// Package procstatus reads the memory usage of the running process from /proc.
package procstatus

import (
	"os"

	"github.com/prometheus/procfs"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

// Probe is a ports.MemoryProbe for one process.
type Probe struct {
	mount string
	pid   int
}

var _ ports.MemoryProbe = (*Probe)(nil)

// New returns a probe for the current process.
func New() *Probe {
	return NewWithMount(procfs.DefaultMountPoint, os.Getpid())
}

// NewWithMount returns a probe for pid under a proc file system mounted at mount.
func NewWithMount(mount string, pid int) *Probe {
	return &Probe{mount: mount, pid: pid}
}

// PeakMemory returns VmPeak in bytes.
func (p *Probe) PeakMemory() (uint64, error) {
	fs, err := procfs.NewFS(p.mount)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", p.mount)
	}
	proc, err := fs.Proc(p.pid)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "pid", p.pid)
	}
	status, err := proc.NewStatus()
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "pid", p.pid)
	}
	return status.VmPeak, nil
}
