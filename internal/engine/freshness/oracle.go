// Package freshness decides whether a cached entry is still current.
package freshness

import (
	"context"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs" //nolint:depguard // file helpers
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

// Oracle compares the recorded mtime of a cache entry with its dependencies.
type Oracle struct {
	store ports.Store
	fs    afero.Fs
}

// NewOracle creates an Oracle.
func NewOracle(store ports.Store, fsys afero.Fs) *Oracle {
	return &Oracle{store: store, fs: fsys}
}

// IsCurrent reports whether key has a recorded mtime that no dependency is
// strictly newer than. Missing file deps and unrecorded cache deps are ignored.
// It never writes.
func (o *Oracle) IsCurrent(ctx context.Context, key string, fileDeps, cacheDeps []string) (bool, error) {
	cached, ok, err := o.store.GetMtime(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	for _, path := range fileDeps {
		mtime, exists, err := fs.ModTime(o.fs, path)
		if err != nil {
			return false, zerr.With(err, "key", key)
		}
		if exists && mtime.After(cached) {
			return false, nil
		}
	}

	for _, dep := range cacheDeps {
		mtime, exists, err := o.store.GetMtime(ctx, dep)
		if err != nil {
			return false, zerr.With(err, "key", key)
		}
		if exists && mtime.After(cached) {
			return false, nil
		}
	}

	return true, nil
}
