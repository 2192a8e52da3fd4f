// Package fs provides the file system used by the adapters and engines.
package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteFile writes data to path, creating parent directories, and reports the
// number of bytes written.
func WriteFile(fsys afero.Fs, path string, data []byte) (int, error) {
	if err := fsys.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	n, err := f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return n, nil
}

// WriteString is WriteFile for text.
func WriteString(fsys afero.Fs, path, content string) error {
	_, err := WriteFile(fsys, path, []byte(content))
	return err
}

// ReadFile reads path, wrapping failures with the path.
func ReadFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Exists reports whether path exists.
func Exists(fsys afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return ok, nil
}

// ModTime returns the modification time of path. The boolean is false when
// the path does not exist.
func ModTime(fsys afero.Fs, path string) (time.Time, bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.ModTime(), true, nil
}
