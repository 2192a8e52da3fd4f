package fs_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/domain"
)

func TestWriteFile_CreatesParentsAndReportsBytes(t *testing.T) {
	fsys := afero.NewMemMapFs()

	n, err := fs.WriteFile(fsys, "/workdir/stats/2020-05-10.csv", []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := fs.ReadFile(fsys, "/workdir/stats/2020-05-10.csv")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestWriteFile_EmptyPayload(t *testing.T) {
	fsys := afero.NewMemMapFs()

	n, err := fs.WriteFile(fsys, "/out.csv", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	ok, err := fs.Exists(fsys, "/out.csv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWriteFile_ReadOnly(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := fs.WriteFile(fsys, "/out.csv", []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileWriteFailed.Error())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := fs.ReadFile(afero.NewMemMapFs(), "/absent")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
}

func TestModTime(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, ok, err := fs.ModTime(fsys, "/absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.WriteString(fsys, "/present", "x"))
	mtime := time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes("/present", mtime, mtime))

	got, ok, err := fs.ModTime(fsys, "/present")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mtime.Equal(got))
}
