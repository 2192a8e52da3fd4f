package freshness_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports/mocks"
	"go.trai.ch/gimmisn/internal/engine/freshness"
	"go.uber.org/mock/gomock"
)

const key = "missing-housenumbers-cache/budafok"

var (
	cachedAt = time.Date(2020, 5, 10, 12, 0, 0, 0, time.UTC)
	earlier  = cachedAt.Add(-time.Hour)
	later    = cachedAt.Add(time.Hour)
)

func writeWithMtime(t *testing.T, fsys afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("x"), 0o644))
	require.NoError(t, fsys.Chtimes(path, mtime, mtime))
}

func TestIsCurrent_NoRecordedMtime(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetMtime(gomock.Any(), key).Return(time.Time{}, false, nil)

	ok, err := freshness.NewOracle(store, afero.NewMemMapFs()).IsCurrent(context.Background(), key, []string{"/data/relation-budafok.yaml"}, []string{"streets/budafok"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsCurrent(t *testing.T) {
	tests := []struct {
		name      string
		fileMtime *time.Time
		depMtime  *time.Time
		want      bool
	}{
		{name: "no deps present", want: true},
		{name: "older deps", fileMtime: &earlier, depMtime: &earlier, want: true},
		{name: "equal mtimes are current", fileMtime: &cachedAt, depMtime: &cachedAt, want: true},
		{name: "newer file dep", fileMtime: &later, depMtime: &earlier, want: false},
		{name: "newer cache dep", fileMtime: &earlier, depMtime: &later, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			fsys := afero.NewMemMapFs()

			store.EXPECT().GetMtime(gomock.Any(), key).Return(cachedAt, true, nil)
			if tt.fileMtime != nil {
				writeWithMtime(t, fsys, "/data/relation-budafok.yaml", *tt.fileMtime)
			}
			if tt.depMtime != nil {
				store.EXPECT().GetMtime(gomock.Any(), "streets/budafok").Return(*tt.depMtime, true, nil).MaxTimes(1)
			} else {
				store.EXPECT().GetMtime(gomock.Any(), "streets/budafok").Return(time.Time{}, false, nil).MaxTimes(1)
			}

			ok, err := freshness.NewOracle(store, fsys).IsCurrent(context.Background(), key,
				[]string{"/data/relation-budafok.yaml"}, []string{"streets/budafok"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsCurrent_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetMtime(gomock.Any(), key).Return(cachedAt, true, nil)
	store.EXPECT().GetMtime(gomock.Any(), "housenumbers/budafok").Return(time.Time{}, false, domain.ErrStoreReadFailed)

	_, err := freshness.NewOracle(store, afero.NewMemMapFs()).IsCurrent(context.Background(), key, nil, []string{"housenumbers/budafok"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestIsCurrent_StatError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetMtime(gomock.Any(), key).Return(cachedAt, true, nil)

	fsys := &failingStatFs{Fs: afero.NewMemMapFs()}
	_, err := freshness.NewOracle(store, fsys).IsCurrent(context.Background(), key, []string{"/data/relation-budafok.yaml"}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
}

type failingStatFs struct {
	afero.Fs
}

func (f *failingStatFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: syscall.EACCES}
}
