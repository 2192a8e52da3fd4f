package stats

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/config"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/adapters/store"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot generator Graft node.
const NodeID graft.ID = "adapter.stats"

func init() {
	graft.Register(graft.Node[ports.SnapshotGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID, store.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotGenerator, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, s, domain.NewStatsLayout(cfg.Workdir)), nil
		},
	})
}
