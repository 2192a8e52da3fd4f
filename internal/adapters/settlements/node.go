package settlements

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/config"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the settlements Graft node.
const NodeID graft.ID = "adapter.settlements"

func init() {
	graft.Register(graft.Node[ports.Settlements]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.Settlements, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, cfg.Reference.Citycounts), nil
		},
	})
}
