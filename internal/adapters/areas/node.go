package areas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/config"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/ports"
)

const (
	// RelationsNodeID is the unique identifier for the relation provider Graft node.
	RelationsNodeID graft.ID = "adapter.areas.relations"
	// NodeID is the unique identifier for the relation worker Graft node.
	NodeID graft.ID = "adapter.areas"
)

func init() {
	graft.Register(graft.Node[ports.RelationProvider]{
		ID:        RelationsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.RelationProvider, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewRelations(fsys, cfg.Datadir, cfg.Workdir), nil
		},
	})

	graft.Register(graft.Node[ports.Areas]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.Areas, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, cfg.Datadir, References{
				Streets:      cfg.Reference.Streets,
				Housenumbers: cfg.Reference.Housenumbers,
			}), nil
		},
	})
}
