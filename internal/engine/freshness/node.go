package freshness

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/store" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the freshness oracle Graft node.
const NodeID graft.ID = "engine.freshness"

func init() {
	graft.Register(graft.Node[*Oracle]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (*Oracle, error) {
			s, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(s, fsys), nil
		},
	})
}
