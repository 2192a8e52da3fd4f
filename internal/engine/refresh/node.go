package refresh

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/areas"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/clock"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/store"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/artifactcache"
	"go.trai.ch/gimmisn/internal/engine/retry"
)

// NodeID is the unique identifier for the refresh orchestrator Graft node.
const NodeID graft.ID = "engine.refresh"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			areas.RelationsNodeID,
			areas.NodeID,
			artifactcache.NodeID,
			retry.NodeID,
			store.NodeID,
			fs.NodeID,
			clock.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			relations, err := graft.Dep[ports.RelationProvider](ctx)
			if err != nil {
				return nil, err
			}
			a, err := graft.Dep[ports.Areas](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[*artifactcache.Store](ctx)
			if err != nil {
				return nil, err
			}
			loop, err := graft.Dep[*retry.Loop](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[clockwork.Clock](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return New(Deps{
				Relations: relations,
				Areas:     a,
				Cache:     cache,
				Loop:      loop,
				Store:     s,
				FS:        fsys,
				Clock:     clk,
				Logger:    log,
				Metrics:   m,
			}), nil
		},
	})
}
