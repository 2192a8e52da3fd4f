package artifactcache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/adapters/areas"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/clock"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/store"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/freshness"
)

// NodeID is the unique identifier for the cached artifact store Graft node.
const NodeID graft.ID = "engine.artifactcache"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			freshness.NodeID,
			store.NodeID,
			areas.NodeID,
			clock.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			oracle, err := graft.Dep[*freshness.Oracle](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			a, err := graft.Dep[ports.Areas](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[clockwork.Clock](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return New(oracle, s, a, clk, m), nil
		},
	})
}
