package retry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/adapters/clock"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/metrics"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/overpass" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the retry loop Graft node.
const NodeID graft.ID = "engine.retry"

func init() {
	graft.Register(graft.Node[*Loop]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			overpass.LimiterNodeID,
			overpass.QueryNodeID,
			clock.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Loop, error) {
			limiter, err := graft.Dep[ports.RateLimiter](ctx)
			if err != nil {
				return nil, err
			}
			queries, err := graft.Dep[ports.QueryService](ctx)
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
			return New(limiter, queries, clk, log, m), nil
		},
	})
}
