package overpass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gimmisn/internal/adapters/config"
	"go.trai.ch/gimmisn/internal/core/ports"
)

const (
	// ClientNodeID identifies the shared Overpass client.
	ClientNodeID graft.ID = "adapter.overpass"
	// QueryNodeID identifies the query service view of the client.
	QueryNodeID graft.ID = "adapter.overpass.query"
	// LimiterNodeID identifies the rate limiter view of the client.
	LimiterNodeID graft.ID = "adapter.overpass.limiter"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Overpass.URL, cfg.Overpass.Timeout), nil
		},
	})

	graft.Register(graft.Node[ports.QueryService]{
		ID:        QueryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.QueryService, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.RateLimiter]{
		ID:        LimiterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.RateLimiter, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
