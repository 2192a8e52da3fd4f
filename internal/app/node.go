package app

import (
	"context"
	"io"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/adapters/areas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/clock"      //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/health"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/procstatus" //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/adapters/store"      //nolint:depguard // Wired in app layer
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/aggregate"
	"go.trai.ch/gimmisn/internal/engine/artifactcache"
	"go.trai.ch/gimmisn/internal/engine/refresh"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			aggregate.NodeID,
			refresh.NodeID,
			areas.RelationsNodeID,
			artifactcache.NodeID,
			clock.NodeID,
			logger.NodeID,
			metrics.NodeID,
			procstatus.NodeID,
			health.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			store.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}
	pipeline, err := graft.Dep[*aggregate.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	orchestrator, err := graft.Dep[*refresh.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	relations, err := graft.Dep[ports.RelationProvider](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[*artifactcache.Store](ctx)
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
	probe, err := graft.Dep[ports.MemoryProbe](ctx)
	if err != nil {
		return nil, err
	}
	unit, err := graft.Dep[ports.Unit](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Stats:     pipeline,
		Refresher: orchestrator,
		Relations: relations,
		Cache:     cache,
		Clock:     clk,
		Logger:    log,
		Metrics:   m,
		Probe:     probe,
		Unit:      unit,
	}).WithUpdateInactive(cfg.Cron.UpdateInactive), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	s, err := graft.Dep[ports.Store](ctx)
	if err != nil {
		return nil, err
	}

	components := &Components{App: app, Logger: log}
	if closer, ok := s.(io.Closer); ok {
		components.closers = append(components.closers, closer)
	}
	return components, nil
}
