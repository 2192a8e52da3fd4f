package aggregate

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/clock"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/config"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/fs"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/metrics"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/settlements" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/stats"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/adapters/store"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/retry"
)

// NodeID is the unique identifier for the aggregation pipeline Graft node.
const NodeID graft.ID = "engine.aggregate"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			store.NodeID,
			settlements.NodeID,
			stats.NodeID,
			retry.NodeID,
			clock.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
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
			sets, err := graft.Dep[ports.Settlements](ctx)
			if err != nil {
				return nil, err
			}
			gen, err := graft.Dep[ports.SnapshotGenerator](ctx)
			if err != nil {
				return nil, err
			}
			loop, err := graft.Dep[*retry.Loop](ctx)
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
				FS:          fsys,
				Store:       s,
				Settlements: sets,
				Generator:   gen,
				Loop:        loop,
				Clock:       clk,
				Logger:      log,
				Metrics:     m,
			}, domain.NewStatsLayout(cfg.Workdir), Paths{
				Query:      filepath.Join(cfg.Datadir, domain.CountryQueryFile),
				CityCounts: cfg.Reference.Citycounts,
			}), nil
		},
	})
}
