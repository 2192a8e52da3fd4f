// Package app implements the application layer of the nightly run.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunOptions selects what a nightly run does.
type RunOptions struct {
	// Mode picks the stats update, the relation refresh or both.
	Mode domain.Mode
	// Update refreshes artifacts even if their output file exists.
	Update bool
	// Overpass fetches a new country-wide extract for the stats update.
	Overpass bool
	// RefCounty limits the refresh to the relations of a reference county.
	RefCounty string
	// RefSettlement limits the refresh to the relations of a reference settlement.
	RefSettlement string
}

// App represents the main application logic.
type App struct {
	stats     ports.StatsUpdater
	refresher ports.RelationRefresher
	relations ports.RelationProvider
	cache     ports.CachedArtifacts
	clock     clockwork.Clock
	logger    ports.Logger
	metrics   ports.Metrics
	probe     ports.MemoryProbe
	unit      ports.Unit

	updateInactive bool
}

// Deps groups the collaborators of an App.
type Deps struct {
	Stats     ports.StatsUpdater
	Refresher ports.RelationRefresher
	Relations ports.RelationProvider
	Cache     ports.CachedArtifacts
	Clock     clockwork.Clock
	Logger    ports.Logger
	Metrics   ports.Metrics
	Probe     ports.MemoryProbe
	Unit      ports.Unit
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		stats:     deps.Stats,
		refresher: deps.Refresher,
		relations: deps.Relations,
		cache:     deps.Cache,
		clock:     deps.Clock,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		probe:     deps.Probe,
		unit:      deps.Unit,
	}
}

// WithUpdateInactive makes every run refresh inactive relations too.
func (a *App) WithUpdateInactive(enable bool) *App {
	a.updateInactive = enable
	return a
}

// Run performs the nightly task.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if _, err := domain.ParseMode(string(opts.Mode)); err != nil {
		return zerr.With(err, "mode", string(opts.Mode))
	}

	start := a.clock.Now()
	a.logger.Info("starting", "mode", opts.Mode)

	err := a.run(ctx, opts)
	a.finish(start)
	if err != nil {
		return err
	}
	return a.unit.MakeError()
}

func (a *App) run(ctx context.Context, opts RunOptions) error {
	if opts.Mode.IncludesStats() {
		if err := a.stats.Run(ctx, opts.Overpass); err != nil {
			return err
		}
	}

	if opts.Mode.IncludesRelations() {
		if err := a.refresher.Run(ctx, a.filter(opts), opts.Update); err != nil {
			return err
		}
	}
	return nil
}

// filter activates inactive relations on the first day of the month and
// relations that were never fetched.
func (a *App) filter(opts RunOptions) domain.RelationFilter {
	return domain.RelationFilter{
		ActivateAll:   a.updateInactive || a.clock.Now().Day() == 1,
		ActivateNew:   true,
		RefCounty:     opts.RefCounty,
		RefSettlement: opts.RefSettlement,
	}
}

func (a *App) finish(start time.Time) {
	peak, err := a.probe.PeakMemory()
	if err != nil {
		a.logger.Warn("peak memory unavailable", "error", err.Error())
	} else {
		a.logger.Info("peak memory", "vmpeak", datasize.ByteSize(peak).HumanReadable())
	}

	duration := a.clock.Since(start)
	a.metrics.ObserveRun(duration, peak)
	if err := a.metrics.Flush(); err != nil {
		a.logger.Error(err)
		a.unit.Fail("metrics flush")
	}

	a.logger.Info("finished", "duration", formatDuration(duration))
}

// Show returns the cached JSON of a family for a relation, recomputing it
// when stale.
func (a *App) Show(ctx context.Context, family, relation string) (string, error) {
	f, err := domain.ParseCacheFamily(family)
	if err != nil {
		return "", zerr.With(err, "family", family)
	}
	rel, err := a.relations.Get(ctx, relation)
	if err != nil {
		return "", err
	}
	return a.cache.Get(ctx, f, rel)
}

// formatDuration renders d as H:MM:SS.
func formatDuration(d time.Duration) string {
	seconds := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
