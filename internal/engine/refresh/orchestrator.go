// Package refresh updates the per-relation artifacts, one artifact kind at a
// time over all active relations.
package refresh

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs" //nolint:depguard // file helpers
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/artifactcache"
	"go.trai.ch/gimmisn/internal/engine/retry"
	"go.trai.ch/zerr"
)

// Step outcomes reported to ports.Metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeExhausted = "exhausted"
	OutcomeUpToDate  = "up_to_date"
)

// Orchestrator drives the relation refresh.
type Orchestrator struct {
	relations ports.RelationProvider
	areas     ports.Areas
	cache     *artifactcache.Store
	loop      *retry.Loop
	store     ports.Store
	fs        afero.Fs
	clock     clockwork.Clock
	logger    ports.Logger
	metrics   ports.Metrics
}

// Deps groups the collaborators of an Orchestrator.
type Deps struct {
	Relations ports.RelationProvider
	Areas     ports.Areas
	Cache     *artifactcache.Store
	Loop      *retry.Loop
	Store     ports.Store
	FS        afero.Fs
	Clock     clockwork.Clock
	Logger    ports.Logger
	Metrics   ports.Metrics
}

var _ ports.RelationRefresher = (*Orchestrator)(nil)

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		relations: deps.Relations,
		areas:     deps.Areas,
		cache:     deps.Cache,
		loop:      deps.Loop,
		store:     deps.Store,
		fs:        deps.FS,
		clock:     deps.Clock,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}
}

// Run refreshes the relations selected by filter. Without update, artifacts
// whose output file already exists are left alone.
//
// A failing step is logged and skips only that relation's artifact. Run
// returns an error when the relations cannot be listed, the context is
// cancelled, or the cache is found inconsistent.
func (o *Orchestrator) Run(ctx context.Context, filter domain.RelationFilter, update bool) error {
	rels, err := o.activeRelations(ctx, filter)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRefreshFailed.Error())
	}

	for _, kind := range domain.RelationArtifacts {
		for _, rel := range rels {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := o.step(ctx, kind, rel, update); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *Orchestrator) activeRelations(ctx context.Context, filter domain.RelationFilter) ([]*domain.Relation, error) {
	names, err := o.relations.ActiveNames(ctx, filter)
	if err != nil {
		return nil, err
	}

	rels := make([]*domain.Relation, 0, len(names))
	for _, name := range names {
		rel, err := o.relations.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

func (o *Orchestrator) step(ctx context.Context, kind domain.ArtifactKind, rel *domain.Relation, update bool) error {
	if !kind.AppliesTo(rel.MissingStreets) {
		return nil
	}

	if !update {
		exists, err := fs.Exists(o.fs, kind.OutputPath(rel.Files))
		if err != nil {
			o.fail(kind, rel, err)
			return nil
		}
		if exists {
			o.metrics.ObserveStep(kind, OutcomeUpToDate)
			return nil
		}
	}

	o.logger.Info("updating", "kind", kind, "relation", rel.Name)

	outcome, err := o.run(ctx, kind, rel)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, domain.ErrCachedBlobMissing) {
			return err
		}
		o.fail(kind, rel, err)
		return nil
	}
	o.metrics.ObserveStep(kind, outcome)
	return nil
}

func (o *Orchestrator) run(ctx context.Context, kind domain.ArtifactKind, rel *domain.Relation) (string, error) {
	switch kind {
	case domain.ArtifactOSMStreets:
		return o.fetch(ctx, kind, rel, o.areas.OSMStreetsQuery, o.areas.WriteOSMStreets, domain.StreetsKey(rel.Name))
	case domain.ArtifactOSMHousenumbers:
		return o.fetch(ctx, kind, rel, o.areas.OSMHousenumbersQuery, o.areas.WriteOSMHousenumbers, domain.HousenumbersKey(rel.Name))
	case domain.ArtifactRefStreets:
		return OutcomeSuccess, o.areas.WriteRefStreets(rel)
	case domain.ArtifactRefHousenumbers:
		return OutcomeSuccess, o.areas.WriteRefHousenumbers(rel)
	case domain.ArtifactMissingStreets:
		return OutcomeSuccess, o.areas.WriteMissingStreets(rel)
	case domain.ArtifactMissingHousenumbers:
		return OutcomeSuccess, o.missingHousenumbers(ctx, rel)
	case domain.ArtifactAdditionalStreets:
		return OutcomeSuccess, o.areas.WriteAdditionalStreets(rel)
	default:
		return "", zerr.With(domain.ErrRefreshFailed, "kind", string(kind))
	}
}

// fetch downloads an OSM artifact and bumps its freshness key on success.
func (o *Orchestrator) fetch(
	ctx context.Context,
	kind domain.ArtifactKind,
	rel *domain.Relation,
	build func(*domain.Relation) (string, error),
	persist func(*domain.Relation, []byte) (int, error),
	key string,
) (string, error) {
	result, err := o.loop.Run(ctx, retry.Request{
		Kind:       kind,
		Subject:    rel.Name,
		BuildQuery: func() (string, error) { return build(rel) },
		Persist:    func(data []byte) (int, error) { return persist(rel, data) },
	})
	if err != nil {
		return "", err
	}
	if !result.Succeeded {
		return OutcomeExhausted, nil
	}

	if err := o.store.SetMtime(ctx, key, o.clock.Now()); err != nil {
		return "", err
	}
	return OutcomeSuccess, nil
}

func (o *Orchestrator) missingHousenumbers(ctx context.Context, rel *domain.Relation) error {
	value, err := o.cache.MissingHousenumbers(ctx, rel)
	if err != nil {
		return err
	}

	var missing domain.MissingHousenumbers
	if err := json.Unmarshal([]byte(value), &missing); err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}
	return o.areas.WriteMissingHousenumbers(rel, &missing)
}

func (o *Orchestrator) fail(kind domain.ArtifactKind, rel *domain.Relation, err error) {
	o.metrics.ObserveStep(kind, OutcomeFailed)
	o.logger.Error(zerr.With(zerr.With(err, "kind", string(kind)), "relation", rel.Name))
}
