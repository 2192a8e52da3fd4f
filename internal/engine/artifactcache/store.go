// Package artifactcache serves the per-relation house number artifacts from
// the persistent store, recomputing them when their inputs changed.
package artifactcache

import (
	"context"
	"encoding/json"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/freshness"
	"go.trai.ch/zerr"
)

// Store is the cached artifact store.
type Store struct {
	oracle  *freshness.Oracle
	store   ports.Store
	areas   ports.Areas
	clock   clockwork.Clock
	metrics ports.Metrics
}

var _ ports.CachedArtifacts = (*Store)(nil)

// New creates a Store.
func New(
	oracle *freshness.Oracle,
	store ports.Store,
	areas ports.Areas,
	clock clockwork.Clock,
	metrics ports.Metrics,
) *Store {
	return &Store{
		oracle:  oracle,
		store:   store,
		areas:   areas,
		clock:   clock,
		metrics: metrics,
	}
}

// family describes one cached artifact family.
type family struct {
	name      domain.CacheFamily
	namespace domain.CacheNamespace
	compute   func(*domain.Relation) (any, error)
	after     func(*domain.Relation) error
}

// MissingHousenumbers returns the JSON of the house numbers present only in
// the reference. A recompute also rewrites the relation's lints.
func (s *Store) MissingHousenumbers(ctx context.Context, rel *domain.Relation) (string, error) {
	return s.getOrCompute(ctx, rel, family{
		name:      domain.FamilyMissingHousenumbers,
		namespace: domain.NamespaceMissingHousenumbers,
		compute: func(rel *domain.Relation) (any, error) {
			return s.areas.MissingHousenumbers(rel)
		},
		after: s.areas.WriteLints,
	})
}

// AdditionalHousenumbers returns the JSON of the house numbers present only in OSM.
func (s *Store) AdditionalHousenumbers(ctx context.Context, rel *domain.Relation) (string, error) {
	return s.getOrCompute(ctx, rel, family{
		name:      domain.FamilyAdditionalHousenumbers,
		namespace: domain.NamespaceAdditionalHousenumbers,
		compute: func(rel *domain.Relation) (any, error) {
			return s.areas.AdditionalHousenumbers(rel)
		},
	})
}

// Get dispatches on the family name.
func (s *Store) Get(ctx context.Context, name domain.CacheFamily, rel *domain.Relation) (string, error) {
	switch name {
	case domain.FamilyMissingHousenumbers:
		return s.MissingHousenumbers(ctx, rel)
	case domain.FamilyAdditionalHousenumbers:
		return s.AdditionalHousenumbers(ctx, rel)
	default:
		return "", zerr.With(domain.ErrInvalidCacheFamily, "family", string(name))
	}
}

// Dependencies returns the file and cache dependencies of a relation's cached artifacts.
func Dependencies(rel *domain.Relation) (fileDeps, cacheDeps []string) {
	fileDeps = []string{rel.Files.Config}
	cacheDeps = []string{domain.StreetsKey(rel.Name), domain.HousenumbersKey(rel.Name)}
	return fileDeps, cacheDeps
}

func (s *Store) getOrCompute(ctx context.Context, rel *domain.Relation, f family) (string, error) {
	key := f.name.Key(rel.Name)
	fileDeps, cacheDeps := Dependencies(rel)

	current, err := s.oracle.IsCurrent(ctx, key, fileDeps, cacheDeps)
	if err != nil {
		return "", err
	}
	s.metrics.ObserveCacheLookup(f.name, current)

	if current {
		value, ok, err := s.store.GetJSON(ctx, f.namespace, rel.Name)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", zerr.With(zerr.With(domain.ErrCachedBlobMissing, "key", key), "relation", rel.Name)
		}
		return value, nil
	}

	result, err := f.compute(rel)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheComputeFailed.Error()), "relation", rel.Name)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error()), "relation", rel.Name)
	}
	value := string(data)

	// the blob must be in place before the mtime marks it current
	if err := s.store.SetJSON(ctx, f.namespace, rel.Name, value); err != nil {
		return "", err
	}
	if err := s.store.SetMtime(ctx, key, s.clock.Now()); err != nil {
		return "", err
	}

	if f.after != nil {
		if err := f.after(rel); err != nil {
			return "", zerr.With(err, "relation", rel.Name)
		}
	}
	return value, nil
}
