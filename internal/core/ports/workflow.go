package ports

import (
	"context"

	"go.trai.ch/gimmisn/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=workflow.go -destination=mocks/mock_workflow.go -package=mocks

// StatsUpdater updates the country-level statistics.
type StatsUpdater interface {
	// Run fetches the country-wide extract when overpass is set and derives today's counts.
	Run(ctx context.Context, overpass bool) error
}

// RelationRefresher refreshes the per-relation artifacts.
type RelationRefresher interface {
	// Run refreshes the relations selected by filter.
	Run(ctx context.Context, filter domain.RelationFilter, update bool) error
}

// CachedArtifacts serves the cached house number artifacts of a relation.
type CachedArtifacts interface {
	// Get returns the JSON of a family, recomputing it when stale.
	Get(ctx context.Context, family domain.CacheFamily, rel *domain.Relation) (string, error)
}
