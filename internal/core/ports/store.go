package ports

import (
	"context"
	"time"

	"go.trai.ch/gimmisn/internal/core/domain"
)

// Store defines the persistent key-value store for modification times, JSON
// payloads and dated counters.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// GetMtime returns the recorded modification time of a key.
	// The boolean is false if nothing was recorded.
	GetMtime(ctx context.Context, key string) (time.Time, bool, error)

	// SetMtime records the modification time of a key.
	SetMtime(ctx context.Context, key string, mtime time.Time) error

	// GetJSON returns the payload stored for key in a namespace.
	// The boolean is false if nothing was stored.
	GetJSON(ctx context.Context, namespace domain.CacheNamespace, key string) (string, bool, error)

	// SetJSON stores a payload for key in a namespace, replacing any previous one.
	SetJSON(ctx context.Context, namespace domain.CacheNamespace, key, value string) error

	// UpsertCount inserts or overwrites the value of a series for a date.
	UpsertCount(ctx context.Context, series domain.CountSeries, date string, value int) error

	// ReplaceInvalidAddrCities replaces the list of addresses whose city is
	// not a known settlement.
	ReplaceInvalidAddrCities(ctx context.Context, rows []domain.HouseNumberRow) error

	// Counts returns all rows of a series ordered by date.
	Counts(ctx context.Context, series domain.CountSeries) ([]domain.DatedCount, error)
}
