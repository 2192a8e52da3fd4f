package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=stats.go -destination=mocks/mock_stats.go -package=mocks

// Settlements normalizes the city of an address.
type Settlements interface {
	// CityKey returns the grouping key of a city. Unknown settlements still
	// produce a usable key.
	CityKey(ctx context.Context, postcode, city string) (string, error)
}

// SnapshotGenerator emits the JSON statistics snapshot.
type SnapshotGenerator interface {
	// Generate writes the snapshot covering the count series up to today.
	Generate(ctx context.Context, today string) error
}
