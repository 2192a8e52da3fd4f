package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=overpass.go -destination=mocks/mock_overpass.go -package=mocks

// QueryService executes queries against the rate-limited external data service.
type QueryService interface {
	// Execute runs a query and returns the raw response.
	// Any error is a transport error and may be retried.
	Execute(ctx context.Context, query string) ([]byte, error)
}

// RateLimiter reports the quota state of the QueryService.
type RateLimiter interface {
	// SecondsUntilAllowed returns how long to wait before the next query.
	// Zero means a query may be sent now.
	SecondsUntilAllowed(ctx context.Context) (int, error)
}
