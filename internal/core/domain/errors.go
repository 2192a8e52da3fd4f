package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidMode is returned when the run mode is not one of all, stats or relations.
	ErrInvalidMode = zerr.New("invalid mode, expected 'all', 'stats' or 'relations'")

	// ErrInvalidMissingStreetsPolicy is returned when a relation's missing-streets setting is unknown.
	ErrInvalidMissingStreetsPolicy = zerr.New("invalid missing-streets policy, expected 'yes', 'no' or 'only'")

	// ErrRelationNotFound is returned when a relation name is not defined.
	ErrRelationNotFound = zerr.New("relation not found")

	// ErrInvalidCacheFamily is returned when an unknown cached artifact family is requested.
	ErrInvalidCacheFamily = zerr.New("invalid cache family, expected 'missing-housenumbers' or 'additional-housenumbers'")

	// ErrInvalidCountSeries is returned when a count series name is not known to the store.
	ErrInvalidCountSeries = zerr.New("invalid count series")

	// ErrInvalidCacheNamespace is returned when a JSON cache namespace is not known to the store.
	ErrInvalidCacheNamespace = zerr.New("invalid cache namespace")

	// ErrCachedBlobMissing is returned when a cache entry is current but its payload is absent.
	ErrCachedBlobMissing = zerr.New("cache entry is current but its payload is missing")

	// ErrQueryFailed is returned when the query service cannot deliver a result.
	ErrQueryFailed = zerr.New("query failed")

	// ErrQueryBuildFailed is returned when a query cannot be built for a relation.
	ErrQueryBuildFailed = zerr.New("failed to build query")

	// ErrRateLimitStatusFailed is returned when the rate limiter status cannot be read.
	ErrRateLimitStatusFailed = zerr.New("failed to read rate limit status")

	// ErrPersistFailed is returned when a fetched result cannot be persisted.
	ErrPersistFailed = zerr.New("failed to persist query result")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrExtractMalformed is returned when the raw extract lacks a required column.
	ErrExtractMalformed = zerr.New("malformed extract")

	// ErrTableMalformed is returned when a TSV table cannot be parsed.
	ErrTableMalformed = zerr.New("malformed table")

	// ErrStoreOpenFailed is returned when the persistent store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open persistent store")

	// ErrStoreReadFailed is returned when the persistent store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from persistent store")

	// ErrStoreWriteFailed is returned when the persistent store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write to persistent store")

	// ErrCacheMarshalFailed is returned when a computed artifact cannot be serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cached artifact")

	// ErrCacheComputeFailed is returned when the computation behind a cached artifact fails.
	ErrCacheComputeFailed = zerr.New("failed to compute cached artifact")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config")

	// ErrRelationsReadFailed is returned when relation definitions cannot be loaded.
	ErrRelationsReadFailed = zerr.New("failed to read relation definitions")

	// ErrStatsFailed is returned when the country-level statistics update fails.
	ErrStatsFailed = zerr.New("update stats failed")

	// ErrRefreshFailed is returned when the relation refresh cannot run.
	ErrRefreshFailed = zerr.New("relation refresh failed")
)
