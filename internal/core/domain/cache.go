package domain

// CacheNamespace names a table of JSON payloads in the persistent store.
type CacheNamespace string

const (
	// NamespaceMissingHousenumbers holds missing house numbers per relation.
	NamespaceMissingHousenumbers CacheNamespace = "missing_housenumbers_cache"
	// NamespaceAdditionalHousenumbers holds additional house numbers per relation.
	NamespaceAdditionalHousenumbers CacheNamespace = "additional_housenumbers_cache"
)

// CacheFamily identifies a cached artifact family.
type CacheFamily string

const (
	// FamilyMissingHousenumbers caches house numbers present only in the reference.
	FamilyMissingHousenumbers CacheFamily = "missing-housenumbers"
	// FamilyAdditionalHousenumbers caches house numbers present only in OSM.
	FamilyAdditionalHousenumbers CacheFamily = "additional-housenumbers"
)

// ParseCacheFamily validates a family name.
func ParseCacheFamily(value string) (CacheFamily, error) {
	switch CacheFamily(value) {
	case FamilyMissingHousenumbers, FamilyAdditionalHousenumbers:
		return CacheFamily(value), nil
	default:
		return "", ErrInvalidCacheFamily
	}
}

// Key returns the freshness key of the family for a relation.
func (f CacheFamily) Key(relation string) string {
	return string(f) + "-cache/" + relation
}

// StreetsKey is the freshness key bumped when a relation's OSM streets are written.
func StreetsKey(relation string) string {
	return "streets/" + relation
}

// HousenumbersKey is the freshness key bumped when a relation's OSM house numbers are written.
func HousenumbersKey(relation string) string {
	return "housenumbers/" + relation
}

// CountSeries names a dated counter table in the persistent store.
type CountSeries string

const (
	// SeriesHousenumbers is the daily house number count.
	SeriesHousenumbers CountSeries = "stats_counts"
	// SeriesUsers is the daily distinct editor count.
	SeriesUsers CountSeries = "stats_usercounts"
)

// DatedCount is one row of a count series.
type DatedCount struct {
	Date  string
	Count int
}

// StreetHousenumbers groups house numbers of one street.
type StreetHousenumbers struct {
	Street       string   `json:"street"`
	Housenumbers []string `json:"housenumbers"`
}

// MissingHousenumbers is the cached result of comparing reference and OSM house numbers.
type MissingHousenumbers struct {
	OngoingStreets []StreetHousenumbers `json:"ongoing_streets"`
	TodoCount      int                  `json:"todo_count"`
	DoneCount      int                  `json:"done_count"`
	Percent        string               `json:"percent"`
}

// AdditionalHousenumbers is the cached list of house numbers found only in OSM.
type AdditionalHousenumbers struct {
	Streets []StreetHousenumbers `json:"streets"`
	Count   int                  `json:"count"`
}
