package domain

import "path/filepath"

const (
	// StatsDirName is the directory under the workdir holding country-level statistics.
	StatsDirName = "stats"

	// StatsJSONFile is the name of the snapshot emitted for the web frontend.
	StatsJSONFile = "stats.json"

	// RefCountFile is the name of the reference house number total.
	RefCountFile = "ref.count"

	// CountryQueryFile is the name of the country-wide query template under the datadir.
	CountryQueryFile = "street-housenumbers-hungary.overpassql"

	// DateLayout formats the date keys of the statistics.
	DateLayout = "2006-01-02"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Columns of the reference city counts table.
const (
	CityCountsCityColumn  = "CITY"
	CityCountsCountColumn = "CNT"
)

// Columns of the country-wide extract.
const (
	ExtractPostcodeColumn    = "addr:postcode"
	ExtractCityColumn        = "addr:city"
	ExtractStreetColumn      = "addr:street"
	ExtractHousenumberColumn = "addr:housenumber"
	ExtractUserColumn        = "@user"
)

// StatsLayout resolves the dated files of the statistics directory.
type StatsLayout struct {
	Dir string
}

// NewStatsLayout returns the layout rooted in the workdir's stats directory.
func NewStatsLayout(workdir string) StatsLayout {
	return StatsLayout{Dir: filepath.Join(workdir, StatsDirName)}
}

// Extract is the raw country-wide extract of a day.
func (l StatsLayout) Extract(date string) string {
	return filepath.Join(l.Dir, date+".csv")
}

// Count is the house number total of a day.
func (l StatsLayout) Count(date string) string {
	return filepath.Join(l.Dir, date+".count")
}

// CityCount is the per-city breakdown of a day.
func (l StatsLayout) CityCount(date string) string {
	return filepath.Join(l.Dir, date+".citycount")
}

// ZipCount is the per-postcode breakdown of a day.
func (l StatsLayout) ZipCount(date string) string {
	return filepath.Join(l.Dir, date+".zipcount")
}

// TopUsers is the editor ranking of a day.
func (l StatsLayout) TopUsers(date string) string {
	return filepath.Join(l.Dir, date+".topusers")
}

// UserCount is the distinct editor total of a day.
func (l StatsLayout) UserCount(date string) string {
	return filepath.Join(l.Dir, date+".usercount")
}

// RefCount is the reference house number total.
func (l StatsLayout) RefCount() string {
	return filepath.Join(l.Dir, RefCountFile)
}

// JSON is the emitted statistics snapshot.
func (l StatsLayout) JSON() string {
	return filepath.Join(l.Dir, StatsJSONFile)
}
