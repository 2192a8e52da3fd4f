package domain

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// EmptyZipLabel is printed instead of an empty postcode.
const EmptyZipLabel = "_Empty"

// InvalidCityKey is the city key of addresses whose city is not a known settlement.
const InvalidCityKey = "_Invalid"

// TopUsersLimit is the number of editors kept in the daily ranking.
const TopUsersLimit = 20

// HouseNumberRow is one row of the raw country-wide extract.
type HouseNumberRow struct {
	Postcode    string
	City        string
	Street      string
	Housenumber string
	User        string
}

// UserCount is the number of extract rows last edited by a user.
type UserCount struct {
	User  string
	Count int
}

// GroupCount is the number of distinct street/house number pairs in a group.
type GroupCount struct {
	Key   string
	Count int
}

// DailySnapshot accumulates the country-wide statistics of one day.
type DailySnapshot struct {
	Date string

	// house numbers are tracked by digest; the extract holds millions of rows.
	houseNumbers map[uint64]struct{}
	cities       map[string]map[string]struct{}
	zips         map[string]map[string]struct{}
	users        map[string]int
	invalid      []HouseNumberRow
}

// NewDailySnapshot creates an empty snapshot for a date.
func NewDailySnapshot(date string) *DailySnapshot {
	return &DailySnapshot{
		Date:         date,
		houseNumbers: make(map[uint64]struct{}),
		cities:       make(map[string]map[string]struct{}),
		zips:         make(map[string]map[string]struct{}),
		users:        make(map[string]int),
	}
}

// Add records a row. cityKey is the normalized city of the row.
func (s *DailySnapshot) Add(row HouseNumberRow, cityKey string) {
	tuple := row.Postcode + "\t" + row.City + "\t" + row.Street + "\t" + row.Housenumber
	s.houseNumbers[xxhash.Sum64String(tuple)] = struct{}{}

	address := row.Street + "\t" + row.Housenumber
	addTo(s.cities, cityKey, address)
	addTo(s.zips, row.Postcode, address)

	s.users[row.User]++

	if cityKey == InvalidCityKey {
		s.invalid = append(s.invalid, row)
	}
}

func addTo(groups map[string]map[string]struct{}, key, value string) {
	set, ok := groups[key]
	if !ok {
		set = make(map[string]struct{})
		groups[key] = set
	}
	set[value] = struct{}{}
}

// HouseNumberCount returns the number of distinct house numbers.
func (s *DailySnapshot) HouseNumberCount() int {
	return len(s.houseNumbers)
}

// UserCount returns the number of distinct editors.
func (s *DailySnapshot) UserCount() int {
	return len(s.users)
}

// InvalidCities returns the rows with an unknown city, in the order they were added.
func (s *DailySnapshot) InvalidCities() []HouseNumberRow {
	return s.invalid
}

// Cities returns per-city counts sorted with the given comparison.
func (s *DailySnapshot) Cities(compare func(a, b string) int) []GroupCount {
	return groupCounts(s.cities, compare)
}

// Zips returns per-postcode counts in byte order. The empty postcode keeps its
// empty key; callers print it as EmptyZipLabel.
func (s *DailySnapshot) Zips() []GroupCount {
	return groupCounts(s.zips, cmp.Compare[string])
}

func groupCounts(groups map[string]map[string]struct{}, compare func(a, b string) int) []GroupCount {
	counts := make([]GroupCount, 0, len(groups))
	for key, set := range groups {
		counts = append(counts, GroupCount{Key: key, Count: len(set)})
	}
	slices.SortFunc(counts, func(a, b GroupCount) int {
		return compare(a.Key, b.Key)
	})
	return slices.Compact(counts)
}

// TopUsers ranks editors by row count, descending, ties broken by name.
func (s *DailySnapshot) TopUsers(limit int) []UserCount {
	users := make([]UserCount, 0, len(s.users))
	for user, count := range s.users {
		users = append(users, UserCount{User: user, Count: count})
	}
	slices.SortFunc(users, func(a, b UserCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.User, b.User)
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users
}
