package domain_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/core/domain"
)

func TestParseMissingStreetsPolicy(t *testing.T) {
	tests := []struct {
		value   string
		want    domain.MissingStreetsPolicy
		wantErr bool
	}{
		{value: "", want: domain.MissingStreetsYes},
		{value: "yes", want: domain.MissingStreetsYes},
		{value: "no", want: domain.MissingStreetsNo},
		{value: "only", want: domain.MissingStreetsOnly},
		{value: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := domain.ParseMissingStreetsPolicy(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidMissingStreetsPolicy.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArtifactKind_AppliesTo(t *testing.T) {
	tests := []struct {
		kind   domain.ArtifactKind
		policy domain.MissingStreetsPolicy
		want   bool
	}{
		{domain.ArtifactOSMStreets, domain.MissingStreetsNo, true},
		{domain.ArtifactOSMHousenumbers, domain.MissingStreetsOnly, true},
		{domain.ArtifactRefStreets, domain.MissingStreetsNo, false},
		{domain.ArtifactRefStreets, domain.MissingStreetsOnly, true},
		{domain.ArtifactMissingStreets, domain.MissingStreetsNo, false},
		{domain.ArtifactAdditionalStreets, domain.MissingStreetsNo, false},
		{domain.ArtifactAdditionalStreets, domain.MissingStreetsYes, true},
		{domain.ArtifactRefHousenumbers, domain.MissingStreetsOnly, false},
		{domain.ArtifactMissingHousenumbers, domain.MissingStreetsOnly, false},
		{domain.ArtifactMissingHousenumbers, domain.MissingStreetsNo, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.policy), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.AppliesTo(tt.policy))
		})
	}
}

func TestArtifactKind_OutputPath(t *testing.T) {
	files := domain.RelationFiles{
		OSMStreets:             "a",
		OSMHousenumbers:        "b",
		RefStreets:             "c",
		RefHousenumbers:        "d",
		StreetsCoverage:        "e",
		HousenumbersCoverage:   "f",
		AdditionalStreetsCount: "g",
	}

	var got []string
	for _, kind := range domain.RelationArtifacts {
		got = append(got, kind.OutputPath(files))
	}
	assert.Equal(t, "abcdefg", strings.Join(got, ""))
	assert.Empty(t, domain.ArtifactStatsExtract.OutputPath(files))
}

func TestParseMode(t *testing.T) {
	mode, err := domain.ParseMode("all")
	require.NoError(t, err)
	assert.True(t, mode.IncludesStats())
	assert.True(t, mode.IncludesRelations())

	mode, err = domain.ParseMode("stats")
	require.NoError(t, err)
	assert.True(t, mode.IncludesStats())
	assert.False(t, mode.IncludesRelations())

	mode, err = domain.ParseMode("relations")
	require.NoError(t, err)
	assert.False(t, mode.IncludesStats())
	assert.True(t, mode.IncludesRelations())

	_, err = domain.ParseMode("everything")
	require.Error(t, err)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "missing-housenumbers-cache/budafok", domain.FamilyMissingHousenumbers.Key("budafok"))
	assert.Equal(t, "additional-housenumbers-cache/budafok", domain.FamilyAdditionalHousenumbers.Key("budafok"))
	assert.Equal(t, "streets/budafok", domain.StreetsKey("budafok"))
	assert.Equal(t, "housenumbers/budafok", domain.HousenumbersKey("budafok"))

	_, err := domain.ParseCacheFamily("lints")
	require.Error(t, err)
}

func TestDailySnapshot_DuplicateAddressDifferentEditor(t *testing.T) {
	s := domain.NewDailySnapshot("2020-05-10")
	s.Add(domain.HouseNumberRow{Postcode: "12345", City: "CityA", Street: "Main St", Housenumber: "1", User: "alice"}, "citya")
	s.Add(domain.HouseNumberRow{Postcode: "12345", City: "CityA", Street: "Main St", Housenumber: "1", User: "bob"}, "citya")

	assert.Equal(t, 1, s.HouseNumberCount())
	assert.Equal(t, 2, s.UserCount())
	assert.Equal(t, []domain.UserCount{{User: "alice", Count: 1}, {User: "bob", Count: 1}}, s.TopUsers(domain.TopUsersLimit))
	assert.Equal(t, []domain.GroupCount{{Key: "citya", Count: 1}}, s.Cities(strings.Compare))
}

func TestDailySnapshot_EmptyPostcodeGroups(t *testing.T) {
	s := domain.NewDailySnapshot("2020-05-10")
	s.Add(domain.HouseNumberRow{Street: "Main St", Housenumber: "1", User: "alice"}, "_Empty")
	s.Add(domain.HouseNumberRow{Street: "Side St", Housenumber: "1", User: "alice"}, "_Empty")
	s.Add(domain.HouseNumberRow{Postcode: "1111", Street: "Main St", Housenumber: "1", User: "alice"}, "budapest_11")

	assert.Equal(t, []domain.GroupCount{{Key: "", Count: 2}, {Key: "1111", Count: 1}}, s.Zips())
	assert.Equal(t, 3, s.HouseNumberCount())
}

func TestDailySnapshot_TopUsersRankingAndLimit(t *testing.T) {
	s := domain.NewDailySnapshot("2020-05-10")
	for i := range 25 {
		user := string(rune('a' + i))
		for range i + 1 {
			s.Add(domain.HouseNumberRow{Street: "S", Housenumber: user, User: user}, "c")
		}
	}
	s.Add(domain.HouseNumberRow{Street: "S", Housenumber: "x2", User: "zz"}, "c")
	for range 24 {
		s.Add(domain.HouseNumberRow{Street: "S", Housenumber: "x3", User: "zz"}, "c")
	}

	top := s.TopUsers(domain.TopUsersLimit)
	require.Len(t, top, domain.TopUsersLimit)
	assert.Equal(t, domain.UserCount{User: "y", Count: 25}, top[0])
	assert.Equal(t, domain.UserCount{User: "zz", Count: 25}, top[1])
	assert.Equal(t, domain.UserCount{User: "x", Count: 24}, top[2])
}

func TestStatsLayout(t *testing.T) {
	l := domain.NewStatsLayout("workdir")
	assert.Equal(t, "workdir/stats/2020-05-10.csv", l.Extract("2020-05-10"))
	assert.Equal(t, "workdir/stats/2020-05-10.count", l.Count("2020-05-10"))
	assert.Equal(t, "workdir/stats/2020-05-10.citycount", l.CityCount("2020-05-10"))
	assert.Equal(t, "workdir/stats/2020-05-10.zipcount", l.ZipCount("2020-05-10"))
	assert.Equal(t, "workdir/stats/2020-05-10.topusers", l.TopUsers("2020-05-10"))
	assert.Equal(t, "workdir/stats/2020-05-10.usercount", l.UserCount("2020-05-10"))
	assert.Equal(t, "workdir/stats/ref.count", l.RefCount())
	assert.Equal(t, "workdir/stats/stats.json", l.JSON())
}

func TestTableReader(t *testing.T) {
	input := "@id\taddr:street\taddr:housenumber\n" +
		"1\tMain St\t1\n" +
		"2\tSide \"St\n" +
		"3\n"

	table, err := domain.NewTableReader(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, table.Require("addr:street", "addr:housenumber"))
	require.Error(t, table.Require("@user"))

	var streets, numbers []string
	for {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		streets = append(streets, table.Field(row, "addr:street"))
		numbers = append(numbers, table.Field(row, "addr:housenumber"))
	}
	assert.Equal(t, []string{"Main St", "Side \"St", ""}, streets)
	assert.Equal(t, []string{"1", "", ""}, numbers)
}

func TestTableReader_Empty(t *testing.T) {
	_, err := domain.NewTableReader(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTableMalformed.Error())
}

func TestDailySnapshot_InvalidCities(t *testing.T) {
	s := domain.NewDailySnapshot("2020-05-10")
	unknown := domain.HouseNumberRow{Postcode: "8000", City: "Unknownville", Street: "Main", Housenumber: "3", User: "alice"}
	s.Add(domain.HouseNumberRow{Postcode: "2000", City: "Szentendre", Street: "Fő tér", Housenumber: "5", User: "alice"}, "szentendre")
	s.Add(unknown, domain.InvalidCityKey)
	s.Add(domain.HouseNumberRow{Postcode: "8000", Street: "Side", Housenumber: "4", User: "bob"}, "_Empty")

	assert.Equal(t, []domain.HouseNumberRow{unknown}, s.InvalidCities())
}
