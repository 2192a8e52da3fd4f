package settlements_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/settlements"
	"go.trai.ch/gimmisn/internal/core/domain"
)

const citycounts = "CITY\tCNT\nBudapest\t100\nGyőr\t20\nSopron\t10\n"

func TestCityKey(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ref/citycounts.tsv", []byte(citycounts), 0o644))
	s := settlements.New(fsys, "/ref/citycounts.tsv")

	tests := []struct {
		name     string
		postcode string
		city     string
		want     string
	}{
		{name: "budapest district", postcode: "1111", city: "Budapest", want: "budapest_11"},
		{name: "budapest first district", postcode: "1013", city: "Budapest", want: "budapest_01"},
		{name: "out of range district", postcode: "1999", city: "Budapest", want: "budapest"},
		{name: "valid settlement", postcode: "9021", city: "Győr", want: "győr"},
		{name: "budapest without postcode", postcode: "", city: "Budapest", want: "budapest"},
		{name: "unknown settlement", postcode: "9999", city: "Nowhere", want: "_Invalid"},
		{name: "unknown settlement with budapest postcode", postcode: "1111", city: "Unknownville", want: "_Invalid"},
		{name: "valid settlement with budapest postcode", postcode: "1111", city: "Sopron", want: "sopron"},
		{name: "empty city", postcode: "9400", city: "", want: "_Empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.CityKey(context.Background(), tt.postcode, tt.city)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCityKey_MissingReference(t *testing.T) {
	s := settlements.New(afero.NewMemMapFs(), "/ref/citycounts.tsv")

	_, err := s.CityKey(context.Background(), "1111", "Budapest")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
}

func TestCityKey_MalformedReference(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ref/citycounts.tsv", []byte("VAROS\tDB\n"), 0o644))
	s := settlements.New(fsys, "/ref/citycounts.tsv")

	_, err := s.CityKey(context.Background(), "1111", "Budapest")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTableMalformed.Error())
}
