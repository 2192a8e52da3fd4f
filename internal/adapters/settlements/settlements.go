// Package settlements maps raw address cities to the keys of the daily city breakdown.
package settlements

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// InvalidKey groups cities that are not known settlements.
	InvalidKey = domain.InvalidCityKey
	// EmptyKey groups rows without a city.
	EmptyKey = "_Empty"

	budapest     = "budapest"
	maxDistricts = 23
)

// Settlements is a ports.Settlements backed by the reference city counts.
type Settlements struct {
	fs    afero.Fs
	path  string
	valid map[string]struct{}
}

var _ ports.Settlements = (*Settlements)(nil)

// New creates a lookup reading valid settlements from the TSV at path.
func New(fsys afero.Fs, path string) *Settlements {
	return &Settlements{fs: fsys, path: path}
}

// CityKey returns the lowercase city, the Budapest district for Budapest
// postcodes, InvalidKey for unknown cities and EmptyKey without a city.
func (s *Settlements) CityKey(_ context.Context, postcode, city string) (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}

	city = strings.ToLower(city)
	if city == budapest && strings.HasPrefix(postcode, "1") && len(postcode) >= 3 {
		if district, err := strconv.Atoi(postcode[1:3]); err == nil && district >= 1 && district <= maxDistricts {
			return city + "_" + postcode[1:3], nil
		}
		return city, nil
	}

	if _, ok := s.valid[city]; ok || city == budapest {
		return city, nil
	}
	if city != "" {
		return InvalidKey, nil
	}
	return EmptyKey, nil
}

func (s *Settlements) load() error {
	if s.valid != nil {
		return nil
	}

	data, err := fs.ReadFile(s.fs, s.path)
	if err != nil {
		return err
	}
	table, err := domain.NewTableReader(bytes.NewReader(data))
	if err != nil {
		return zerr.With(err, "path", s.path)
	}
	if err := table.Require(domain.CityCountsCityColumn); err != nil {
		return zerr.With(err, "path", s.path)
	}

	valid := make(map[string]struct{})
	for {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return zerr.With(err, "path", s.path)
		}
		if city := table.Field(row, domain.CityCountsCityColumn); city != "" {
			valid[strings.ToLower(city)] = struct{}{}
		}
	}
	s.valid = valid
	return nil
}
