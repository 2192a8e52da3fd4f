package areas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// StreetsTemplate is the per-relation street query under the datadir.
	StreetsTemplate = "streets-template.overpassql"
	// HousenumbersTemplate is the per-relation house number query under the datadir.
	HousenumbersTemplate = "street-housenumbers-template.overpassql"

	nullSuffix = " null"
)

// References locates the reference data sets.
type References struct {
	Streets      string
	Housenumbers []string
}

// Areas is the ports.Areas implementation working on relation files.
type Areas struct {
	fs         afero.Fs
	datadir    string
	references References
	collator   *collate.Collator

	// loaded lazily, keyed by refcounty + "\t" + refsettlement
	refStreets      map[string][]string
	refHousenumbers map[string]map[string][]string
}

var _ ports.Areas = (*Areas)(nil)

// New creates an Areas reading templates from datadir.
func New(fsys afero.Fs, datadir string, references References) *Areas {
	return &Areas{
		fs:         fsys,
		datadir:    datadir,
		references: references,
		collator:   collate.New(language.Hungarian),
	}
}

// OSMStreetsQuery builds the street query of rel.
func (a *Areas) OSMStreetsQuery(rel *domain.Relation) (string, error) {
	return a.query(StreetsTemplate, rel)
}

// OSMHousenumbersQuery builds the house number query of rel.
func (a *Areas) OSMHousenumbersQuery(rel *domain.Relation) (string, error) {
	return a.query(HousenumbersTemplate, rel)
}

func (a *Areas) query(template string, rel *domain.Relation) (string, error) {
	data, err := fs.ReadFile(a.fs, filepath.Join(a.datadir, template))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrQueryBuildFailed.Error()), "relation", rel.Name)
	}
	query := strings.ReplaceAll(string(data), "@RELATION@", strconv.FormatInt(rel.OSMRelation, 10))
	return strings.ReplaceAll(query, "@AREA@", areaID(rel.OSMRelation)), nil
}

// WriteOSMStreets stores a fetched street list.
func (a *Areas) WriteOSMStreets(rel *domain.Relation, data []byte) (int, error) {
	return fs.WriteFile(a.fs, rel.Files.OSMStreets, data)
}

// WriteOSMHousenumbers stores a fetched house number list.
func (a *Areas) WriteOSMHousenumbers(rel *domain.Relation, data []byte) (int, error) {
	return fs.WriteFile(a.fs, rel.Files.OSMHousenumbers, data)
}

// WriteRefStreets filters the reference streets of rel into its list file.
func (a *Areas) WriteRefStreets(rel *domain.Relation) error {
	if err := a.loadRefStreets(); err != nil {
		return err
	}
	streets := slices.Clone(a.refStreets[refKey(rel)])
	slices.SortFunc(streets, a.collator.CompareString)
	streets = slices.Compact(streets)
	return fs.WriteString(a.fs, rel.Files.RefStreets, joinLines(streets))
}

// WriteRefHousenumbers filters the reference house numbers of rel into its list file.
func (a *Areas) WriteRefHousenumbers(rel *domain.Relation) error {
	if err := a.loadRefHousenumbers(); err != nil {
		return err
	}
	byStreet := a.refHousenumbers[refKey(rel)]

	var lines []string
	for _, street := range sortedStreets(a.collator, byStreet) {
		numbers := slices.Clone(byStreet[street])
		slices.Sort(numbers)
		for _, number := range slices.Compact(numbers) {
			lines = append(lines, street+"\t"+number)
		}
	}
	return fs.WriteString(a.fs, rel.Files.RefHousenumbers, joinLines(lines))
}

// WriteMissingStreets writes the street coverage of rel.
func (a *Areas) WriteMissingStreets(rel *domain.Relation) error {
	ref, err := a.readList(rel.Files.RefStreets)
	if err != nil {
		return err
	}
	osm, err := a.osmStreets(rel)
	if err != nil {
		return err
	}

	done := 0
	for _, street := range ref {
		if _, ok := osm[street]; ok {
			done++
		}
	}
	return fs.WriteString(a.fs, rel.Files.StreetsCoverage, percent(done, len(ref)))
}

// WriteAdditionalStreets writes the number of OSM streets missing from the reference.
func (a *Areas) WriteAdditionalStreets(rel *domain.Relation) error {
	ref, err := a.readList(rel.Files.RefStreets)
	if err != nil {
		return err
	}
	osm, err := a.osmStreets(rel)
	if err != nil {
		return err
	}

	for _, street := range ref {
		delete(osm, street)
	}
	return fs.WriteString(a.fs, rel.Files.AdditionalStreetsCount, strconv.Itoa(len(osm))+"\n")
}

// MissingHousenumbers compares the reference and OSM house numbers of rel.
func (a *Areas) MissingHousenumbers(rel *domain.Relation) (*domain.MissingHousenumbers, error) {
	ref, _, err := a.refHousenumbersOf(rel)
	if err != nil {
		return nil, err
	}
	osm, err := a.osmHousenumbers(rel)
	if err != nil {
		return nil, err
	}

	result := &domain.MissingHousenumbers{OngoingStreets: []domain.StreetHousenumbers{}}
	for _, street := range sortedStreets(a.collator, ref) {
		var missing []string
		for _, number := range ref[street] {
			if _, ok := osm[street][number]; ok {
				result.DoneCount++
				continue
			}
			missing = append(missing, number)
		}
		if len(missing) == 0 {
			continue
		}
		result.TodoCount += len(missing)
		slices.SortFunc(missing, compareHousenumbers)
		result.OngoingStreets = append(result.OngoingStreets, domain.StreetHousenumbers{Street: street, Housenumbers: missing})
	}
	result.Percent = percent(result.DoneCount, result.DoneCount+result.TodoCount)
	return result, nil
}

// WriteMissingHousenumbers writes the house number coverage of rel.
func (a *Areas) WriteMissingHousenumbers(rel *domain.Relation, missing *domain.MissingHousenumbers) error {
	return fs.WriteString(a.fs, rel.Files.HousenumbersCoverage, missing.Percent)
}

// AdditionalHousenumbers lists house numbers present in OSM but not in the reference.
func (a *Areas) AdditionalHousenumbers(rel *domain.Relation) (*domain.AdditionalHousenumbers, error) {
	ref, _, err := a.refHousenumbersOf(rel)
	if err != nil {
		return nil, err
	}
	osm, err := a.osmHousenumbers(rel)
	if err != nil {
		return nil, err
	}

	result := &domain.AdditionalHousenumbers{Streets: []domain.StreetHousenumbers{}}
	for _, street := range sortedStreets(a.collator, osm) {
		known := make(map[string]struct{}, len(ref[street]))
		for _, number := range ref[street] {
			known[number] = struct{}{}
		}

		var additional []string
		for number := range osm[street] {
			if _, ok := known[number]; !ok {
				additional = append(additional, number)
			}
		}
		if len(additional) == 0 {
			continue
		}
		slices.SortFunc(additional, compareHousenumbers)
		result.Count += len(additional)
		result.Streets = append(result.Streets, domain.StreetHousenumbers{Street: street, Housenumbers: additional})
	}
	return result, nil
}

// WriteLints lists the reference house numbers of rel that cannot be surveyed.
func (a *Areas) WriteLints(rel *domain.Relation) error {
	_, invalid, err := a.refHousenumbersOf(rel)
	if err != nil {
		return err
	}
	return fs.WriteString(a.fs, rel.Files.Lints, joinLines(invalid))
}

// refHousenumbersOf reads the filtered reference list of rel, returning the
// valid numbers per street and the invalid "street\tnumber" lines.
func (a *Areas) refHousenumbersOf(rel *domain.Relation) (map[string][]string, []string, error) {
	lines, err := a.readList(rel.Files.RefHousenumbers)
	if err != nil {
		return nil, nil, err
	}

	valid := make(map[string][]string)
	var invalid []string
	for _, line := range lines {
		street, raw, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, nil, zerr.With(domain.ErrTableMalformed, "line", line)
		}
		number, ok := normalizeHousenumber(raw)
		if !ok {
			invalid = append(invalid, line)
			continue
		}
		if !slices.Contains(valid[street], number) {
			valid[street] = append(valid[street], number)
		}
	}
	return valid, invalid, nil
}

func (a *Areas) osmStreets(rel *domain.Relation) (map[string]struct{}, error) {
	streets := make(map[string]struct{})
	err := a.scanTable(rel.Files.OSMStreets, []string{"name"}, func(table *domain.TableReader, row []string) {
		if name := table.Field(row, "name"); name != "" {
			streets[name] = struct{}{}
		}
	})
	return streets, err
}

func (a *Areas) osmHousenumbers(rel *domain.Relation) (map[string]map[string]struct{}, error) {
	numbers := make(map[string]map[string]struct{})
	columns := []string{"addr:street", "addr:housenumber"}
	err := a.scanTable(rel.Files.OSMHousenumbers, columns, func(table *domain.TableReader, row []string) {
		street := table.Field(row, "addr:street")
		if street == "" {
			return
		}
		for _, raw := range splitHousenumbers(table.Field(row, "addr:housenumber")) {
			number, ok := normalizeHousenumber(raw)
			if !ok {
				continue
			}
			if numbers[street] == nil {
				numbers[street] = make(map[string]struct{})
			}
			numbers[street][number] = struct{}{}
		}
	})
	return numbers, err
}

func (a *Areas) scanTable(path string, columns []string, visit func(*domain.TableReader, []string)) error {
	data, err := fs.ReadFile(a.fs, path)
	if err != nil {
		return err
	}
	table, err := domain.NewTableReader(bytes.NewReader(data))
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := table.Require(columns...); err != nil {
		return zerr.With(err, "path", path)
	}
	for {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.With(err, "path", path)
		}
		visit(table, row)
	}
}

func (a *Areas) readList(path string) ([]string, error) {
	data, err := fs.ReadFile(a.fs, path)
	if err != nil {
		return nil, err
	}
	return strings.FieldsFunc(string(data), func(r rune) bool { return r == '\n' }), nil
}

func sortedStreets[V any](c *collate.Collator, byStreet map[string]V) []string {
	return slices.SortedFunc(maps.Keys(byStreet), c.CompareString)
}

func (a *Areas) loadRefStreets() error {
	if a.refStreets != nil {
		return nil
	}
	streets := make(map[string][]string)
	err := a.scanReference(a.references.Streets, 3, func(fields []string) {
		key := fields[0] + "\t" + fields[1]
		streets[key] = append(streets[key], strings.TrimSuffix(fields[2], nullSuffix))
	})
	if err != nil {
		return err
	}
	a.refStreets = streets
	return nil
}

func (a *Areas) loadRefHousenumbers() error {
	if a.refHousenumbers != nil {
		return nil
	}
	numbers := make(map[string]map[string][]string)
	for _, path := range a.references.Housenumbers {
		err := a.scanReference(path, 4, func(fields []string) {
			key := fields[0] + "\t" + fields[1]
			if numbers[key] == nil {
				numbers[key] = make(map[string][]string)
			}
			numbers[key][fields[2]] = append(numbers[key][fields[2]], fields[3])
		})
		if err != nil {
			return err
		}
	}
	a.refHousenumbers = numbers
	return nil
}

// scanReference visits the rows of a reference TSV, skipping its header.
func (a *Areas) scanReference(path string, width int, visit func([]string)) error {
	data, err := fs.ReadFile(a.fs, path)
	if err != nil {
		return err
	}
	for i, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if i == 0 || line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != width {
			return zerr.With(zerr.With(domain.ErrTableMalformed, "path", path), "line", i+1)
		}
		visit(fields)
	}
	return nil
}

func refKey(rel *domain.Relation) string {
	return rel.RefCounty + "\t" + rel.RefSettlement
}

func percent(done, total int) string {
	if total == 0 {
		return "100.00"
	}
	return fmt.Sprintf("%.2f", float64(done)*100/float64(total))
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
