// Package aggregate rolls the country-wide house number extract up into the
// daily statistics.
package aggregate

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs" //nolint:depguard // file helpers
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/gimmisn/internal/engine/retry"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pipeline updates the country-level statistics of today.
type Pipeline struct {
	fs          afero.Fs
	store       ports.Store
	settlements ports.Settlements
	generator   ports.SnapshotGenerator
	loop        *retry.Loop
	clock       clockwork.Clock
	logger      ports.Logger
	metrics     ports.Metrics
	layout      domain.StatsLayout
	paths       Paths
	collator    *collate.Collator
}

// Paths locates the inputs of the pipeline.
type Paths struct {
	// Query is the country-wide query template.
	Query string
	// CityCounts is the reference house number count per settlement.
	CityCounts string
}

// Deps groups the collaborators of a Pipeline.
type Deps struct {
	FS          afero.Fs
	Store       ports.Store
	Settlements ports.Settlements
	Generator   ports.SnapshotGenerator
	Loop        *retry.Loop
	Clock       clockwork.Clock
	Logger      ports.Logger
	Metrics     ports.Metrics
}

var _ ports.StatsUpdater = (*Pipeline)(nil)

// New creates a Pipeline writing below layout.
func New(deps Deps, layout domain.StatsLayout, paths Paths) *Pipeline {
	return &Pipeline{
		fs:          deps.FS,
		store:       deps.Store,
		settlements: deps.Settlements,
		generator:   deps.Generator,
		loop:        deps.Loop,
		clock:       deps.Clock,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		layout:      layout,
		paths:       paths,
		collator:    collate.New(language.Hungarian),
	}
}

// Run fetches today's extract when overpass is set, then derives the daily
// counts from whatever extract is present and regenerates the snapshot.
func (p *Pipeline) Run(ctx context.Context, overpass bool) error {
	if err := p.run(ctx, overpass); err != nil {
		return zerr.Wrap(err, domain.ErrStatsFailed.Error())
	}
	return nil
}

func (p *Pipeline) run(ctx context.Context, overpass bool) error {
	p.logger.Info("updating stats")
	query, err := fs.ReadFile(p.fs, p.paths.Query)
	if err != nil {
		return err
	}

	today := p.clock.Now().Format(domain.DateLayout)
	extract := p.layout.Extract(today)

	if overpass {
		if err := p.fetch(ctx, today, extract, string(query)); err != nil {
			return err
		}
	}

	present, err := p.extractPresent(extract)
	if err != nil {
		return err
	}
	if present {
		if err := p.updateCounts(ctx, today, extract); err != nil {
			return err
		}
	} else {
		p.logger.Info("no extract, skipping daily counts", "path", extract)
	}

	if err := p.updateRefCount(); err != nil {
		return err
	}

	p.logger.Info("generating stats json")
	return p.generator.Generate(ctx, today)
}

// fetch downloads today's extract. A fetch that runs out of attempts leaves
// no empty extract behind.
func (p *Pipeline) fetch(ctx context.Context, today, extract, query string) error {
	p.logger.Info("fetching country-wide extract", "date", today)
	result, err := p.loop.Run(ctx, retry.Request{
		Kind:       domain.ArtifactStatsExtract,
		Subject:    today,
		BuildQuery: func() (string, error) { return query, nil },
		Persist: func(data []byte) (int, error) {
			return fs.WriteFile(p.fs, extract, data)
		},
	})
	if err != nil {
		return err
	}
	if result.Succeeded {
		return nil
	}

	present, err := p.extractPresent(extract)
	if err != nil || present {
		return err
	}
	if err := p.fs.Remove(extract); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", extract)
	}
	return nil
}

// extractPresent reports whether a non-empty extract exists at path.
func (p *Pipeline) extractPresent(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.Size() > 0, nil
}

func (p *Pipeline) updateCounts(ctx context.Context, today, extract string) error {
	snapshot, err := p.readExtract(ctx, today, extract)
	if err != nil {
		return err
	}

	houseNumbers := snapshot.HouseNumberCount()
	users := snapshot.UserCount()

	if err := fs.WriteString(p.fs, p.layout.Count(today), strconv.Itoa(houseNumbers)); err != nil {
		return err
	}
	if err := p.store.UpsertCount(ctx, domain.SeriesHousenumbers, today, houseNumbers); err != nil {
		return err
	}
	if err := fs.WriteString(p.fs, p.layout.CityCount(today), formatGroups("CITY", snapshot.Cities(p.collator.CompareString), "")); err != nil {
		return err
	}
	if err := fs.WriteString(p.fs, p.layout.ZipCount(today), formatGroups("ZIP", snapshot.Zips(), domain.EmptyZipLabel)); err != nil {
		return err
	}

	if err := fs.WriteString(p.fs, p.layout.TopUsers(today), formatTopUsers(snapshot.TopUsers(domain.TopUsersLimit))); err != nil {
		return err
	}
	if err := fs.WriteString(p.fs, p.layout.UserCount(today), strconv.Itoa(users)+"\n"); err != nil {
		return err
	}
	if err := p.store.UpsertCount(ctx, domain.SeriesUsers, today, users); err != nil {
		return err
	}
	invalid := snapshot.InvalidCities()
	if err := p.store.ReplaceInvalidAddrCities(ctx, invalid); err != nil {
		return err
	}

	p.metrics.SetDailyCounts(houseNumbers, users)
	p.logger.Info("daily counts updated", "date", today, "housenumbers", houseNumbers, "users", users, "invalid_cities", len(invalid))
	return nil
}

// readExtract makes the single pass over the extract.
func (p *Pipeline) readExtract(ctx context.Context, today, path string) (*domain.DailySnapshot, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	table, err := domain.NewTableReader(bufio.NewReader(f))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := table.Require(
		domain.ExtractPostcodeColumn,
		domain.ExtractCityColumn,
		domain.ExtractStreetColumn,
		domain.ExtractHousenumberColumn,
		domain.ExtractUserColumn,
	); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractMalformed.Error()), "path", path)
	}

	snapshot := domain.NewDailySnapshot(today)
	for {
		record, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}

		row := domain.HouseNumberRow{
			Postcode:    table.Field(record, domain.ExtractPostcodeColumn),
			City:        table.Field(record, domain.ExtractCityColumn),
			Street:      table.Field(record, domain.ExtractStreetColumn),
			Housenumber: table.Field(record, domain.ExtractHousenumberColumn),
			User:        table.Field(record, domain.ExtractUserColumn),
		}
		cityKey, err := p.settlements.CityKey(ctx, row.Postcode, row.City)
		if err != nil {
			return nil, err
		}
		snapshot.Add(row, cityKey)
	}
	return snapshot, nil
}

// updateRefCount sums the reference city counts into ref.count.
func (p *Pipeline) updateRefCount() error {
	f, err := p.fs.Open(p.paths.CityCounts)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", p.paths.CityCounts)
	}
	defer func() { _ = f.Close() }()

	table, err := domain.NewTableReader(bufio.NewReader(f))
	if err != nil {
		return zerr.With(err, "path", p.paths.CityCounts)
	}
	if err := table.Require(domain.CityCountsCountColumn); err != nil {
		return zerr.With(err, "path", p.paths.CityCounts)
	}

	total := 0
	for {
		record, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return zerr.With(err, "path", p.paths.CityCounts)
		}
		n, err := strconv.Atoi(table.Field(record, domain.CityCountsCountColumn))
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrTableMalformed.Error()), "path", p.paths.CityCounts)
		}
		total += n
	}

	return fs.WriteString(p.fs, p.layout.RefCount(), strconv.Itoa(total)+"\n")
}

// formatGroups renders groups under a title column. An empty key is printed
// as emptyLabel when one is given.
func formatGroups(title string, groups []domain.GroupCount, emptyLabel string) string {
	var b strings.Builder
	b.WriteString(title + "\tCNT\n")
	for _, g := range groups {
		key := g.Key
		if key == "" && emptyLabel != "" {
			key = emptyLabel
		}
		b.WriteString(key + "\t" + strconv.Itoa(g.Count) + "\n")
	}
	return b.String()
}

func formatTopUsers(users []domain.UserCount) string {
	var b strings.Builder
	b.WriteString("CNT\tUSER\n")
	for _, u := range users {
		b.WriteString(strconv.Itoa(u.Count) + "\t" + u.User + "\n")
	}
	return b.String()
}
