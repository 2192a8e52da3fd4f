// Package stats renders the country-level statistics snapshot consumed by the web frontend.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dailyDays     = 14
	monthlyMonths = 12
	monthLayout   = "2006-01"
)

// Snapshot is the document written to stats.json. Pairs are encoded as
// two-element arrays, e.g. ["2020-05-10", 254].
type Snapshot struct {
	Daily        [][2]any `json:"daily"`
	DailyTotal   [][2]any `json:"dailytotal"`
	Monthly      [][2]any `json:"monthly"`
	MonthlyTotal [][2]any `json:"monthlytotal"`
	UserTotal    [][2]any `json:"usertotal"`
	TopUsers     [][2]any `json:"topusers"`
	Progress     Progress `json:"progress"`
}

// Progress compares today's house number count with the reference.
type Progress struct {
	Date       string  `json:"date"`
	Reference  int     `json:"reference"`
	OSM        int     `json:"osm"`
	Percentage float64 `json:"percentage"`
}

// Generator is a ports.SnapshotGenerator.
type Generator struct {
	fs     afero.Fs
	store  ports.Store
	layout domain.StatsLayout
}

var _ ports.SnapshotGenerator = (*Generator)(nil)

// New creates a generator for the stats directory of layout.
func New(fsys afero.Fs, store ports.Store, layout domain.StatsLayout) *Generator {
	return &Generator{fs: fsys, store: store, layout: layout}
}

// Generate writes stats.json for today.
func (g *Generator) Generate(ctx context.Context, today string) error {
	day, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStatsFailed.Error()), "date", today)
	}

	counts, err := g.series(ctx, domain.SeriesHousenumbers)
	if err != nil {
		return err
	}
	users, err := g.series(ctx, domain.SeriesUsers)
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		Daily:        [][2]any{},
		DailyTotal:   [][2]any{},
		Monthly:      [][2]any{},
		MonthlyTotal: [][2]any{},
		UserTotal:    [][2]any{},
	}

	for i := dailyDays - 1; i >= 0; i-- {
		date := day.AddDate(0, 0, -i).Format(domain.DateLayout)
		prev := day.AddDate(0, 0, -i-1).Format(domain.DateLayout)
		if count, ok := counts[date]; ok {
			snapshot.DailyTotal = append(snapshot.DailyTotal, [2]any{date, count})
			if before, ok := counts[prev]; ok {
				snapshot.Daily = append(snapshot.Daily, [2]any{date, count - before})
			}
		}
		if count, ok := users[date]; ok {
			snapshot.UserTotal = append(snapshot.UserTotal, [2]any{date, count})
		}
	}

	monthEnd := monthlyTotals(counts)
	firstOfMonth := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := monthlyMonths - 1; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0).Format(monthLayout)
		prev := firstOfMonth.AddDate(0, -i-1, 0).Format(monthLayout)
		count, ok := monthEnd[month]
		if !ok {
			continue
		}
		snapshot.MonthlyTotal = append(snapshot.MonthlyTotal, [2]any{month, count})
		if before, ok := monthEnd[prev]; ok {
			snapshot.Monthly = append(snapshot.Monthly, [2]any{month, count - before})
		}
	}

	if snapshot.TopUsers, err = g.topUsers(today); err != nil {
		return err
	}
	if snapshot.Progress, err = g.progress(today, counts[today]); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return zerr.Wrap(err, domain.ErrStatsFailed.Error())
	}
	_, err = fs.WriteFile(g.fs, g.layout.JSON(), buf.Bytes())
	return err
}

func (g *Generator) series(ctx context.Context, name domain.CountSeries) (map[string]int, error) {
	rows, err := g.store.Counts(ctx, name)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row.Count
	}
	return byDate, nil
}

// monthlyTotals keeps the count of the last recorded day of each month.
func monthlyTotals(counts map[string]int) map[string]int {
	last := make(map[string]string)
	totals := make(map[string]int)
	for date, count := range counts {
		month := date[:len(monthLayout)]
		if date > last[month] {
			last[month] = date
			totals[month] = count
		}
	}
	return totals
}

func (g *Generator) topUsers(today string) ([][2]any, error) {
	top := [][2]any{}
	path := g.layout.TopUsers(today)
	ok, err := fs.Exists(g.fs, path)
	if err != nil || !ok {
		return top, err
	}

	data, err := fs.ReadFile(g.fs, path)
	if err != nil {
		return nil, err
	}
	for i, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if i == 0 || line == "" {
			continue
		}
		count, user, ok := strings.Cut(line, "\t")
		n, err := strconv.Atoi(count)
		if !ok || err != nil {
			return nil, zerr.With(zerr.With(domain.ErrTableMalformed, "path", path), "line", i+1)
		}
		top = append(top, [2]any{user, n})
	}
	return top, nil
}

func (g *Generator) progress(today string, osm int) (Progress, error) {
	progress := Progress{Date: today, OSM: osm}

	path := g.layout.RefCount()
	ok, err := fs.Exists(g.fs, path)
	if err != nil || !ok {
		return progress, err
	}
	data, err := fs.ReadFile(g.fs, path)
	if err != nil {
		return progress, err
	}
	ref, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return progress, zerr.With(zerr.Wrap(err, domain.ErrTableMalformed.Error()), "path", path)
	}

	progress.Reference = ref
	if ref > 0 {
		progress.Percentage = math.Round(float64(osm)*10000/float64(ref)) / 100
	}
	return progress, nil
}
