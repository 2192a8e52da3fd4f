package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/cmd/cron/commands"
	"go.trai.ch/gimmisn/internal/app"
	"go.trai.ch/gimmisn/internal/build"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	stats     *mocks.MockStatsUpdater
	refresher *mocks.MockRelationRefresher
	relations *mocks.MockRelationProvider
	cache     *mocks.MockCachedArtifacts
	logger    *mocks.MockLogger
	metrics   *mocks.MockMetrics
	probe     *mocks.MockMemoryProbe
	unit      *mocks.MockUnit
	cli       *commands.CLI
	out       *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		stats:     mocks.NewMockStatsUpdater(ctrl),
		refresher: mocks.NewMockRelationRefresher(ctrl),
		relations: mocks.NewMockRelationProvider(ctrl),
		cache:     mocks.NewMockCachedArtifacts(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
		probe:     mocks.NewMockMemoryProbe(ctrl),
		unit:      mocks.NewMockUnit(ctrl),
		out:       &bytes.Buffer{},
	}
	a := app.New(app.Deps{
		Stats:     h.stats,
		Refresher: h.refresher,
		Relations: h.relations,
		Cache:     h.cache,
		Clock:     clockwork.NewFakeClockAt(time.Date(2020, 5, 10, 1, 0, 0, 0, time.UTC)),
		Logger:    h.logger,
		Metrics:   h.metrics,
		Probe:     h.probe,
		Unit:      h.unit,
	})
	h.cli = commands.New(a)
	h.cli.SetOut(h.out)
	return h
}

func (h *harness) expectRun() {
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	h.probe.EXPECT().PeakMemory().Return(uint64(1<<20), nil)
	h.metrics.EXPECT().ObserveRun(gomock.Any(), gomock.Any())
	h.metrics.EXPECT().Flush().Return(nil)
	h.unit.EXPECT().MakeError().Return(nil)
}

func TestRoot_Defaults(t *testing.T) {
	h := newHarness(t)
	h.expectRun()
	h.refresher.EXPECT().Run(gomock.Any(), domain.RelationFilter{ActivateNew: true}, true).Return(nil)

	h.cli.SetArgs([]string{})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRoot_Flags(t *testing.T) {
	h := newHarness(t)
	h.expectRun()
	gomock.InOrder(
		h.stats.EXPECT().Run(gomock.Any(), false).Return(nil),
		h.refresher.EXPECT().Run(gomock.Any(), domain.RelationFilter{
			ActivateNew:   true,
			RefCounty:     "01",
			RefSettlement: "011",
		}, false).Return(nil),
	)

	h.cli.SetArgs([]string{
		"--mode", "all",
		"--no-update",
		"--no-overpass",
		"--refcounty", "01",
		"--refsettlement", "011",
	})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRoot_StatsMode(t *testing.T) {
	h := newHarness(t)
	h.expectRun()
	h.stats.EXPECT().Run(gomock.Any(), true).Return(nil)

	h.cli.SetArgs([]string{"--mode", "stats"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRoot_InvalidMode(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--mode", "everything"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidMode.Error())
}

func TestRoot_RejectsArguments(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"budafok"})
	require.Error(t, h.cli.Execute(context.Background()))
}

func TestRoot_PropagatesRunError(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	h.probe.EXPECT().PeakMemory().Return(uint64(1<<20), nil)
	h.metrics.EXPECT().ObserveRun(gomock.Any(), gomock.Any())
	h.metrics.EXPECT().Flush().Return(nil)
	h.refresher.EXPECT().Run(gomock.Any(), gomock.Any(), true).Return(errors.New("boom"))

	h.cli.SetArgs([]string{})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
}

func TestShow(t *testing.T) {
	h := newHarness(t)
	rel := &domain.Relation{Name: "budafok"}
	h.relations.EXPECT().Get(gomock.Any(), "budafok").Return(rel, nil)
	h.cache.EXPECT().Get(gomock.Any(), domain.FamilyMissingHousenumbers, rel).Return(`{"todo_count":3}`, nil)

	h.cli.SetArgs([]string{"show", "missing-housenumbers", "budafok"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Equal(t, "{\"todo_count\":3}\n", h.out.String())
}

func TestShow_RequiresTwoArguments(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"show", "missing-housenumbers"})
	require.Error(t, h.cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Equal(t, "cron version "+build.Version+"\n", h.out.String())
}
