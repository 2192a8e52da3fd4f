package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/app"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	clock     *clockwork.FakeClock
	stats     *mocks.MockStatsUpdater
	refresher *mocks.MockRelationRefresher
	relations *mocks.MockRelationProvider
	cache     *mocks.MockCachedArtifacts
	logger    *mocks.MockLogger
	metrics   *mocks.MockMetrics
	probe     *mocks.MockMemoryProbe
	unit      *mocks.MockUnit
	app       *app.App
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		clock:     clockwork.NewFakeClockAt(now),
		stats:     mocks.NewMockStatsUpdater(ctrl),
		refresher: mocks.NewMockRelationRefresher(ctrl),
		relations: mocks.NewMockRelationProvider(ctrl),
		cache:     mocks.NewMockCachedArtifacts(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
		probe:     mocks.NewMockMemoryProbe(ctrl),
		unit:      mocks.NewMockUnit(ctrl),
	}
	f.app = app.New(app.Deps{
		Stats:     f.stats,
		Refresher: f.refresher,
		Relations: f.relations,
		Cache:     f.cache,
		Clock:     f.clock,
		Logger:    f.logger,
		Metrics:   f.metrics,
		Probe:     f.probe,
		Unit:      f.unit,
	})
	return f
}

// expectFinish accepts the bookkeeping done at the end of every run.
func (f *fixture) expectFinish() {
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.probe.EXPECT().PeakMemory().Return(uint64(200<<20), nil)
	f.metrics.EXPECT().ObserveRun(gomock.Any(), uint64(200<<20))
	f.metrics.EXPECT().Flush().Return(nil)
}

var midMonth = time.Date(2020, 5, 10, 1, 0, 0, 0, time.UTC)

func TestRun_RelationsMode(t *testing.T) {
	f := newFixture(t, midMonth)
	f.expectFinish()

	f.refresher.EXPECT().Run(gomock.Any(), domain.RelationFilter{
		ActivateNew:   true,
		RefCounty:     "01",
		RefSettlement: "011",
	}, true).Return(nil)
	f.unit.EXPECT().MakeError().Return(nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Mode:          domain.ModeRelations,
		Update:        true,
		Overpass:      true,
		RefCounty:     "01",
		RefSettlement: "011",
	})
	require.NoError(t, err)
}

func TestRun_StatsMode(t *testing.T) {
	f := newFixture(t, midMonth)
	f.expectFinish()

	f.stats.EXPECT().Run(gomock.Any(), false).Return(nil)
	f.unit.EXPECT().MakeError().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeStats}))
}

func TestRun_AllModeRunsStatsFirst(t *testing.T) {
	f := newFixture(t, midMonth)
	f.expectFinish()

	gomock.InOrder(
		f.stats.EXPECT().Run(gomock.Any(), true).Return(nil),
		f.refresher.EXPECT().Run(gomock.Any(), gomock.Any(), false).Return(nil),
	)
	f.unit.EXPECT().MakeError().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeAll, Overpass: true}))
}

func TestRun_StatsFailureSkipsRelations(t *testing.T) {
	f := newFixture(t, midMonth)
	f.expectFinish()

	f.stats.EXPECT().Run(gomock.Any(), true).Return(domain.ErrStatsFailed)

	err := f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeAll, Overpass: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStatsFailed.Error())
}

func TestRun_InvalidMode(t *testing.T) {
	f := newFixture(t, midMonth)

	err := f.app.Run(context.Background(), app.RunOptions{Mode: "everything"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidMode.Error())
}

func TestRun_FirstOfMonthActivatesAll(t *testing.T) {
	f := newFixture(t, time.Date(2020, 6, 1, 1, 0, 0, 0, time.UTC))
	f.expectFinish()

	f.refresher.EXPECT().Run(gomock.Any(), domain.RelationFilter{ActivateAll: true, ActivateNew: true}, true).Return(nil)
	f.unit.EXPECT().MakeError().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeRelations, Update: true}))
}

func TestRun_UpdateInactiveActivatesAll(t *testing.T) {
	f := newFixture(t, midMonth)
	f.app.WithUpdateInactive(true)
	f.expectFinish()

	f.refresher.EXPECT().Run(gomock.Any(), domain.RelationFilter{ActivateAll: true, ActivateNew: true}, true).Return(nil)
	f.unit.EXPECT().MakeError().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeRelations, Update: true}))
}

func TestRun_LogsDurationAndPeakMemory(t *testing.T) {
	f := newFixture(t, midMonth)

	f.refresher.EXPECT().Run(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(context.Context, domain.RelationFilter, bool) error {
			f.clock.Advance(time.Hour + 2*time.Minute + 3*time.Second)
			return nil
		})
	f.probe.EXPECT().PeakMemory().Return(uint64(204800*1024), nil)
	f.metrics.EXPECT().ObserveRun(time.Hour+2*time.Minute+3*time.Second, uint64(204800*1024))
	f.metrics.EXPECT().Flush().Return(nil)
	f.unit.EXPECT().MakeError().Return(nil)

	f.logger.EXPECT().Info("starting", gomock.Any())
	f.logger.EXPECT().Info("peak memory", "vmpeak", "200.0 MB")
	f.logger.EXPECT().Info("finished", "duration", "1:02:03")

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeRelations, Update: true}))
}

func TestRun_FlushFailureMarksUnit(t *testing.T) {
	f := newFixture(t, midMonth)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	f.refresher.EXPECT().Run(gomock.Any(), gomock.Any(), true).Return(nil)
	f.probe.EXPECT().PeakMemory().Return(uint64(0), domain.ErrFileReadFailed)
	f.logger.EXPECT().Warn("peak memory unavailable", gomock.Any())
	f.metrics.EXPECT().ObserveRun(gomock.Any(), uint64(0))
	f.metrics.EXPECT().Flush().Return(domain.ErrFileWriteFailed)
	f.logger.EXPECT().Error(gomock.Any())
	gomock.InOrder(
		f.unit.EXPECT().Fail("metrics flush"),
		f.unit.EXPECT().MakeError().Return(domain.ErrFileWriteFailed),
	)

	err := f.app.Run(context.Background(), app.RunOptions{Mode: domain.ModeRelations, Update: true})
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	f := newFixture(t, midMonth)
	rel := &domain.Relation{Name: "budafok"}

	f.relations.EXPECT().Get(gomock.Any(), "budafok").Return(rel, nil)
	f.cache.EXPECT().Get(gomock.Any(), domain.FamilyAdditionalHousenumbers, rel).Return(`{"count":0}`, nil)

	got, err := f.app.Show(context.Background(), "additional-housenumbers", "budafok")
	require.NoError(t, err)
	assert.Equal(t, `{"count":0}`, got)
}

func TestShow_UnknownFamily(t *testing.T) {
	f := newFixture(t, midMonth)

	_, err := f.app.Show(context.Background(), "lints", "budafok")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCacheFamily.Error())
}

func TestShow_UnknownRelation(t *testing.T) {
	f := newFixture(t, midMonth)

	f.relations.EXPECT().Get(gomock.Any(), "nowhere").Return(nil, domain.ErrRelationNotFound)

	_, err := f.app.Show(context.Background(), "missing-housenumbers", "nowhere")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRelationNotFound.Error())
}
