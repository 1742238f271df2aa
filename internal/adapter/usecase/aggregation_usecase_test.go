package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var runDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func googleTarget(campaignID int64, keywords map[string]int64) port.SyncTarget {
	return port.SyncTarget{
		Campaign: domain.Campaign{ID: campaignID, PlatformCampaignID: "111", Status: domain.CampaignActive},
		Account:  domain.AdAccount{ID: 1, Platform: domain.PlatformGoogle, CustomerID: "1234567890"},
		Keywords: keywords,
	}
}

type recordedRun struct {
	report  *domain.AggregationReport
	elapsed time.Duration
	err     error
}

type fakeObserver struct{ runs []recordedRun }

func (f *fakeObserver) ObserveAggregation(report *domain.AggregationReport, elapsed time.Duration, err error) {
	f.runs = append(f.runs, recordedRun{report: report, elapsed: elapsed, err: err})
}

// TestAggregationStoresMatchedRows checks normalisation, matching and that
// the stored keyword rows sum to the campaign total.
func TestAggregationStoresMatchedRows(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)
	obs := &fakeObserver{}

	target := googleTarget(7, map[string]int64{"9001": 70, "9002": 71})
	repo.EXPECT().ListSyncTargets(mock.Anything).Return([]port.SyncTarget{target}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, target.Account, target.Campaign, runDate).
		Return([]domain.RawKeywordMetrics{
			{PlatformKeywordID: "9001", Date: runDate, Impressions: 100, Clicks: 10, CostMicros: 5_000_000, Conversions: dec("2"), ConversionValue: dec("20")},
			{PlatformKeywordID: "9002", Date: runDate, Impressions: 200, Clicks: 30, CostMicros: 15_000_000, Conversions: dec("3"), ConversionValue: dec("45.5")},
			{PlatformKeywordID: "untracked", Date: runDate, Impressions: 999, Clicks: 99},
			{PlatformKeywordID: "9001", Date: runDate, Impressions: -1},
		}, nil)

	var saved []domain.KeywordPerformance
	repo.EXPECT().
		SaveDailyPerformance(mock.Anything, runDate, mock.Anything, []int64{7}).
		Run(func(_ context.Context, _ time.Time, rows []domain.KeywordPerformance, _ []int64) {
			saved = rows
		}).
		Return(nil)

	svc := NewAggregationUseCase(repo, source, nil, obs, discard)
	report, err := svc.RunDaily(context.Background(), runDate.Add(15*time.Hour))
	require.NoError(t, err)

	require.Equal(t, 1, report.Campaigns)
	require.Equal(t, 4, report.RowsFetched)
	require.Equal(t, 2, report.RowsStored)
	require.Equal(t, 1, report.RowsUnmatched)
	require.Equal(t, 1, report.RowsRejected)
	require.NotEmpty(t, report.RunID)
	require.True(t, report.Date.Equal(runDate))

	require.Len(t, saved, 2)
	require.EqualValues(t, 70, saved[0].KeywordID)
	require.True(t, saved[0].Cost.Equal(dec("5")))
	require.True(t, saved[1].Cost.Equal(dec("15")))

	var total domain.Metrics
	for _, kp := range saved {
		require.True(t, kp.Date.Equal(runDate))
		total = total.Add(kp.Metrics)
	}
	require.EqualValues(t, 300, total.Impressions)
	require.EqualValues(t, 40, total.Clicks)
	require.True(t, total.Cost.Equal(dec("20")))
	require.True(t, total.Conversions.Equal(dec("5")))

	require.Len(t, obs.runs, 1)
	require.NoError(t, obs.runs[0].err)
	require.Same(t, report, obs.runs[0].report)
}

func TestAggregationSourceFailureWritesNothing(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)
	obs := &fakeObserver{}

	first := googleTarget(1, map[string]int64{"a": 10})
	second := googleTarget(2, map[string]int64{"b": 20})
	second.Campaign.PlatformCampaignID = "222"

	repo.EXPECT().ListSyncTargets(mock.Anything).Return([]port.SyncTarget{first, second}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, first.Account, first.Campaign, runDate).
		Return([]domain.RawKeywordMetrics{{PlatformKeywordID: "a", Impressions: 1}}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, second.Account, second.Campaign, runDate).
		Return(nil, errors.New("503 from platform"))

	svc := NewAggregationUseCase(repo, source, nil, obs, discard)
	report, err := svc.RunDaily(context.Background(), runDate)
	if err == nil {
		t.Fatalf("expected source failure to abort the run")
	}
	if report != nil {
		t.Fatalf("expected no report, got %+v", report)
	}
	repo.AssertNotCalled(t, "SaveDailyPerformance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	require.Len(t, obs.runs, 1)
	require.Error(t, obs.runs[0].err)
}

func TestAggregationSkipsUnsupportedPlatforms(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)

	meta := googleTarget(3, nil)
	meta.Account.Platform = domain.PlatformMeta
	google := googleTarget(4, map[string]int64{"k": 40})

	repo.EXPECT().ListSyncTargets(mock.Anything).Return([]port.SyncTarget{meta, google}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, meta.Account, meta.Campaign, runDate).
		Return(nil, port.ErrUnsupportedPlatform)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, google.Account, google.Campaign, runDate).
		Return(nil, nil)
	// skipped campaigns still get their (zero) total recomputed
	repo.EXPECT().
		SaveDailyPerformance(mock.Anything, runDate, []domain.KeywordPerformance(nil), []int64{3, 4}).
		Return(nil)

	report, err := NewAggregationUseCase(repo, source, nil, nil, discard).RunDaily(context.Background(), runDate)
	require.NoError(t, err)
	require.Equal(t, 1, report.SkippedCampaigns)
	require.Equal(t, 0, report.RowsStored)
}

func TestAggregationDuplicateRowsLastWins(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)

	target := googleTarget(5, map[string]int64{"k": 50})
	repo.EXPECT().ListSyncTargets(mock.Anything).Return([]port.SyncTarget{target}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RawKeywordMetrics{
			{PlatformKeywordID: "k", Impressions: 1},
			{PlatformKeywordID: "k", Impressions: 2},
		}, nil)
	repo.EXPECT().
		SaveDailyPerformance(mock.Anything, runDate, mock.MatchedBy(func(rows []domain.KeywordPerformance) bool {
			return len(rows) == 1 && rows[0].Impressions == 2
		}), []int64{5}).
		Return(nil)

	report, err := NewAggregationUseCase(repo, source, nil, nil, discard).RunDaily(context.Background(), runDate)
	require.NoError(t, err)
	require.Equal(t, 1, report.RowsStored)
}

func TestAggregationUnmatchedInvalidRowIsNotRejected(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)

	target := googleTarget(5, map[string]int64{"k": 50})
	repo.EXPECT().ListSyncTargets(mock.Anything).Return([]port.SyncTarget{target}, nil)
	source.EXPECT().
		FetchKeywordMetrics(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RawKeywordMetrics{
			{PlatformKeywordID: "removed", Impressions: -5, Clicks: -1},
			{PlatformKeywordID: "k", Impressions: 10, Clicks: 1},
		}, nil)
	repo.EXPECT().
		SaveDailyPerformance(mock.Anything, runDate, mock.MatchedBy(func(rows []domain.KeywordPerformance) bool {
			return len(rows) == 1 && rows[0].KeywordID == 50
		}), []int64{5}).
		Return(nil)

	report, err := NewAggregationUseCase(repo, source, nil, nil, discard).RunDaily(context.Background(), runDate)
	require.NoError(t, err)
	require.Equal(t, 2, report.RowsFetched)
	require.Equal(t, 1, report.RowsUnmatched)
	require.Zero(t, report.RowsRejected)
	require.Equal(t, 1, report.RowsStored)
}

func TestAggregationHeldLockSkipsRun(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)
	lock := mocks.NewMockRunLock(t)
	obs := &fakeObserver{}

	lock.EXPECT().Acquire(mock.Anything, "aggregate:2024-03-01").Return(false, nil)

	report, err := NewAggregationUseCase(repo, source, lock, obs, discard).RunDaily(context.Background(), runDate)
	require.NoError(t, err)
	require.True(t, report.Locked)
	require.Len(t, obs.runs, 1)
	require.True(t, obs.runs[0].report.Locked)
}

func TestAggregationReleasesLock(t *testing.T) {
	repo := mocks.NewMockPerformanceRepository(t)
	source := mocks.NewMockMetricsSource(t)
	lock := mocks.NewMockRunLock(t)

	lock.EXPECT().Acquire(mock.Anything, "aggregate:2024-03-01").Return(true, nil)
	lock.EXPECT().Release(mock.Anything, "aggregate:2024-03-01").Return(nil).Once()
	repo.EXPECT().ListSyncTargets(mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewAggregationUseCase(repo, source, lock, nil, discard).RunDaily(context.Background(), runDate)
	require.Error(t, err)
}
