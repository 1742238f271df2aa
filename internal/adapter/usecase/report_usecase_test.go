package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func fixedNow() time.Time { return time.Date(2024, 3, 31, 18, 30, 0, 0, time.UTC) }

// TestKeywordPerformanceRatios covers the 100 impressions / 5 clicks /
// 2.50 cost / 0.5 conversions case.
func TestKeywordPerformanceRatios(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	perf := mocks.NewMockPerformanceRepository(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(7)).Return(&domain.Campaign{ID: 7, UserID: 1}, nil)
	perf.EXPECT().KeywordTotalsByCampaign(mock.Anything, int64(7), start, end).Return([]domain.KeywordTotals{
		{KeywordText: "running shoes", MatchType: domain.MatchPhrase, Metrics: domain.Metrics{
			Impressions: 100, Clicks: 5, Cost: dec("2.50"), Conversions: dec("0.5"), ConversionValue: dec("10"),
		}},
		{KeywordText: "shoes", MatchType: domain.MatchBroad},
	}, nil)

	svc := NewReportUseCase(campaigns, perf)
	stats, err := svc.KeywordPerformance(context.Background(), 1, 7, start, end)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	require.True(t, stats[0].CTR.Equal(dec("5")), stats[0].CTR.String())
	require.True(t, stats[0].CPC.Equal(dec("0.5")), stats[0].CPC.String())
	require.True(t, stats[0].CPA.Equal(dec("5")), stats[0].CPA.String())
	require.True(t, stats[0].ROAS.Equal(dec("4")), stats[0].ROAS.String())

	require.True(t, stats[1].CTR.IsZero())
	require.True(t, stats[1].CPC.IsZero())
	require.True(t, stats[1].CPA.IsZero())
}

func TestKeywordPerformanceForeignCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	perf := mocks.NewMockPerformanceRepository(t)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(2), int64(7)).Return(nil, nil)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewReportUseCase(campaigns, perf).KeywordPerformance(context.Background(), 2, 7, day, day)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKeywordPerformanceRejectsInvertedRange(t *testing.T) {
	svc := NewReportUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockPerformanceRepository(t))
	start := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	_, err := svc.KeywordPerformance(context.Background(), 1, 7, start, start.AddDate(0, 0, -1))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKeywordPerformanceForUserDefaultWindow(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	perf.EXPECT().KeywordTotalsByUser(mock.Anything, int64(1), start, end).Return(nil, nil).Twice()

	svc := NewReportUseCase(mocks.NewMockCampaignRepository(t), perf)
	svc.now = fixedNow

	stats, err := svc.KeywordPerformanceForUser(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Empty(t, stats)

	_, err = svc.KeywordPerformanceForUser(context.Background(), 1, 30)
	require.NoError(t, err)
}

func TestTopKeywordsRanksAndTruncates(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	var totals []domain.KeywordTotals
	for i, conv := range []string{"1", "7", "3", "7", "0", "9", "2"} {
		totals = append(totals, domain.KeywordTotals{
			KeywordText: string(rune('a' + i)),
			MatchType:   domain.MatchExact,
			Metrics:     domain.Metrics{Conversions: dec(conv)},
		})
	}
	perf.EXPECT().KeywordTotalsByUser(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(totals, nil)

	svc := NewReportUseCase(mocks.NewMockCampaignRepository(t), perf)
	svc.now = fixedNow

	top, err := svc.TopKeywords(context.Background(), 1, 7, domain.RankByConversions)
	require.NoError(t, err)
	require.Len(t, top, 5)

	var order string
	for _, s := range top {
		order += s.KeywordText
	}
	require.Equal(t, "fbdcg", order)
}

func TestCampaignPerformanceSeries(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	perf := mocks.NewMockPerformanceRepository(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(7)).Return(&domain.Campaign{ID: 7}, nil)
	want := []domain.CampaignPerformance{{CampaignID: 7, Date: day, Metrics: domain.Metrics{Impressions: 300, Clicks: 40}}}
	perf.EXPECT().CampaignDaily(mock.Anything, int64(7), day, day).Return(want, nil)

	got, err := NewReportUseCase(campaigns, perf).CampaignPerformance(context.Background(), 1, 7, day, day)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDashboardBreakdown(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	perf.EXPECT().KeywordTotalsByUser(mock.Anything, int64(1), mock.Anything, mock.Anything).Return([]domain.KeywordTotals{
		{KeywordText: "a", MatchType: domain.MatchExact, Metrics: domain.Metrics{Impressions: 100, Clicks: 10, Cost: dec("10"), ConversionValue: dec("30")}},
		{KeywordText: "b", MatchType: domain.MatchBroad, Metrics: domain.Metrics{Impressions: 300, Clicks: 10, Cost: dec("10"), ConversionValue: dec("10")}},
		{KeywordText: "c", MatchType: domain.MatchExact, Metrics: domain.Metrics{Impressions: 100, Clicks: 0}},
	}, nil)

	svc := NewReportUseCase(mocks.NewMockCampaignRepository(t), perf)
	svc.now = fixedNow

	d, err := svc.Dashboard(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, 30, d.Days)
	require.EqualValues(t, 500, d.Impressions)
	require.True(t, d.CTR.Equal(dec("4")))
	require.True(t, d.ROAS.Equal(dec("2")))

	require.Len(t, d.MatchTypes, 2)
	require.Equal(t, domain.MatchBroad, d.MatchTypes[0].MatchType)
	require.Equal(t, domain.MatchExact, d.MatchTypes[1].MatchType)
	require.True(t, d.MatchTypes[1].CTR.Equal(dec("5")))
	require.True(t, d.MatchTypes[1].ROAS.Equal(dec("3")))
}
