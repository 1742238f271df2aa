package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDashboard(t *testing.T) {
	stats := []KeywordStats{
		{MatchType: MatchExact, Metrics: Metrics{Impressions: 100, Clicks: 10, Cost: dec("10"), ConversionValue: dec("30")}},
		{MatchType: MatchBroad, Metrics: Metrics{Impressions: 300, Clicks: 6, Cost: dec("6"), Conversions: dec("1")}},
		{MatchType: MatchExact, Metrics: Metrics{Impressions: 100, Clicks: 4, Cost: dec("4"), ConversionValue: dec("12")}},
	}

	d := BuildDashboard(7, stats)

	require.Equal(t, 7, d.Days)
	require.Equal(t, int64(500), d.Impressions)
	require.Equal(t, int64(20), d.Clicks)
	require.True(t, d.Cost.Equal(dec("20")))
	require.True(t, d.CTR.Equal(dec("4")), "ctr %s", d.CTR)
	require.True(t, d.ROAS.Equal(dec("2.1")), "roas %s", d.ROAS)

	require.Len(t, d.MatchTypes, 2)
	require.Equal(t, MatchBroad, d.MatchTypes[0].MatchType)
	require.Equal(t, MatchExact, d.MatchTypes[1].MatchType)
	require.True(t, d.MatchTypes[1].ROAS.Equal(dec("3")))
	require.True(t, d.MatchTypes[0].ROAS.IsZero())
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(30, nil)
	require.Empty(t, d.MatchTypes)
	require.True(t, d.CTR.IsZero())
	require.True(t, d.ROAS.IsZero())
}
