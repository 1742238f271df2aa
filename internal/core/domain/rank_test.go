package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func texts(stats []KeywordStats) []string {
	out := make([]string, 0, len(stats))
	for _, s := range stats {
		out = append(out, s.KeywordText)
	}
	return out
}

func TestRankKeywordsByConversions(t *testing.T) {
	in := []KeywordStats{
		{KeywordText: "k1", Metrics: Metrics{Conversions: decimal.NewFromInt(1)}},
		{KeywordText: "k2", Metrics: Metrics{Conversions: decimal.NewFromInt(7)}},
		{KeywordText: "k3", Metrics: Metrics{Conversions: decimal.NewFromInt(3)}},
		{KeywordText: "k4", Metrics: Metrics{Conversions: decimal.NewFromInt(7)}},
		{KeywordText: "k5", Metrics: Metrics{Conversions: decimal.Zero}},
		{KeywordText: "k6", Metrics: Metrics{Conversions: decimal.RequireFromString("3.5")}},
	}
	orig := texts(in)

	got := RankKeywords(in, RankByConversions)

	require.Equal(t, []string{"k2", "k4", "k6", "k3", "k1"}, texts(got))
	require.Equal(t, orig, texts(in), "input must not be reordered")
}

func TestRankKeywordsOtherFields(t *testing.T) {
	in := []KeywordStats{
		{KeywordText: "cheap", Metrics: Metrics{Clicks: 10, Impressions: 1000, Cost: decimal.NewFromInt(2)}, CTR: decimal.NewFromInt(1)},
		{KeywordText: "pricey", Metrics: Metrics{Clicks: 4, Impressions: 20, Cost: decimal.NewFromInt(9)}, CTR: decimal.NewFromInt(20)},
	}

	require.Equal(t, []string{"cheap", "pricey"}, texts(RankKeywords(in, RankByClicks)))
	require.Equal(t, []string{"cheap", "pricey"}, texts(RankKeywords(in, RankByImpressions)))
	require.Equal(t, []string{"pricey", "cheap"}, texts(RankKeywords(in, RankByCost)))
	require.Equal(t, []string{"pricey", "cheap"}, texts(RankKeywords(in, RankByCTR)))
}

func TestRankKeywordsShortAndEmpty(t *testing.T) {
	require.Empty(t, RankKeywords(nil, RankByConversions))

	in := []KeywordStats{{KeywordText: "only"}}
	require.Equal(t, []string{"only"}, texts(RankKeywords(in, RankByConversions)))
}

func TestParseRankField(t *testing.T) {
	f, err := ParseRankField("")
	require.NoError(t, err)
	require.Equal(t, RankByConversions, f)

	f, err = ParseRankField("ctr")
	require.NoError(t, err)
	require.Equal(t, RankByCTR, f)

	_, err = ParseRankField("bounce_rate")
	require.ErrorIs(t, err, ErrInvalidInput)
}
