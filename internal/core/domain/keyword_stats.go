package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ratioPlaces is the precision derived ratios are rounded to.
const ratioPlaces = 4

var hundred = decimal.NewFromInt(100)

// KeywordTotals is the sum of a keyword group's metrics over a date range.
// Groups are keyed by keyword text and match type.
type KeywordTotals struct {
	KeywordText string
	MatchType   MatchType
	Metrics
}

// KeywordStats is an aggregated keyword record with derived ratios.
type KeywordStats struct {
	KeywordText string    `json:"keyword_text"`
	MatchType   MatchType `json:"match_type"`
	Metrics
	CTR  decimal.Decimal `json:"ctr"`
	CPC  decimal.Decimal `json:"cpc"`
	CPA  decimal.Decimal `json:"cpa"`
	ROAS decimal.Decimal `json:"roas"`
}

// NewKeywordStats derives CTR, CPC, CPA and ROAS from t. A ratio whose
// denominator is zero is zero.
func NewKeywordStats(t KeywordTotals) KeywordStats {
	return KeywordStats{
		KeywordText: t.KeywordText,
		MatchType:   t.MatchType,
		Metrics:     t.Metrics,
		CTR:         CTR(t.Clicks, t.Impressions),
		CPC:         ratio(t.Cost, decimal.NewFromInt(t.Clicks)),
		CPA:         ratio(t.Cost, t.Conversions),
		ROAS:        ratio(t.ConversionValue, t.Cost),
	}
}

// BuildKeywordStats maps NewKeywordStats over totals, keeping their order.
func BuildKeywordStats(totals []KeywordTotals) []KeywordStats {
	stats := make([]KeywordStats, 0, len(totals))
	for _, t := range totals {
		stats = append(stats, NewKeywordStats(t))
	}
	return stats
}

// CTR returns clicks/impressions*100, or zero without impressions.
func CTR(clicks, impressions int64) decimal.Decimal {
	if impressions == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(clicks).Mul(hundred).DivRound(decimal.NewFromInt(impressions), ratioPlaces)
}

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, ratioPlaces)
}

// SortByClicks orders stats by total clicks, highest first. Ties keep their
// input order.
func SortByClicks(stats []KeywordStats) {
	slices.SortStableFunc(stats, func(a, b KeywordStats) int {
		switch {
		case a.Clicks > b.Clicks:
			return -1
		case a.Clicks < b.Clicks:
			return 1
		}
		return 0
	})
}
