package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// TopKeywordsLimit is the number of records RankKeywords returns at most.
const TopKeywordsLimit = 5

// RankField names the numeric field keyword records are ranked by.
type RankField string

const (
	RankByConversions     RankField = "conversions"
	RankByClicks          RankField = "clicks"
	RankByImpressions     RankField = "impressions"
	RankByCost            RankField = "cost"
	RankByConversionValue RankField = "conversion_value"
	RankByCTR             RankField = "ctr"
)

// ParseRankField resolves a field name. The empty string selects
// RankByConversions.
func ParseRankField(s string) (RankField, error) {
	switch f := RankField(s); f {
	case "":
		return RankByConversions, nil
	case RankByConversions, RankByClicks, RankByImpressions, RankByCost, RankByConversionValue, RankByCTR:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown rank field %q", ErrInvalidInput, s)
}

func (f RankField) value(s KeywordStats) decimal.Decimal {
	switch f {
	case RankByClicks:
		return decimal.NewFromInt(s.Clicks)
	case RankByImpressions:
		return decimal.NewFromInt(s.Impressions)
	case RankByCost:
		return s.Cost
	case RankByConversionValue:
		return s.ConversionValue
	case RankByCTR:
		return s.CTR
	default:
		return s.Conversions
	}
}

// RankKeywords returns up to TopKeywordsLimit records sorted by field in
// descending order. The sort is stable, so ties keep their input order. The
// input slice is not modified.
func RankKeywords(stats []KeywordStats, field RankField) []KeywordStats {
	ranked := slices.Clone(stats)
	slices.SortStableFunc(ranked, func(a, b KeywordStats) int {
		return field.value(b).Cmp(field.value(a))
	})
	if len(ranked) > TopKeywordsLimit {
		ranked = ranked[:TopKeywordsLimit]
	}
	return ranked
}
