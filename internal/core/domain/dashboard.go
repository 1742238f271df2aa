package domain

import "github.com/shopspring/decimal"

// MatchTypeBreakdown is the share of a user's keyword performance attributed
// to one match type.
type MatchTypeBreakdown struct {
	MatchType MatchType `json:"match_type"`
	Metrics
	CTR  decimal.Decimal `json:"ctr"`
	ROAS decimal.Decimal `json:"roas"`
}

// Dashboard is the account overview over a trailing window.
type Dashboard struct {
	Days int `json:"days"`
	Metrics
	CTR        decimal.Decimal      `json:"ctr"`
	ROAS       decimal.Decimal      `json:"roas"`
	MatchTypes []MatchTypeBreakdown `json:"match_types"`
}

var matchTypeOrder = []MatchType{MatchBroad, MatchPhrase, MatchExact, MatchBroadMatchModifier}

// BuildDashboard folds keyword stats into totals and a per-match-type
// breakdown. Match types without data are omitted.
func BuildDashboard(days int, stats []KeywordStats) Dashboard {
	var total Metrics
	byType := make(map[MatchType]Metrics, len(matchTypeOrder))
	for _, s := range stats {
		total = total.Add(s.Metrics)
		byType[s.MatchType] = byType[s.MatchType].Add(s.Metrics)
	}

	d := Dashboard{
		Days:       days,
		Metrics:    total,
		CTR:        CTR(total.Clicks, total.Impressions),
		ROAS:       ratio(total.ConversionValue, total.Cost),
		MatchTypes: make([]MatchTypeBreakdown, 0, len(byType)),
	}
	for _, mt := range matchTypeOrder {
		m, ok := byType[mt]
		if !ok {
			continue
		}
		d.MatchTypes = append(d.MatchTypes, MatchTypeBreakdown{
			MatchType: mt,
			Metrics:   m,
			CTR:       CTR(m.Clicks, m.Impressions),
			ROAS:      ratio(m.ConversionValue, m.Cost),
		})
	}
	return d
}
