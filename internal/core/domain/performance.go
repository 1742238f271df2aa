package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metrics is the canonical metric shape shared by keyword and campaign
// performance rows. Counts are integers, money and conversions are decimals.
type Metrics struct {
	Impressions     int64           `json:"impressions"`
	Clicks          int64           `json:"clicks"`
	Cost            decimal.Decimal `json:"cost"`
	Conversions     decimal.Decimal `json:"conversions"`
	ConversionValue decimal.Decimal `json:"conversion_value"`
}

// Add returns the element-wise sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Impressions:     m.Impressions + o.Impressions,
		Clicks:          m.Clicks + o.Clicks,
		Cost:            m.Cost.Add(o.Cost),
		Conversions:     m.Conversions.Add(o.Conversions),
		ConversionValue: m.ConversionValue.Add(o.ConversionValue),
	}
}

// KeywordPerformance is one day of metrics for one keyword. Rows are unique
// per (keyword, date) and are only ever written by the aggregator.
type KeywordPerformance struct {
	KeywordID int64     `json:"keyword_id"`
	Date      time.Time `json:"date"`
	Metrics
}

// CampaignPerformance is the daily total of a campaign. It always equals the
// sum of the campaign's KeywordPerformance rows for the same date.
type CampaignPerformance struct {
	CampaignID int64     `json:"campaign_id"`
	Date       time.Time `json:"date"`
	Metrics
}

// AggregationReport summarises one aggregation run.
type AggregationReport struct {
	RunID            string    `json:"run_id"`
	Date             time.Time `json:"date"`
	Campaigns        int       `json:"campaigns"`
	SkippedCampaigns int       `json:"skipped_campaigns"`
	RowsFetched      int       `json:"rows_fetched"`
	RowsStored       int       `json:"rows_stored"`
	RowsUnmatched    int       `json:"rows_unmatched"`
	RowsRejected     int       `json:"rows_rejected"`
	// Locked is set when another run for the same date held the run lock
	// and this run did nothing.
	Locked bool `json:"locked"`
}
