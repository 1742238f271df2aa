package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"adpilot/internal/core/domain"
)

// FileSource serves keyword metrics from a YAML document, for backfills
// and local runs without platform credentials.
//
//	rows:
//	  - platform_campaign_id: "111"
//	    platform_keyword_id: "9001"
//	    date: 2024-03-01
//	    impressions: 100
//	    clicks: 5
//	    cost_micros: 2500000
//	    conversions: 1
//	    conversion_value: 40
type FileSource struct {
	rows []fileRow
}

type fileRow struct {
	PlatformCampaignID string `yaml:"platform_campaign_id"`
	PlatformKeywordID  string `yaml:"platform_keyword_id"`
	Date               string `yaml:"date"`
	Impressions        int64  `yaml:"impressions"`
	Clicks             int64  `yaml:"clicks"`
	CostMicros         int64  `yaml:"cost_micros"`
	Conversions        string `yaml:"conversions"`
	ConversionValue    string `yaml:"conversion_value"`

	day             time.Time
	conversions     decimal.Decimal
	conversionValue decimal.Decimal
}

// LoadFileSource reads and validates the YAML file at path.
func LoadFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFileSource(f)
}

// ParseFileSource decodes a YAML document from r.
func ParseFileSource(r io.Reader) (*FileSource, error) {
	var doc struct {
		Rows []fileRow `yaml:"rows"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode metrics file: %w", err)
	}
	for i := range doc.Rows {
		row := &doc.Rows[i]
		day, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("metrics file row %d: date: %w", i, err)
		}
		row.day = day
		if row.conversions, err = parseDecimal(row.Conversions); err != nil {
			return nil, fmt.Errorf("metrics file row %d: conversions: %w", i, err)
		}
		if row.conversionValue, err = parseDecimal(row.ConversionValue); err != nil {
			return nil, fmt.Errorf("metrics file row %d: conversion_value: %w", i, err)
		}
	}
	return &FileSource{rows: doc.Rows}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// FetchKeywordMetrics returns the rows of the campaign on date.
func (s *FileSource) FetchKeywordMetrics(_ context.Context, _ domain.AdAccount, campaign domain.Campaign, date time.Time) ([]domain.RawKeywordMetrics, error) {
	var out []domain.RawKeywordMetrics
	for _, r := range s.rows {
		if r.PlatformCampaignID != campaign.PlatformCampaignID || !r.day.Equal(date) {
			continue
		}
		out = append(out, domain.RawKeywordMetrics{
			PlatformKeywordID: r.PlatformKeywordID,
			Date:              r.day,
			Impressions:       r.Impressions,
			Clicks:            r.Clicks,
			CostMicros:        r.CostMicros,
			Conversions:       r.conversions,
			ConversionValue:   r.conversionValue,
		})
	}
	return out, nil
}
