package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MicrosPerUnit is the number of currency micro-units in one major unit.
const MicrosPerUnit = 1_000_000

// RawKeywordMetrics is a keyword metrics row as reported by an ad platform,
// with cost in integer micro-units.
type RawKeywordMetrics struct {
	PlatformKeywordID string
	Date              time.Time
	Impressions       int64
	Clicks            int64
	CostMicros        int64
	Conversions       decimal.Decimal
	ConversionValue   decimal.Decimal
}

// NormalizeMetrics converts a raw platform row into canonical units. Cost is
// divided by MicrosPerUnit exactly. Negative values are reported as
// ErrNegativeMetric and never clamped.
func NormalizeMetrics(raw RawKeywordMetrics) (Metrics, error) {
	switch {
	case raw.Impressions < 0:
		return Metrics{}, fmt.Errorf("%w: impressions=%d", ErrNegativeMetric, raw.Impressions)
	case raw.Clicks < 0:
		return Metrics{}, fmt.Errorf("%w: clicks=%d", ErrNegativeMetric, raw.Clicks)
	case raw.CostMicros < 0:
		return Metrics{}, fmt.Errorf("%w: cost_micros=%d", ErrNegativeMetric, raw.CostMicros)
	case raw.Conversions.IsNegative():
		return Metrics{}, fmt.Errorf("%w: conversions=%s", ErrNegativeMetric, raw.Conversions)
	case raw.ConversionValue.IsNegative():
		return Metrics{}, fmt.Errorf("%w: conversion_value=%s", ErrNegativeMetric, raw.ConversionValue)
	}
	return Metrics{
		Impressions:     raw.Impressions,
		Clicks:          raw.Clicks,
		Cost:            decimal.New(raw.CostMicros, -6),
		Conversions:     raw.Conversions,
		ConversionValue: raw.ConversionValue,
	}, nil
}
