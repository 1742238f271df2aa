package port

import (
	"context"
	"errors"
	"time"

	"adpilot/internal/core/domain"
)

// ErrUnsupportedPlatform is returned by a MetricsSource that cannot report
// for the campaign's platform or is missing the platform identifiers.
var ErrUnsupportedPlatform = errors.New("metrics source does not support this campaign")

// MetricsSource fetches one day of raw keyword metrics for a campaign from
// its ad platform. Any error other than ErrUnsupportedPlatform means the
// source is unavailable.
type MetricsSource interface {
	FetchKeywordMetrics(ctx context.Context, account domain.AdAccount, campaign domain.Campaign, date time.Time) ([]domain.RawKeywordMetrics, error)
}

// TextGenerator sends a prompt to a generative-text model and returns the
// text of the first candidate.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PromptBuilder renders the keyword prompts.
type PromptBuilder interface {
	KeywordAnalysis(in domain.PromptInput) (string, error)
	KeywordRecommendations(in domain.PromptInput) (string, error)
}

// RunLock serialises aggregation runs across processes.
type RunLock interface {
	// Acquire returns false without error when someone else holds key.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// AggregationObserver is notified after every aggregation run.
type AggregationObserver interface {
	ObserveAggregation(report *domain.AggregationReport, elapsed time.Duration, err error)
}
