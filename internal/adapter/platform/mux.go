package platform

import (
	"context"
	"log/slog"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Mux routes requests to the source registered for the account's platform.
type Mux struct {
	sources map[domain.Platform]port.MetricsSource
}

// NewMux returns an empty multiplexer.
func NewMux() *Mux {
	return &Mux{sources: make(map[domain.Platform]port.MetricsSource)}
}

// Handle registers src for platform, replacing any previous source.
func (m *Mux) Handle(platform domain.Platform, src port.MetricsSource) *Mux {
	m.sources[platform] = src
	return m
}

// FetchKeywordMetrics delegates to the platform's source or returns
// port.ErrUnsupportedPlatform when there is none.
func (m *Mux) FetchKeywordMetrics(ctx context.Context, account domain.AdAccount, campaign domain.Campaign, date time.Time) ([]domain.RawKeywordMetrics, error) {
	src, ok := m.sources[account.Platform]
	if !ok {
		return nil, port.ErrUnsupportedPlatform
	}
	return src.FetchKeywordMetrics(ctx, account, campaign, date)
}

// NewSource builds the metrics source for cfg. With FixtureFile set every
// platform reads from that YAML file; otherwise Google Ads campaigns are
// fetched live and other platforms are unsupported.
func NewSource(cfg configs.GoogleAds, logger *slog.Logger) (*Mux, error) {
	m := NewMux()
	if cfg.FixtureFile != "" {
		src, err := LoadFileSource(cfg.FixtureFile)
		if err != nil {
			return nil, err
		}
		logger.Info("using fixture metrics source", slog.String("file", cfg.FixtureFile))
		return m.
			Handle(domain.PlatformGoogle, src).
			Handle(domain.PlatformMeta, src).
			Handle(domain.PlatformAmazon, src), nil
	}
	return m.Handle(domain.PlatformGoogle, NewGoogleAds(cfg, nil, logger)), nil
}
