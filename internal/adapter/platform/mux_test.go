package platform

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func TestMuxRoutesByPlatform(t *testing.T) {
	google := mocks.NewMockMetricsSource(t)
	want := []domain.RawKeywordMetrics{{PlatformKeywordID: "1"}}
	google.EXPECT().
		FetchKeywordMetrics(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(want, nil).
		Once()

	m := NewMux().Handle(domain.PlatformGoogle, google)

	rows, err := m.FetchKeywordMetrics(context.Background(), domain.AdAccount{Platform: domain.PlatformGoogle}, domain.Campaign{}, time.Now())
	require.NoError(t, err)
	require.Equal(t, want, rows)

	_, err = m.FetchKeywordMetrics(context.Background(), domain.AdAccount{Platform: domain.PlatformMeta}, domain.Campaign{}, time.Now())
	require.ErrorIs(t, err, port.ErrUnsupportedPlatform)
}

func TestNewSourceWithFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	m, err := NewSource(configs.GoogleAds{FixtureFile: path}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows, err := m.FetchKeywordMetrics(context.Background(),
		domain.AdAccount{Platform: domain.PlatformMeta}, domain.Campaign{PlatformCampaignID: "222"}, date)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "9100", rows[0].PlatformKeywordID)
}

func TestNewSourceMissingFixture(t *testing.T) {
	_, err := NewSource(configs.GoogleAds{FixtureFile: filepath.Join(t.TempDir(), "missing.yaml")}, slog.Default())
	require.Error(t, err)
}
