package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func newGoogleAdsServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		require.Equal(t, "client-1", r.PostForm.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("POST /v17/customers/1234567890/googleAds:search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		require.Equal(t, "dev-token", r.Header.Get("developer-token"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Query, "FROM keyword_view")
		require.Contains(t, req.Query, "segments.date = '2024-03-01'")
		require.Contains(t, req.Query, "campaign.id = 111")

		switch req.PageToken {
		case "":
			_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"111"},"adGroupCriterion":{"criterionId":"9001"},"segments":{"date":"2024-03-01"},"metrics":{"impressions":"100","clicks":"5","costMicros":"2500000","conversions":1,"conversionsValue":40.5}}],"nextPageToken":"p2"}`))
		case "p2":
			_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"111"},"adGroupCriterion":{"criterionId":"9002"},"segments":{"date":"2024-03-01"},"metrics":{"impressions":"50","clicks":"0"}}]}`))
		default:
			t.Fatalf("unexpected page token %q", req.PageToken)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenCalls
}

func testAccount() domain.AdAccount {
	return domain.AdAccount{
		ID:             1,
		Platform:       domain.PlatformGoogle,
		CustomerID:     "1234567890",
		ClientID:       "client-1",
		ClientSecret:   "secret-1",
		RefreshToken:   "refresh-1",
		DeveloperToken: "dev-token",
	}
}

func TestGoogleAdsFetchesAllPages(t *testing.T) {
	srv, tokenCalls := newGoogleAdsServer(t)
	src := NewGoogleAds(configs.GoogleAds{BaseURL: srv.URL, APIVersion: "v17", TokenURL: srv.URL + "/token"}, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	campaign := domain.Campaign{ID: 7, PlatformCampaignID: "111"}

	rows, err := src.FetchKeywordMetrics(context.Background(), testAccount(), campaign, date)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "9001", rows[0].PlatformKeywordID)
	require.True(t, rows[0].Date.Equal(date))
	require.EqualValues(t, 100, rows[0].Impressions)
	require.EqualValues(t, 5, rows[0].Clicks)
	require.EqualValues(t, 2500000, rows[0].CostMicros)
	require.True(t, rows[0].Conversions.Equal(decimal.NewFromInt(1)))
	require.True(t, rows[0].ConversionValue.Equal(decimal.RequireFromString("40.5")))

	require.Equal(t, "9002", rows[1].PlatformKeywordID)
	require.True(t, rows[1].Conversions.IsZero())

	// the access token is reused for the second campaign
	_, err = src.FetchKeywordMetrics(context.Background(), testAccount(), campaign, date)
	require.NoError(t, err)
	require.Equal(t, 1, *tokenCalls)
}

func TestGoogleAdsRejectsMissingIdentifiers(t *testing.T) {
	src := NewGoogleAds(configs.GoogleAds{BaseURL: "http://unused", APIVersion: "v17"}, nil, slog.Default())
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	acc := testAccount()
	_, err := src.FetchKeywordMetrics(context.Background(), acc, domain.Campaign{}, date)
	require.ErrorIs(t, err, port.ErrUnsupportedPlatform)

	_, err = src.FetchKeywordMetrics(context.Background(), acc, domain.Campaign{PlatformCampaignID: "1 OR 1=1"}, date)
	require.ErrorIs(t, err, port.ErrUnsupportedPlatform)

	acc.CustomerID = ""
	_, err = src.FetchKeywordMetrics(context.Background(), acc, domain.Campaign{PlatformCampaignID: "111"}, date)
	require.ErrorIs(t, err, port.ErrUnsupportedPlatform)
}

func TestGoogleAdsReportsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer","expires_in":3600}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	src := NewGoogleAds(configs.GoogleAds{BaseURL: srv.URL, APIVersion: "v17", TokenURL: srv.URL + "/token"}, srv.Client(), slog.Default())
	_, err := src.FetchKeywordMetrics(context.Background(), testAccount(), domain.Campaign{PlatformCampaignID: "111"}, time.Now())
	require.Error(t, err)
	require.False(t, errors.Is(err, port.ErrUnsupportedPlatform))
	require.Contains(t, err.Error(), "PERMISSION_DENIED")
}
