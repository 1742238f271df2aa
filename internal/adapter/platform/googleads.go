// Package platform fetches raw keyword metrics from ad platforms.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/pkg/httpretry"
)

const adwordsScope = "https://www.googleapis.com/auth/adwords"

const keywordViewQuery = `SELECT campaign.id, ad_group_criterion.criterion_id, segments.date, ` +
	`metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value ` +
	`FROM keyword_view WHERE segments.date = '%s' AND campaign.id = %d`

// GoogleAds pulls keyword_view rows through the Google Ads REST search
// endpoint, authenticating with the ad account's OAuth2 refresh token.
type GoogleAds struct {
	cfg    configs.GoogleAds
	base   *http.Client
	logger *slog.Logger

	mu      sync.Mutex
	clients map[string]httpretry.Doer
}

// NewGoogleAds creates the source. base carries timeouts and transport
// settings for both the token and the API requests.
func NewGoogleAds(cfg configs.GoogleAds, base *http.Client, logger *slog.Logger) *GoogleAds {
	if base == nil {
		base = &http.Client{Timeout: 30 * time.Second}
	}
	return &GoogleAds{cfg: cfg, base: base, logger: logger, clients: make(map[string]httpretry.Doer)}
}

// client returns an authorised client for the account, reusing its token
// source across calls.
func (g *GoogleAds) client(account domain.AdAccount) httpretry.Doer {
	key := fmt.Sprintf("%d:%s", account.ID, account.RefreshToken)

	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.clients[key]; ok {
		return c
	}

	endpoint := google.Endpoint
	if g.cfg.TokenURL != "" {
		endpoint = oauth2.Endpoint{TokenURL: g.cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}
	conf := &oauth2.Config{
		ClientID:     account.ClientID,
		ClientSecret: account.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{adwordsScope},
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, g.base)
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: account.RefreshToken})

	c := httpretry.New(oauth2.NewClient(ctx, ts), 3, httpretry.WithLogger(g.logger))
	g.clients[key] = c
	return c
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchRow struct {
	AdGroupCriterion struct {
		CriterionID string `json:"criterionId"`
	} `json:"adGroupCriterion"`
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
	Metrics struct {
		Impressions      int64           `json:"impressions,string"`
		Clicks           int64           `json:"clicks,string"`
		CostMicros       int64           `json:"costMicros,string"`
		Conversions      decimal.Decimal `json:"conversions"`
		ConversionsValue decimal.Decimal `json:"conversionsValue"`
	} `json:"metrics"`
}

type searchResponse struct {
	Results       []searchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// FetchKeywordMetrics returns one row per keyword criterion reported for
// the campaign on date. Accounts or campaigns without Google identifiers
// yield port.ErrUnsupportedPlatform.
func (g *GoogleAds) FetchKeywordMetrics(ctx context.Context, account domain.AdAccount, campaign domain.Campaign, date time.Time) ([]domain.RawKeywordMetrics, error) {
	if account.Platform != domain.PlatformGoogle || account.CustomerID == "" || campaign.PlatformCampaignID == "" {
		return nil, port.ErrUnsupportedPlatform
	}
	campaignID, err := strconv.ParseInt(campaign.PlatformCampaignID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: platform campaign id %q is not numeric", port.ErrUnsupportedPlatform, campaign.PlatformCampaignID)
	}

	endpoint, err := url.JoinPath(g.cfg.BaseURL, g.cfg.APIVersion, "customers", account.CustomerID+"/googleAds:search")
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(keywordViewQuery, date.Format(time.DateOnly), campaignID)
	client := g.client(account)

	var (
		rows  []domain.RawKeywordMetrics
		token string
	)
	for {
		page, err := g.search(ctx, client, endpoint, account, searchRequest{Query: query, PageToken: token})
		if err != nil {
			return nil, err
		}
		for _, r := range page.Results {
			day, err := time.Parse(time.DateOnly, r.Segments.Date)
			if err != nil {
				return nil, fmt.Errorf("google ads: bad segments.date %q: %w", r.Segments.Date, err)
			}
			rows = append(rows, domain.RawKeywordMetrics{
				PlatformKeywordID: r.AdGroupCriterion.CriterionID,
				Date:              day,
				Impressions:       r.Metrics.Impressions,
				Clicks:            r.Metrics.Clicks,
				CostMicros:        r.Metrics.CostMicros,
				Conversions:       r.Metrics.Conversions,
				ConversionValue:   r.Metrics.ConversionsValue,
			})
		}
		if page.NextPageToken == "" {
			return rows, nil
		}
		token = page.NextPageToken
	}
}

func (g *GoogleAds) search(ctx context.Context, client httpretry.Doer, endpoint string, account domain.AdAccount, body searchRequest) (*searchResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", account.DeveloperToken)
	if g.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", g.cfg.LoginCustomerID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google ads search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("google ads search: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("google ads search: decode response: %w", err)
	}
	return &out, nil
}
