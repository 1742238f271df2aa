package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SeedDays is the number of trailing days of keyword performance Seed
// generates.
const SeedDays = 14

var seedKeywords = []struct {
	text, matchType, platformID string
}{
	{"running shoes", "exact", "1001"},
	{"trail running shoes", "phrase", "1002"},
	{"buy sneakers online", "broad", "1003"},
	{"marathon training plan", "broad", "1004"},
	{"waterproof trail shoes", "phrase", "1005"},
	{"cheap running shoes", "exact", "1006"},
}

// Seed inserts a demo user with a Google Ads account, a business profile,
// one active campaign with keywords and SeedDays of performance history.
// Running it again refreshes the same rows. It returns the demo user id.
func Seed(ctx context.Context, db *pgxpool.Pool) (int64, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `INSERT INTO users (username, email) VALUES ('demo', 'demo@example.com')
ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email RETURNING id`).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("seed user: %w", err)
	}

	var accountID int64
	err = tx.QueryRow(ctx, `INSERT INTO ad_accounts (user_id, platform, account_name, customer_id)
VALUES ($1, 'google', 'Demo Google Ads', '1234567890')
ON CONFLICT (user_id, platform, account_name) DO UPDATE SET updated_at = now() RETURNING id`,
		userID).Scan(&accountID)
	if err != nil {
		return 0, fmt.Errorf("seed ad account: %w", err)
	}

	var profileID int64
	err = tx.QueryRow(ctx, `INSERT INTO business_profiles
(user_id, business_name, website_url, industry, business_description, products_or_services, target_audience, target_locations)
VALUES ($1, 'Stride Outfitters', 'https://example.com', 'Sporting goods',
        'Independent running store', 'Running shoes, trail shoes, apparel', 'Amateur runners aged 25-45', 'United States')
ON CONFLICT (user_id, business_name) DO UPDATE SET updated_at = now() RETURNING id`,
		userID).Scan(&profileID)
	if err != nil {
		return 0, fmt.Errorf("seed profile: %w", err)
	}

	var campaignID int64
	err = tx.QueryRow(ctx, `INSERT INTO campaigns
(user_id, ad_account_id, business_profile_id, name, platform_campaign_id, daily_budget, bid_amount, status, target_locations, target_languages)
VALUES ($1, $2, $3, 'Spring running sale', '555000111', 50.00, 0.75, 'active', 'United States', 'en')
ON CONFLICT (user_id, ad_account_id, name) DO UPDATE SET status = 'active', updated_at = now() RETURNING id`,
		userID, accountID, profileID).Scan(&campaignID)
	if err != nil {
		return 0, fmt.Errorf("seed campaign: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, k := range seedKeywords {
		var keywordID int64
		err = tx.QueryRow(ctx, `INSERT INTO keywords (campaign_id, keyword_text, match_type, platform_keyword_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (campaign_id, keyword_text, match_type) DO UPDATE SET platform_keyword_id = EXCLUDED.platform_keyword_id
RETURNING id`, campaignID, k.text, k.matchType, k.platformID).Scan(&keywordID)
		if err != nil {
			return 0, fmt.Errorf("seed keyword %q: %w", k.text, err)
		}

		batch := &pgx.Batch{}
		for d := 1; d <= SeedDays; d++ {
			impressions := int64(100 + r.Intn(900))
			clicks := impressions * int64(1+r.Intn(8)) / 100
			cost := decimal.NewFromInt(clicks).Mul(decimal.New(int64(30+r.Intn(90)), -2))
			conversions := decimal.NewFromInt(clicks * int64(r.Intn(15)) / 100)
			value := conversions.Mul(decimal.NewFromInt(int64(40 + r.Intn(80))))
			batch.Queue(`INSERT INTO keyword_performance (keyword_id, date, impressions, clicks, cost, conversions, conversion_value)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (keyword_id, date) DO UPDATE SET impressions = EXCLUDED.impressions, clicks = EXCLUDED.clicks,
    cost = EXCLUDED.cost, conversions = EXCLUDED.conversions, conversion_value = EXCLUDED.conversion_value`,
				keywordID, today.AddDate(0, 0, -d), impressions, clicks, cost, conversions, value)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return 0, fmt.Errorf("seed performance for %q: %w", k.text, err)
		}
	}

	_, err = tx.Exec(ctx, `INSERT INTO campaign_performance (campaign_id, date, impressions, clicks, cost, conversions, conversion_value)
SELECT k.campaign_id, kp.date, SUM(kp.impressions), SUM(kp.clicks), SUM(kp.cost), SUM(kp.conversions), SUM(kp.conversion_value)
FROM keyword_performance kp
JOIN keywords k ON k.id = kp.keyword_id
WHERE k.campaign_id = $1
GROUP BY k.campaign_id, kp.date
ON CONFLICT (campaign_id, date) DO UPDATE SET impressions = EXCLUDED.impressions, clicks = EXCLUDED.clicks,
    cost = EXCLUDED.cost, conversions = EXCLUDED.conversions, conversion_value = EXCLUDED.conversion_value`, campaignID)
	if err != nil {
		return 0, fmt.Errorf("seed campaign performance: %w", err)
	}

	return userID, tx.Commit(ctx)
}
