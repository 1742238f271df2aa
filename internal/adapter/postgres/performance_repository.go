package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// PerformanceRepository implements port.PerformanceRepository using pgxpool.
// All dates are passed as parameters and compared as SQL dates.
type PerformanceRepository struct {
	pool *pgxpool.Pool
}

// NewPerformanceRepository returns a new repository instance.
func NewPerformanceRepository(pool *pgxpool.Pool) *PerformanceRepository {
	return &PerformanceRepository{pool: pool}
}

// ListSyncTargets loads active campaigns, their ad accounts and the
// platform keyword ids of their keywords. Deleted keywords are left out, so
// rows reported for them are unmatched.
func (r *PerformanceRepository) ListSyncTargets(ctx context.Context) ([]port.SyncTarget, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+campaignColumns+`, `+accountColumns+`
        FROM campaigns c
        JOIN ad_accounts a ON a.id = c.ad_account_id
        WHERE c.status = $1
        ORDER BY c.id`, domain.CampaignActive)
	if err != nil {
		return nil, err
	}
	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SyncTarget, error) {
		var t port.SyncTarget
		dest := campaignDest(&t.Campaign)
		dest = append(dest,
			&t.Account.ID,
			&t.Account.UserID,
			&t.Account.Platform,
			&t.Account.AccountName,
			&t.Account.CustomerID,
			&t.Account.ClientID,
			&t.Account.ClientSecret,
			&t.Account.RefreshToken,
			&t.Account.APIKey,
			&t.Account.DeveloperToken,
			&t.Account.CreatedAt,
			&t.Account.UpdatedAt,
		)
		err := row.Scan(dest...)
		t.Keywords = make(map[string]int64)
		return t, err
	})
	if err != nil || len(targets) == 0 {
		return targets, err
	}

	index := make(map[int64]int, len(targets))
	for i, t := range targets {
		index[t.Campaign.ID] = i
	}
	kwRows, err := r.pool.Query(ctx, `
        SELECT k.campaign_id, k.platform_keyword_id, k.id
        FROM keywords k
        JOIN campaigns c ON c.id = k.campaign_id
        WHERE c.status = $1 AND k.status <> $2 AND k.platform_keyword_id <> ''`,
		domain.CampaignActive, domain.KeywordDeleted)
	if err != nil {
		return nil, err
	}
	var (
		campaignID, keywordID int64
		platformID            string
	)
	_, err = pgx.ForEachRow(kwRows, []any{&campaignID, &platformID, &keywordID}, func() error {
		if i, ok := index[campaignID]; ok {
			targets[i].Keywords[platformID] = keywordID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// SaveDailyPerformance upserts keyword rows and then re-derives each listed
// campaign's total for date from every stored keyword row of that date.
// Campaigns without keyword data get an all-zero total. Running it twice
// with the same input leaves the tables unchanged.
func (r *PerformanceRepository) SaveDailyPerformance(ctx context.Context, date time.Time, rows []domain.KeywordPerformance, campaignIDs []int64) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	if len(rows) > 0 {
		batch := &pgx.Batch{}
		for _, kp := range rows {
			batch.Queue(`
        INSERT INTO keyword_performance
            (keyword_id, date, impressions, clicks, cost, conversions, conversion_value)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (keyword_id, date) DO UPDATE SET
            impressions      = EXCLUDED.impressions,
            clicks           = EXCLUDED.clicks,
            cost             = EXCLUDED.cost,
            conversions      = EXCLUDED.conversions,
            conversion_value = EXCLUDED.conversion_value`,
				kp.KeywordID, kp.Date, kp.Impressions, kp.Clicks, kp.Cost, kp.Conversions, kp.ConversionValue)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapError(err)
		}
	}

	if len(campaignIDs) == 0 {
		return nil
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO campaign_performance
            (campaign_id, date, impressions, clicks, cost, conversions, conversion_value)
        SELECT c.id,
               $2::date,
               COALESCE(SUM(kp.impressions), 0)::bigint,
               COALESCE(SUM(kp.clicks), 0)::bigint,
               COALESCE(SUM(kp.cost), 0),
               COALESCE(SUM(kp.conversions), 0),
               COALESCE(SUM(kp.conversion_value), 0)
        FROM campaigns c
        LEFT JOIN keywords k ON k.campaign_id = c.id
        LEFT JOIN keyword_performance kp ON kp.keyword_id = k.id AND kp.date = $2::date
        WHERE c.id = ANY($1)
        GROUP BY c.id
        ON CONFLICT (campaign_id, date) DO UPDATE SET
            impressions      = EXCLUDED.impressions,
            clicks           = EXCLUDED.clicks,
            cost             = EXCLUDED.cost,
            conversions      = EXCLUDED.conversions,
            conversion_value = EXCLUDED.conversion_value`, campaignIDs, date)
	return mapError(err)
}

const keywordTotalsSelect = `
        SELECT k.keyword_text,
               k.match_type,
               COALESCE(SUM(kp.impressions), 0)::bigint,
               COALESCE(SUM(kp.clicks), 0)::bigint,
               COALESCE(SUM(kp.cost), 0),
               COALESCE(SUM(kp.conversions), 0),
               COALESCE(SUM(kp.conversion_value), 0)
        FROM keyword_performance kp
        JOIN keywords k ON k.id = kp.keyword_id
        JOIN campaigns c ON c.id = k.campaign_id`

const keywordTotalsGroup = `
        GROUP BY k.keyword_text, k.match_type
        ORDER BY SUM(kp.clicks) DESC, k.keyword_text, k.match_type`

// KeywordTotalsByCampaign sums the campaign's keyword metrics over the
// inclusive range per (keyword text, match type).
func (r *PerformanceRepository) KeywordTotalsByCampaign(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.KeywordTotals, error) {
	rows, err := r.pool.Query(ctx, keywordTotalsSelect+`
        WHERE c.id = $1 AND kp.date BETWEEN $2::date AND $3::date`+keywordTotalsGroup, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanKeywordTotals)
}

// KeywordTotalsByUser sums keyword metrics across all of the user's
// campaigns over the inclusive range per (keyword text, match type).
func (r *PerformanceRepository) KeywordTotalsByUser(ctx context.Context, userID int64, start, end time.Time) ([]domain.KeywordTotals, error) {
	rows, err := r.pool.Query(ctx, keywordTotalsSelect+`
        WHERE c.user_id = $1 AND kp.date BETWEEN $2::date AND $3::date`+keywordTotalsGroup, userID, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanKeywordTotals)
}

func scanKeywordTotals(row pgx.CollectableRow) (domain.KeywordTotals, error) {
	var t domain.KeywordTotals
	err := row.Scan(&t.KeywordText, &t.MatchType, &t.Impressions, &t.Clicks, &t.Cost, &t.Conversions, &t.ConversionValue)
	return t, err
}

// CampaignDaily returns stored campaign totals in the inclusive range.
func (r *PerformanceRepository) CampaignDaily(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.CampaignPerformance, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT campaign_id, date, impressions, clicks, cost, conversions, conversion_value
        FROM campaign_performance
        WHERE campaign_id = $1 AND date BETWEEN $2::date AND $3::date
        ORDER BY date`, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignPerformance, error) {
		var cp domain.CampaignPerformance
		err := row.Scan(&cp.CampaignID, &cp.Date, &cp.Impressions, &cp.Clicks, &cp.Cost, &cp.Conversions, &cp.ConversionValue)
		return cp, err
	})
}
