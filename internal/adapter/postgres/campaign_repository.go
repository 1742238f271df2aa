package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `c.id, c.user_id, c.ad_account_id, c.business_profile_id, c.name, c.description,
       c.platform_campaign_id, c.daily_budget, c.total_budget, c.bid_amount, c.campaign_type,
       c.status, c.target_locations, c.target_languages, c.keywords, c.start_date, c.end_date,
       c.created_at, c.updated_at`

// campaignDest returns scan destinations matching campaignColumns.
func campaignDest(c *domain.Campaign) []any {
	return []any{
		&c.ID,
		&c.UserID,
		&c.AdAccountID,
		&c.BusinessProfileID,
		&c.Name,
		&c.Description,
		&c.PlatformCampaignID,
		&c.DailyBudget,
		&c.TotalBudget,
		&c.BidAmount,
		&c.Type,
		&c.Status,
		&c.TargetLocations,
		&c.TargetLanguages,
		&c.Keywords,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

const keywordColumns = `k.id, k.campaign_id, k.keyword_text, k.match_type, k.platform_keyword_id,
       k.bid_amount, k.status, k.created_at, k.updated_at`

func scanKeyword(row scanner, k *domain.Keyword) error {
	return row.Scan(
		&k.ID,
		&k.CampaignID,
		&k.Text,
		&k.MatchType,
		&k.PlatformKeywordID,
		&k.BidAmount,
		&k.Status,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
}

// CreateCampaign inserts the campaign and a keyword row for every entry of
// c.Keywords in a single transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
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

	if c.Keywords == nil {
		c.Keywords = []domain.KeywordSpec{}
	}
	err = tx.QueryRow(ctx, `
        INSERT INTO campaigns
            (user_id, ad_account_id, business_profile_id, name, description, platform_campaign_id,
             daily_budget, total_budget, bid_amount, campaign_type, status, target_locations,
             target_languages, keywords, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`,
		c.UserID, c.AdAccountID, c.BusinessProfileID, c.Name, c.Description, c.PlatformCampaignID,
		c.DailyBudget, c.TotalBudget, c.BidAmount, c.Type, c.Status, c.TargetLocations,
		c.TargetLanguages, c.Keywords, c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	if len(c.Keywords) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, k := range c.Keywords {
		batch.Queue(`INSERT INTO keywords (campaign_id, keyword_text, match_type) VALUES ($1,$2,$3)
        ON CONFLICT (campaign_id, keyword_text, match_type) DO NOTHING`, c.ID, k.Text, k.MatchType)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapError(err)
	}
	return nil
}

// GetCampaign returns the user's campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1 AND c.user_id = $2`, id, userID).
		Scan(campaignDest(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns the user's campaigns newest first. An empty platform
// lists campaigns on every platform.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, userID int64, platform domain.Platform) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns c
        JOIN ad_accounts a ON a.id = c.ad_account_id
        WHERE c.user_id = $1 AND ($2::text = '' OR a.platform = $2::text)
        ORDER BY c.created_at DESC, c.id DESC`, userID, string(platform))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(campaignDest(&c)...)
		return c, err
	})
}

// UpdateCampaignStatus changes the status of the user's campaign.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND user_id = $2`, id, userID, status)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddKeyword inserts a keyword. Adding a keyword that was deleted from the
// campaign revives that row with the new fields. A duplicate of a live
// keyword yields domain.ErrConflict.
func (r *CampaignRepository) AddKeyword(ctx context.Context, k *domain.Keyword) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO keywords (campaign_id, keyword_text, match_type, platform_keyword_id, bid_amount, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (campaign_id, keyword_text, match_type) DO UPDATE SET
            platform_keyword_id = EXCLUDED.platform_keyword_id,
            bid_amount          = EXCLUDED.bid_amount,
            status              = EXCLUDED.status,
            updated_at          = now()
        WHERE keywords.status = $7
        RETURNING id, created_at, updated_at`,
		k.CampaignID, k.Text, k.MatchType, k.PlatformKeywordID, k.BidAmount, k.Status, domain.KeywordDeleted,
	).Scan(&k.ID, &k.CreatedAt, &k.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: keyword %q (%s) already exists", domain.ErrConflict, k.Text, k.MatchType)
	}
	return mapError(err)
}

// GetKeyword returns the keyword when its campaign belongs to the user.
func (r *CampaignRepository) GetKeyword(ctx context.Context, userID, id int64) (*domain.Keyword, error) {
	var k domain.Keyword
	err := scanKeyword(r.pool.QueryRow(ctx, `
        SELECT `+keywordColumns+`
        FROM keywords k
        JOIN campaigns c ON c.id = k.campaign_id
        WHERE k.id = $1 AND c.user_id = $2`, id, userID), &k)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// UpdateKeyword stores the mutable keyword fields.
func (r *CampaignRepository) UpdateKeyword(ctx context.Context, k *domain.Keyword) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE keywords
        SET status = $2, bid_amount = $3, platform_keyword_id = $4, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		k.ID, k.Status, k.BidAmount, k.PlatformKeywordID,
	).Scan(&k.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("keyword %d: %w", k.ID, domain.ErrNotFound)
	}
	return mapError(err)
}

// ListKeywords returns the campaign's keywords in creation order.
func (r *CampaignRepository) ListKeywords(ctx context.Context, campaignID int64) ([]domain.Keyword, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+keywordColumns+` FROM keywords k WHERE k.campaign_id = $1 ORDER BY k.id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Keyword, error) {
		var k domain.Keyword
		err := scanKeyword(row, &k)
		return k, err
	})
}
