package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// AccountRepository persists ad-platform account connections. Lookups scoped
// by user return nil, nil when the record is missing or owned by someone else.
type AccountRepository interface {
	// UpsertAccount creates the account or updates the credentials of the
	// existing (user, platform, account name) connection.
	UpsertAccount(ctx context.Context, acc *domain.AdAccount) error
	GetAccount(ctx context.Context, userID, id int64) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, userID int64, platform domain.Platform) ([]domain.AdAccount, error)
}

// ProfileRepository persists business profiles.
type ProfileRepository interface {
	// CreateProfile returns domain.ErrConflict when the user already has a
	// profile with the same business name.
	CreateProfile(ctx context.Context, p *domain.BusinessProfile) error
	GetProfile(ctx context.Context, userID, id int64) (*domain.BusinessProfile, error)
	// ListProfiles returns the user's profiles ordered by business name.
	ListProfiles(ctx context.Context, userID int64) ([]domain.BusinessProfile, error)
}

// CampaignRepository persists campaigns and their keywords.
type CampaignRepository interface {
	// CreateCampaign stores the campaign and one keyword row per entry of
	// c.Keywords atomically.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error)
	// ListCampaigns returns the user's campaigns newest first, optionally
	// restricted to one platform.
	ListCampaigns(ctx context.Context, userID int64, platform domain.Platform) ([]domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error

	AddKeyword(ctx context.Context, k *domain.Keyword) error
	// GetKeyword returns the keyword when its campaign belongs to userID.
	GetKeyword(ctx context.Context, userID, id int64) (*domain.Keyword, error)
	UpdateKeyword(ctx context.Context, k *domain.Keyword) error
	ListKeywords(ctx context.Context, campaignID int64) ([]domain.Keyword, error)
}

// PerformanceRepository reads and writes the performance tables.
type PerformanceRepository interface {
	// ListSyncTargets returns every active campaign with its ad account and
	// the keywords metrics can be attributed to.
	ListSyncTargets(ctx context.Context) ([]SyncTarget, error)
	// SaveDailyPerformance upserts the keyword rows for date and then
	// recomputes the campaign totals of campaignIDs for date from the stored
	// keyword rows, in one transaction.
	SaveDailyPerformance(ctx context.Context, date time.Time, rows []domain.KeywordPerformance, campaignIDs []int64) error

	// KeywordTotalsByCampaign sums keyword metrics of one campaign over the
	// inclusive range, grouped by keyword text and match type, ordered by
	// total clicks descending.
	KeywordTotalsByCampaign(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.KeywordTotals, error)
	// KeywordTotalsByUser does the same across all campaigns of a user.
	KeywordTotalsByUser(ctx context.Context, userID int64, start, end time.Time) ([]domain.KeywordTotals, error)
	// CampaignDaily returns the stored campaign totals in the inclusive
	// range, oldest first.
	CampaignDaily(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.CampaignPerformance, error)
}

// SyncTarget is an active campaign prepared for metric attribution.
type SyncTarget struct {
	Campaign domain.Campaign
	Account  domain.AdAccount
	// Keywords maps platform keyword ids to local keyword ids.
	Keywords map[string]int64
}
