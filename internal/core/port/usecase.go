package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// AccountUseCase manages ad-account connections and business profiles.
type AccountUseCase interface {
	ConnectAccount(ctx context.Context, acc *domain.AdAccount) error
	ListAccounts(ctx context.Context, userID int64, platform domain.Platform) ([]domain.AdAccount, error)
	CreateProfile(ctx context.Context, p *domain.BusinessProfile) error
	ListProfiles(ctx context.Context, userID int64) ([]domain.BusinessProfile, error)
}

// CampaignUseCase manages campaigns and keywords.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) (*CampaignDetail, error)
	GetCampaign(ctx context.Context, userID, id int64) (*CampaignDetail, error)
	ListCampaigns(ctx context.Context, userID int64, platform domain.Platform) ([]domain.Campaign, error)
	SetCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error
	AddKeyword(ctx context.Context, userID int64, k *domain.Keyword) error
	UpdateKeyword(ctx context.Context, userID, id int64, patch KeywordPatch) (*domain.Keyword, error)
	DeleteKeyword(ctx context.Context, userID, id int64) error
}

// ReportUseCase is the read side over the performance tables.
type ReportUseCase interface {
	// KeywordPerformance aggregates a campaign's keywords over the
	// inclusive [start, end] range.
	KeywordPerformance(ctx context.Context, userID, campaignID int64, start, end time.Time) ([]domain.KeywordStats, error)
	// KeywordPerformanceForUser aggregates all of the user's keywords over
	// the trailing window of days; days <= 0 selects DefaultWindowDays.
	KeywordPerformanceForUser(ctx context.Context, userID int64, days int) ([]domain.KeywordStats, error)
	// TopKeywords ranks KeywordPerformanceForUser by field.
	TopKeywords(ctx context.Context, userID int64, days int, field domain.RankField) ([]domain.KeywordStats, error)
	CampaignPerformance(ctx context.Context, userID, campaignID int64, start, end time.Time) ([]domain.CampaignPerformance, error)
	Dashboard(ctx context.Context, userID int64, days int) (*domain.Dashboard, error)
}

// RecommendationUseCase produces LLM keyword analysis and recommendations.
type RecommendationUseCase interface {
	KeywordAnalysis(ctx context.Context, userID int64) (string, error)
	NewKeywordRecommendations(ctx context.Context, userID, profileID int64) (*domain.KeywordRecommendations, error)
}

// AggregationUseCase runs the daily performance aggregation.
type AggregationUseCase interface {
	// RunDaily aggregates the metrics of every active campaign for date.
	RunDaily(ctx context.Context, date time.Time) (*domain.AggregationReport, error)
}

// DefaultWindowDays is the trailing window used when none is requested.
const DefaultWindowDays = 30

// CampaignDetail is a campaign with its keyword rows.
type CampaignDetail struct {
	Campaign domain.Campaign  `json:"campaign"`
	Keywords []domain.Keyword `json:"keywords"`
}

// KeywordPatch lists the keyword fields a caller may change. Nil fields are
// left untouched.
type KeywordPatch struct {
	Status            *domain.KeywordStatus
	BidAmount         *decimal.NullDecimal
	PlatformKeywordID *string
}
