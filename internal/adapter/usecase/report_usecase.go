package usecase

import (
	"context"
	"fmt"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ReportUseCase answers read queries over the performance tables.
type ReportUseCase struct {
	campaigns port.CampaignRepository
	perf      port.PerformanceRepository
	now       func() time.Time
}

// NewReportUseCase creates the report service.
func NewReportUseCase(campaigns port.CampaignRepository, perf port.PerformanceRepository) *ReportUseCase {
	return &ReportUseCase{campaigns: campaigns, perf: perf, now: time.Now}
}

// window returns the trailing [today-days, today] range in UTC.
func (u *ReportUseCase) window(days int) (start, end time.Time, n int) {
	if days <= 0 {
		days = port.DefaultWindowDays
	}
	y, m, d := u.now().UTC().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -days), end, days
}

func (u *ReportUseCase) ownedCampaign(ctx context.Context, userID, campaignID int64) error {
	c, err := u.campaigns.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %d", domain.ErrNotFound, campaignID)
	}
	return nil
}

func checkRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date is before start date", domain.ErrInvalidInput)
	}
	return nil
}

// KeywordPerformance aggregates the campaign's keywords over [start, end].
func (u *ReportUseCase) KeywordPerformance(ctx context.Context, userID, campaignID int64, start, end time.Time) ([]domain.KeywordStats, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	if err := u.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	totals, err := u.perf.KeywordTotalsByCampaign(ctx, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	return domain.BuildKeywordStats(totals), nil
}

// KeywordPerformanceForUser aggregates every keyword of the user over the
// trailing window.
func (u *ReportUseCase) KeywordPerformanceForUser(ctx context.Context, userID int64, days int) ([]domain.KeywordStats, error) {
	start, end, _ := u.window(days)
	totals, err := u.perf.KeywordTotalsByUser(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return domain.BuildKeywordStats(totals), nil
}

// TopKeywords returns the best keywords of the window ranked by field.
func (u *ReportUseCase) TopKeywords(ctx context.Context, userID int64, days int, field domain.RankField) ([]domain.KeywordStats, error) {
	stats, err := u.KeywordPerformanceForUser(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return domain.RankKeywords(stats, field), nil
}

// CampaignPerformance returns the campaign's daily totals in [start, end].
func (u *ReportUseCase) CampaignPerformance(ctx context.Context, userID, campaignID int64, start, end time.Time) ([]domain.CampaignPerformance, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	if err := u.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	return u.perf.CampaignDaily(ctx, campaignID, start, end)
}

// Dashboard folds the user's keyword window into totals and a match-type
// breakdown.
func (u *ReportUseCase) Dashboard(ctx context.Context, userID int64, days int) (*domain.Dashboard, error) {
	start, end, n := u.window(days)
	totals, err := u.perf.KeywordTotalsByUser(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	d := domain.BuildDashboard(n, domain.BuildKeywordStats(totals))
	return &d, nil
}
