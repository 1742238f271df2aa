package usecase

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignUseCase manages campaigns and their keywords. Every operation is
// scoped to the calling user; records of other users look missing.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	accounts  port.AccountRepository
	profiles  port.ProfileRepository
}

// NewCampaignUseCase creates the campaign service.
func NewCampaignUseCase(campaigns port.CampaignRepository, accounts port.AccountRepository, profiles port.ProfileRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, accounts: accounts, profiles: profiles}
}

// CreateCampaign validates c, checks that its ad account and business
// profile belong to the user and stores it with one keyword row per entry of c.Keywords.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) (*port.CampaignDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	acc, err := u.accounts.GetAccount(ctx, c.UserID, c.AdAccountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, fmt.Errorf("%w: ad account %d", domain.ErrNotFound, c.AdAccountID)
	}
	if c.BusinessProfileID != nil {
		p, err := u.profiles.GetProfile(ctx, c.UserID, *c.BusinessProfileID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: business profile %d", domain.ErrNotFound, *c.BusinessProfileID)
		}
	}

	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	keywords, err := u.campaigns.ListKeywords(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{Campaign: *c, Keywords: keywords}, nil
}

func (u *CampaignUseCase) campaign(ctx context.Context, userID, id int64) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", domain.ErrNotFound, id)
	}
	return c, nil
}

// GetCampaign returns the campaign with its keyword rows.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, userID, id int64) (*port.CampaignDetail, error) {
	c, err := u.campaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	keywords, err := u.campaigns.ListKeywords(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{Campaign: *c, Keywords: keywords}, nil
}

// ListCampaigns lists the user's campaigns, newest first.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, userID int64, platform domain.Platform) ([]domain.Campaign, error) {
	if platform != "" && !platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidInput, platform)
	}
	return u.campaigns.ListCampaigns(ctx, userID, platform)
}

// SetCampaignStatus moves the campaign to status. Only active campaigns
// take part in the daily aggregation.
func (u *CampaignUseCase) SetCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown campaign status %q", domain.ErrInvalidInput, status)
	}
	return u.campaigns.UpdateCampaignStatus(ctx, userID, id, status)
}

// AddKeyword adds a keyword to one of the user's campaigns.
func (u *CampaignUseCase) AddKeyword(ctx context.Context, userID int64, k *domain.Keyword) error {
	if _, err := u.campaign(ctx, userID, k.CampaignID); err != nil {
		return err
	}
	if err := k.Validate(); err != nil {
		return err
	}
	return u.campaigns.AddKeyword(ctx, k)
}

// UpdateKeyword applies patch to the keyword.
func (u *CampaignUseCase) UpdateKeyword(ctx context.Context, userID, id int64, patch port.KeywordPatch) (*domain.Keyword, error) {
	k, err := u.campaigns.GetKeyword(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%w: keyword %d", domain.ErrNotFound, id)
	}

	if patch.Status != nil {
		k.Status = *patch.Status
	}
	if patch.BidAmount != nil {
		k.BidAmount = *patch.BidAmount
	}
	if patch.PlatformKeywordID != nil {
		k.PlatformKeywordID = *patch.PlatformKeywordID
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if err := u.campaigns.UpdateKeyword(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

// DeleteKeyword marks the keyword deleted. Its performance history is kept.
func (u *CampaignUseCase) DeleteKeyword(ctx context.Context, userID, id int64) error {
	status := domain.KeywordDeleted
	_, err := u.UpdateKeyword(ctx, userID, id, port.KeywordPatch{Status: &status})
	return err
}
