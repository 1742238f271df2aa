package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
	CampaignEnded  CampaignStatus = "ended"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignEnded:
		return true
	}
	return false
}

// CampaignType is the ad product a campaign runs on.
type CampaignType string

const (
	CampaignSearch   CampaignType = "search"
	CampaignDisplay  CampaignType = "display"
	CampaignVideo    CampaignType = "video"
	CampaignShopping CampaignType = "shopping"
	CampaignApp      CampaignType = "app"
)

// Valid reports whether t is a known campaign type.
func (t CampaignType) Valid() bool {
	switch t {
	case CampaignSearch, CampaignDisplay, CampaignVideo, CampaignShopping, CampaignApp:
		return true
	}
	return false
}

// KeywordSpec is the denormalised keyword entry kept on the campaign row.
type KeywordSpec struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"match_type"`
}

// Campaign represents an advertising campaign on one of the user's ad
// accounts. Budgets and bids are decimal amounts in the account currency.
type Campaign struct {
	ID                 int64               `json:"id"`
	UserID             int64               `json:"user_id"`
	AdAccountID        int64               `json:"ad_account_id"`
	BusinessProfileID  *int64              `json:"business_profile_id,omitempty"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	PlatformCampaignID string              `json:"platform_campaign_id"`
	DailyBudget        decimal.Decimal     `json:"daily_budget"`
	TotalBudget        decimal.NullDecimal `json:"total_budget"`
	BidAmount          decimal.Decimal     `json:"bid_amount"`
	Type               CampaignType        `json:"campaign_type"`
	Status             CampaignStatus      `json:"status"`
	TargetLocations    string              `json:"target_locations"`
	TargetLanguages    string              `json:"target_languages"`
	Keywords           []KeywordSpec       `json:"keywords"`
	StartDate          *time.Time          `json:"start_date,omitempty"`
	EndDate            *time.Time          `json:"end_date,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// Validate fills defaults and checks the campaign invariants that do not
// need storage: non-empty name, known enums and non-negative money fields.
func (c *Campaign) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: campaign name is required", ErrInvalidInput)
	}
	if c.Type == "" {
		c.Type = CampaignSearch
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: unknown campaign type %q", ErrInvalidInput, c.Type)
	}
	if c.Status == "" {
		c.Status = CampaignDraft
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown campaign status %q", ErrInvalidInput, c.Status)
	}
	if c.DailyBudget.IsNegative() {
		return fmt.Errorf("%w: daily budget must not be negative", ErrInvalidInput)
	}
	if c.TotalBudget.Valid && c.TotalBudget.Decimal.IsNegative() {
		return fmt.Errorf("%w: total budget must not be negative", ErrInvalidInput)
	}
	if c.BidAmount.IsNegative() {
		return fmt.Errorf("%w: bid amount must not be negative", ErrInvalidInput)
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	specs := make([]KeywordSpec, 0, len(c.Keywords))
	seen := make(map[KeywordSpec]struct{}, len(c.Keywords))
	for _, k := range c.Keywords {
		k.Text = strings.TrimSpace(k.Text)
		if k.Text == "" {
			continue
		}
		if k.MatchType == "" {
			k.MatchType = MatchBroad
		}
		if !k.MatchType.Valid() {
			return fmt.Errorf("%w: unknown match type %q", ErrInvalidInput, k.MatchType)
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		specs = append(specs, k)
	}
	c.Keywords = specs
	return nil
}
