package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MatchType controls how broadly an ad platform matches search queries to a
// keyword.
type MatchType string

const (
	MatchExact              MatchType = "exact"
	MatchPhrase             MatchType = "phrase"
	MatchBroad              MatchType = "broad"
	MatchBroadMatchModifier MatchType = "broad_match_modifier"
)

// Valid reports whether m is a known match type.
func (m MatchType) Valid() bool {
	switch m {
	case MatchExact, MatchPhrase, MatchBroad, MatchBroadMatchModifier:
		return true
	}
	return false
}

type KeywordStatus string

const (
	KeywordActive  KeywordStatus = "active"
	KeywordPaused  KeywordStatus = "paused"
	KeywordDeleted KeywordStatus = "deleted"
)

// Valid reports whether s is a known keyword status.
func (s KeywordStatus) Valid() bool {
	switch s {
	case KeywordActive, KeywordPaused, KeywordDeleted:
		return true
	}
	return false
}

// Keyword is a single tracked keyword of a campaign. PlatformKeywordID is
// the identifier the ad platform reports metrics under; rows that carry an
// unknown identifier are not attributed to any keyword.
type Keyword struct {
	ID                int64               `json:"id"`
	CampaignID        int64               `json:"campaign_id"`
	Text              string              `json:"keyword_text"`
	MatchType         MatchType           `json:"match_type"`
	PlatformKeywordID string              `json:"platform_keyword_id"`
	BidAmount         decimal.NullDecimal `json:"bid_amount"`
	Status            KeywordStatus       `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Validate fills defaults and checks field constraints.
func (k *Keyword) Validate() error {
	k.Text = strings.TrimSpace(k.Text)
	if k.Text == "" {
		return fmt.Errorf("%w: keyword text is required", ErrInvalidInput)
	}
	if len(k.Text) > 100 {
		return fmt.Errorf("%w: keyword text exceeds 100 characters", ErrInvalidInput)
	}
	if k.MatchType == "" {
		k.MatchType = MatchBroad
	}
	if !k.MatchType.Valid() {
		return fmt.Errorf("%w: unknown match type %q", ErrInvalidInput, k.MatchType)
	}
	if k.Status == "" {
		k.Status = KeywordActive
	}
	if !k.Status.Valid() {
		return fmt.Errorf("%w: unknown keyword status %q", ErrInvalidInput, k.Status)
	}
	if k.BidAmount.Valid && k.BidAmount.Decimal.IsNegative() {
		return fmt.Errorf("%w: keyword bid must not be negative", ErrInvalidInput)
	}
	return nil
}
