package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies an advertising platform a user can connect.
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
	PlatformAmazon Platform = "amazon"
)

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogle, PlatformMeta, PlatformAmazon:
		return true
	}
	return false
}

// DisplayName returns the human readable platform name, e.g. "Google Ads".
func (p Platform) DisplayName() string {
	switch p {
	case PlatformGoogle:
		return "Google Ads"
	case PlatformMeta:
		return "Meta Ads"
	case PlatformAmazon:
		return "Amazon Ads"
	}
	return string(p)
}

// AdAccount holds a user's connection to one ad platform account together
// with the credentials needed to pull reports from it. Secrets never leave
// the service in API responses.
type AdAccount struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Platform       Platform  `json:"platform"`
	AccountName    string    `json:"account_name"`
	CustomerID     string    `json:"customer_id"`
	ClientID       string    `json:"-"`
	ClientSecret   string    `json:"-"`
	RefreshToken   string    `json:"-"`
	APIKey         string    `json:"-"`
	DeveloperToken string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate normalises identifiers and derives a default account name the
// same way for every platform, e.g. "Google Ads (1234567890)".
func (a *AdAccount) Validate() error {
	if !a.Platform.Valid() {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, a.Platform)
	}
	a.CustomerID = strings.ReplaceAll(strings.TrimSpace(a.CustomerID), "-", "")
	a.AccountName = strings.TrimSpace(a.AccountName)
	if a.AccountName == "" {
		if a.CustomerID == "" {
			return fmt.Errorf("%w: account name or customer id is required", ErrInvalidInput)
		}
		a.AccountName = fmt.Sprintf("%s (%s)", a.Platform.DisplayName(), a.CustomerID)
	}
	return nil
}
