package domain

import (
	"fmt"
	"strings"
	"time"
)

// BusinessProfile describes a user's business. Its descriptive fields are
// only consumed as inputs to keyword prompts.
type BusinessProfile struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"user_id"`
	BusinessName        string    `json:"business_name"`
	WebsiteURL          string    `json:"website_url"`
	Industry            string    `json:"industry"`
	BusinessDescription string    `json:"business_description"`
	ProductsOrServices  string    `json:"products_or_services"`
	TargetAudience      string    `json:"target_audience"`
	TargetLocations     string    `json:"target_locations"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (p *BusinessProfile) Validate() error {
	p.BusinessName = strings.TrimSpace(p.BusinessName)
	p.WebsiteURL = strings.TrimSpace(p.WebsiteURL)
	p.Industry = strings.TrimSpace(p.Industry)
	p.BusinessDescription = strings.TrimSpace(p.BusinessDescription)
	p.ProductsOrServices = strings.TrimSpace(p.ProductsOrServices)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	p.TargetLocations = strings.TrimSpace(p.TargetLocations)
	if p.BusinessName == "" {
		return fmt.Errorf("%w: business name is required", ErrInvalidInput)
	}
	return nil
}
