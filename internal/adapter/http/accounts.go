package httpadapter

import (
	"net/http"

	"adpilot/internal/core/domain"
)

type connectAccountRequest struct {
	Platform       domain.Platform `json:"platform"`
	AccountName    string          `json:"account_name"`
	CustomerID     string          `json:"customer_id"`
	ClientID       string          `json:"client_id"`
	ClientSecret   string          `json:"client_secret"`
	RefreshToken   string          `json:"refresh_token"`
	APIKey         string          `json:"api_key"`
	DeveloperToken string          `json:"developer_token"`
}

// handleConnectAccount stores platform credentials for the user. Posting
// the same platform and account name again refreshes the credentials.
func (h *Handler) handleConnectAccount(w http.ResponseWriter, r *http.Request) {
	var req connectAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "connect account", err)
		return
	}
	acc := &domain.AdAccount{
		UserID:         userID(r),
		Platform:       req.Platform,
		AccountName:    req.AccountName,
		CustomerID:     req.CustomerID,
		ClientID:       req.ClientID,
		ClientSecret:   req.ClientSecret,
		RefreshToken:   req.RefreshToken,
		APIKey:         req.APIKey,
		DeveloperToken: req.DeveloperToken,
	}
	if err := h.svc.Accounts.ConnectAccount(r.Context(), acc); err != nil {
		h.writeError(w, r, "connect account", err)
		return
	}
	writeJSON(w, http.StatusCreated, acc, h.logger)
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Accounts.ListAccounts(r.Context(), userID(r), domain.Platform(r.URL.Query().Get("platform")))
	if err != nil {
		h.writeError(w, r, "list accounts", err)
		return
	}
	if accounts == nil {
		accounts = []domain.AdAccount{}
	}
	writeJSON(w, http.StatusOK, accounts, h.logger)
}

type createProfileRequest struct {
	BusinessName        string `json:"business_name"`
	WebsiteURL          string `json:"website_url"`
	Industry            string `json:"industry"`
	BusinessDescription string `json:"business_description"`
	ProductsOrServices  string `json:"products_or_services"`
	TargetAudience      string `json:"target_audience"`
	TargetLocations     string `json:"target_locations"`
}

// handleCreateProfile creates a business profile. A duplicate business
// name for the same user yields 409.
func (h *Handler) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "create profile", err)
		return
	}
	p := &domain.BusinessProfile{
		UserID:              userID(r),
		BusinessName:        req.BusinessName,
		WebsiteURL:          req.WebsiteURL,
		Industry:            req.Industry,
		BusinessDescription: req.BusinessDescription,
		ProductsOrServices:  req.ProductsOrServices,
		TargetAudience:      req.TargetAudience,
		TargetLocations:     req.TargetLocations,
	}
	if err := h.svc.Accounts.CreateProfile(r.Context(), p); err != nil {
		h.writeError(w, r, "create profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, p, h.logger)
}

func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.Accounts.ListProfiles(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, "list profiles", err)
		return
	}
	if profiles == nil {
		profiles = []domain.BusinessProfile{}
	}
	writeJSON(w, http.StatusOK, profiles, h.logger)
}
