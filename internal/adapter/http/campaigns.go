package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type createCampaignRequest struct {
	AdAccountID        int64                 `json:"ad_account_id"`
	BusinessProfileID  *int64                `json:"business_profile_id"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	PlatformCampaignID string                `json:"platform_campaign_id"`
	DailyBudget        decimal.Decimal       `json:"daily_budget"`
	TotalBudget        decimal.NullDecimal   `json:"total_budget"`
	BidAmount          decimal.Decimal       `json:"bid_amount"`
	CampaignType       domain.CampaignType   `json:"campaign_type"`
	Status             domain.CampaignStatus `json:"status"`
	TargetLocations    string                `json:"target_locations"`
	TargetLanguages    string                `json:"target_languages"`
	Keywords           []domain.KeywordSpec  `json:"keywords"`
	StartDate          *string               `json:"start_date"`
	EndDate            *string               `json:"end_date"`
}

// handleCreateCampaign creates a campaign and one keyword row per entry of
// keywords.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	start, err := optionalDate(req.StartDate)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	end, err := optionalDate(req.EndDate)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}

	c := &domain.Campaign{
		UserID:             userID(r),
		AdAccountID:        req.AdAccountID,
		BusinessProfileID:  req.BusinessProfileID,
		Name:               req.Name,
		Description:        req.Description,
		PlatformCampaignID: req.PlatformCampaignID,
		DailyBudget:        req.DailyBudget,
		TotalBudget:        req.TotalBudget,
		BidAmount:          req.BidAmount,
		Type:               req.CampaignType,
		Status:             req.Status,
		TargetLocations:    req.TargetLocations,
		TargetLanguages:    req.TargetLanguages,
		Keywords:           req.Keywords,
		StartDate:          start,
		EndDate:            end,
	}
	detail, err := h.svc.Campaigns.CreateCampaign(r.Context(), c)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, detail, h.logger)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), userID(r), domain.Platform(r.URL.Query().Get("platform")))
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns, h.logger)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	detail, err := h.svc.Campaigns.GetCampaign(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}

type statusRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "set campaign status", err)
		return
	}
	var req statusRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "set campaign status", err)
		return
	}
	if err = h.svc.Campaigns.SetCampaignStatus(r.Context(), userID(r), id, req.Status); err != nil {
		h.writeError(w, r, "set campaign status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addKeywordRequest struct {
	Text              string              `json:"keyword_text"`
	MatchType         domain.MatchType    `json:"match_type"`
	PlatformKeywordID string              `json:"platform_keyword_id"`
	BidAmount         decimal.NullDecimal `json:"bid_amount"`
}

func (h *Handler) handleAddKeyword(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "add keyword", err)
		return
	}
	var req addKeywordRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "add keyword", err)
		return
	}
	k := &domain.Keyword{
		CampaignID:        campaignID,
		Text:              req.Text,
		MatchType:         req.MatchType,
		PlatformKeywordID: req.PlatformKeywordID,
		BidAmount:         req.BidAmount,
	}
	if err = h.svc.Campaigns.AddKeyword(r.Context(), userID(r), k); err != nil {
		h.writeError(w, r, "add keyword", err)
		return
	}
	writeJSON(w, http.StatusCreated, k, h.logger)
}

// updateKeywordRequest keeps bid_amount raw so that an explicit null
// clears the bid while an absent field leaves it alone.
type updateKeywordRequest struct {
	Status            *domain.KeywordStatus `json:"status"`
	BidAmount         json.RawMessage       `json:"bid_amount"`
	PlatformKeywordID *string               `json:"platform_keyword_id"`
}

func (req updateKeywordRequest) patch() (port.KeywordPatch, error) {
	p := port.KeywordPatch{Status: req.Status, PlatformKeywordID: req.PlatformKeywordID}
	if len(req.BidAmount) == 0 {
		return p, nil
	}
	var bid decimal.NullDecimal
	if err := bid.UnmarshalJSON(req.BidAmount); err != nil {
		return p, fmt.Errorf("%w: bid_amount: %v", domain.ErrInvalidInput, err)
	}
	p.BidAmount = &bid
	return p, nil
}

func (h *Handler) handleUpdateKeyword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "update keyword", err)
		return
	}
	var req updateKeywordRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "update keyword", err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		h.writeError(w, r, "update keyword", err)
		return
	}
	k, err := h.svc.Campaigns.UpdateKeyword(r.Context(), userID(r), id, patch)
	if err != nil {
		h.writeError(w, r, "update keyword", err)
		return
	}
	writeJSON(w, http.StatusOK, k, h.logger)
}

// handleDeleteKeyword marks the keyword deleted; its history is kept.
func (h *Handler) handleDeleteKeyword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "delete keyword", err)
		return
	}
	if err = h.svc.Campaigns.DeleteKeyword(r.Context(), userID(r), id); err != nil {
		h.writeError(w, r, "delete keyword", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
