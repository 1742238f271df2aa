package httpadapter

import (
	"net/http"

	"adpilot/internal/core/domain"
)

// handleCampaignKeywordPerformance returns the campaign's keywords
// aggregated over the inclusive start..end range (YYYY-MM-DD), ordered by
// clicks. Without bounds the last 30 days are used.
func (h *Handler) handleCampaignKeywordPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "keyword performance", err)
		return
	}
	start, end, err := h.queryRange(r)
	if err != nil {
		h.writeError(w, r, "keyword performance", err)
		return
	}
	stats, err := h.svc.Reports.KeywordPerformance(r.Context(), userID(r), id, start, end)
	if err != nil {
		h.writeError(w, r, "keyword performance", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNilStats(stats), h.logger)
}

// handleCampaignPerformance returns the campaign's daily totals.
func (h *Handler) handleCampaignPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "campaign performance", err)
		return
	}
	start, end, err := h.queryRange(r)
	if err != nil {
		h.writeError(w, r, "campaign performance", err)
		return
	}
	days, err := h.svc.Reports.CampaignPerformance(r.Context(), userID(r), id, start, end)
	if err != nil {
		h.writeError(w, r, "campaign performance", err)
		return
	}
	if days == nil {
		days = []domain.CampaignPerformance{}
	}
	writeJSON(w, http.StatusOK, days, h.logger)
}

// handleUserKeywordPerformance aggregates all of the user's keywords over
// the trailing days window.
func (h *Handler) handleUserKeywordPerformance(w http.ResponseWriter, r *http.Request) {
	days, err := queryDays(r)
	if err != nil {
		h.writeError(w, r, "user keyword performance", err)
		return
	}
	stats, err := h.svc.Reports.KeywordPerformanceForUser(r.Context(), userID(r), days)
	if err != nil {
		h.writeError(w, r, "user keyword performance", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNilStats(stats), h.logger)
}

// handleTopKeywords returns the five best keywords by the field named in
// by, conversions when omitted.
func (h *Handler) handleTopKeywords(w http.ResponseWriter, r *http.Request) {
	days, err := queryDays(r)
	if err != nil {
		h.writeError(w, r, "top keywords", err)
		return
	}
	field, err := domain.ParseRankField(r.URL.Query().Get("by"))
	if err != nil {
		h.writeError(w, r, "top keywords", err)
		return
	}
	stats, err := h.svc.Reports.TopKeywords(r.Context(), userID(r), days, field)
	if err != nil {
		h.writeError(w, r, "top keywords", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNilStats(stats), h.logger)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	days, err := queryDays(r)
	if err != nil {
		h.writeError(w, r, "dashboard", err)
		return
	}
	d, err := h.svc.Reports.Dashboard(r.Context(), userID(r), days)
	if err != nil {
		h.writeError(w, r, "dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, d, h.logger)
}

func nonNilStats(stats []domain.KeywordStats) []domain.KeywordStats {
	if stats == nil {
		return []domain.KeywordStats{}
	}
	return stats
}
