package httpadapter

import "net/http"

type analysisResponse struct {
	Text string `json:"text"`
}

// handleKeywordAnalysis returns free-form keyword advice for the user.
// Gateway failures map to 502 with the failure kind.
func (h *Handler) handleKeywordAnalysis(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Recommendations.KeywordAnalysis(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, "keyword analysis", err)
		return
	}
	writeJSON(w, http.StatusOK, analysisResponse{Text: text}, h.logger)
}

func (h *Handler) handleKeywordRecommendations(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "keyword recommendations", err)
		return
	}
	rec, err := h.svc.Recommendations.NewKeywordRecommendations(r.Context(), userID(r), profileID)
	if err != nil {
		h.writeError(w, r, "keyword recommendations", err)
		return
	}
	writeJSON(w, http.StatusOK, rec, h.logger)
}
