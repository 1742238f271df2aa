package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adpilot/internal/adapter/gemini"
	"adpilot/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain and gateway errors to status codes. Unknown
// errors are logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var gErr *gemini.Error
	switch {
	case errors.As(err, &gErr):
		h.logger.Warn(op+" error", slog.Any("error", err), slog.String("kind", string(gErr.Kind)))
		writeJSON(w, http.StatusBadGateway, errorBody{Error: gErr.Error(), Kind: string(gErr.Kind)}, h.logger)
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "invalid_input"}, h.logger)
	case errors.Is(err, domain.ErrNoPerformanceData):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Kind: "no_performance_data"}, h.logger)
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Kind: "not_found"}, h.logger)
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error(), Kind: "conflict"}, h.logger)
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"}, h.logger)
	}
}
