package httpadapter

import (
	"log/slog"
	"net/http"
	"time"
)

// handleAggregate runs the daily aggregation for ?date=YYYY-MM-DD, or for
// yesterday (UTC) without it. A run already holding the date answers 409.
func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	date := h.now().UTC().AddDate(0, 0, -1)
	if s := r.URL.Query().Get("date"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			h.writeError(w, r, "aggregate", err)
			return
		}
		date = d
	}

	report, err := h.svc.Aggregation.RunDaily(r.Context(), date)
	if err != nil {
		h.writeError(w, r, "aggregate", err)
		return
	}
	h.logger.Info("manual aggregation",
		slog.String("run_id", report.RunID),
		slog.String("date", report.Date.Format(time.DateOnly)),
		slog.Bool("locked", report.Locked),
	)
	status := http.StatusOK
	if report.Locked {
		status = http.StatusConflict
	}
	writeJSON(w, status, report, h.logger)
}
