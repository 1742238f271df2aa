package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adpilot/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Accounts        port.AccountUseCase
	Campaigns       port.CampaignUseCase
	Reports         port.ReportUseCase
	Recommendations port.RecommendationUseCase
	Aggregation     port.AggregationUseCase
}

// Instrumentation records request metrics and serves them. It may be nil.
type Instrumentation interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes under /api/v1 except /admin act on behalf of the user named
// by the X-User-ID header, which an upstream gateway sets after
// authentication. The /admin routes require the admin bearer token.
type Handler struct {
	svc        Services
	metric     Instrumentation
	adminToken string
	logger     *slog.Logger
	router     chi.Router
	now        func() time.Time
}

// NewHandler creates a handler with all routes configured. An empty
// adminToken leaves the admin routes unregistered.
func NewHandler(svc Services, metric Instrumentation, adminToken string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, metric: metric, adminToken: adminToken, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if metric != nil {
		r.Use(h.instrument)
		r.Method(http.MethodGet, "/metrics", metric.Handler())
	}
	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		if h.adminToken != "" {
			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Post("/admin/aggregate", h.handleAggregate)
			})
		}

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Post("/accounts", h.handleConnectAccount)
			r.Get("/accounts", h.handleListAccounts)
			r.Post("/profiles", h.handleCreateProfile)
			r.Get("/profiles", h.handleListProfiles)
			r.Post("/profiles/{id}/recommendations", h.handleKeywordRecommendations)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}/status", h.handleSetCampaignStatus)
			r.Post("/campaigns/{id}/keywords", h.handleAddKeyword)
			r.Get("/campaigns/{id}/keywords/performance", h.handleCampaignKeywordPerformance)
			r.Get("/campaigns/{id}/performance", h.handleCampaignPerformance)

			r.Patch("/keywords/{id}", h.handleUpdateKeyword)
			r.Delete("/keywords/{id}", h.handleDeleteKeyword)

			r.Get("/reports/keywords", h.handleUserKeywordPerformance)
			r.Get("/reports/keywords/top", h.handleTopKeywords)
			r.Get("/reports/dashboard", h.handleDashboard)

			r.Get("/recommendations/analysis", h.handleKeywordAnalysis)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metric.ObserveRequest(r.Method, route, status, time.Since(started))
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
