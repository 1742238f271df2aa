// Package metrics exposes Prometheus instrumentation for the aggregation
// pipeline, the text-generation gateway and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpilot/internal/core/domain"
)

// Metrics holds all collectors of the service.
type Metrics struct {
	gatherer prometheus.Gatherer

	// Aggregation
	AggregationRuns     *prometheus.CounterVec
	AggregationRows     *prometheus.CounterVec
	AggregationSkipped  prometheus.Counter
	AggregationLastRun  prometheus.Gauge
	AggregationDuration prometheus.Histogram

	// Text generation
	Generations       *prometheus.CounterVec
	GenerationLatency prometheus.Histogram

	// HTTP
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(namespace string, reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,

		AggregationRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregation_runs_total",
				Help:      "Daily aggregation runs by outcome",
			},
			[]string{"outcome"},
		),
		AggregationRows: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregation_rows_total",
				Help:      "Platform keyword rows by disposition",
			},
			[]string{"disposition"},
		),
		AggregationSkipped: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregation_skipped_campaigns_total",
				Help:      "Active campaigns without a metrics source",
			},
		),
		AggregationLastRun: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "aggregation_last_success_timestamp_seconds",
				Help:      "Time of the last successful aggregation run",
			},
		),
		AggregationDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_duration_seconds",
				Help:      "Wall time of aggregation runs",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),

		Generations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "text_generations_total",
				Help:      "Text generation calls by outcome",
			},
			[]string{"outcome"},
		),
		GenerationLatency: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "text_generation_duration_seconds",
				Help:      "Latency of text generation calls",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),

		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Handler returns the /metrics handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveAggregation implements port.AggregationObserver.
func (m *Metrics) ObserveAggregation(report *domain.AggregationReport, elapsed time.Duration, err error) {
	m.AggregationDuration.Observe(elapsed.Seconds())
	switch {
	case err != nil:
		m.AggregationRuns.WithLabelValues("failed").Inc()
		return
	case report == nil:
		return
	case report.Locked:
		m.AggregationRuns.WithLabelValues("locked").Inc()
		return
	}
	m.AggregationRuns.WithLabelValues("succeeded").Inc()
	m.AggregationRows.WithLabelValues("stored").Add(float64(report.RowsStored))
	m.AggregationRows.WithLabelValues("unmatched").Add(float64(report.RowsUnmatched))
	m.AggregationRows.WithLabelValues("rejected").Add(float64(report.RowsRejected))
	m.AggregationSkipped.Add(float64(report.SkippedCampaigns))
	m.AggregationLastRun.SetToCurrentTime()
}

// ObserveGeneration implements gemini.Observer.
func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration) {
	m.Generations.WithLabelValues(outcome).Inc()
	m.GenerationLatency.Observe(elapsed.Seconds())
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
