package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/events"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// PortfolioSource provides the view the gauges are computed from
type PortfolioSource interface {
	View() portfolio.View
}

// Metrics holds the Prometheus collectors exported on /metrics
type Metrics struct {
	registry *prometheus.Registry
	source   PortfolioSource

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	holdingsMutations *prometheus.CounterVec
	portfolioValue    prometheus.Gauge
	portfolioPL       prometheus.Gauge
	weightedRisk      prometheus.Gauge
	assetCount        prometheus.Gauge
	allocation        *prometheus.GaugeVec

	log zerolog.Logger
}

// NewMetrics creates a metrics registry with all folio collectors
func NewMetrics(source PortfolioSource, log zerolog.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		source:   source,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		holdingsMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_holdings_mutations_total",
				Help: "Successful holdings mutations by kind",
			},
			[]string{"kind"},
		),
		portfolioValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_portfolio_total_value",
			Help: "Total market value of all holdings",
		}),
		portfolioPL: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_portfolio_unrealized_pl",
			Help: "Total unrealized profit or loss",
		}),
		weightedRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_portfolio_weighted_risk",
			Help: "Value-weighted average risk level (1-10)",
		}),
		assetCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_portfolio_assets",
			Help: "Number of holdings",
		}),
		allocation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "folio_portfolio_allocation_percent",
				Help: "Share of portfolio value per category",
			},
			[]string{"dimension", "category"},
		),
		log: log.With().Str("component", "metrics").Logger(),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.holdingsMutations,
		m.portfolioValue,
		m.portfolioPL,
		m.weightedRisk,
		m.assetCount,
		m.allocation,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Subscribe counts holdings mutations and refreshes gauges when the portfolio changes
func (m *Metrics) Subscribe(bus *events.Bus) func() {
	countMutation := func(event *events.Event) {
		m.holdingsMutations.WithLabelValues(strings.ToLower(string(event.Type))).Inc()
	}

	unsubs := []func(){
		bus.Subscribe(events.AssetCreated, countMutation),
		bus.Subscribe(events.AssetUpdated, countMutation),
		bus.Subscribe(events.AssetDeleted, countMutation),
		bus.Subscribe(events.PortfolioChanged, func(*events.Event) { m.UpdatePortfolioGauges() }),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

// UpdatePortfolioGauges recomputes every portfolio gauge from a fresh view
func (m *Metrics) UpdatePortfolioGauges() {
	if m.source == nil {
		return
	}
	view := m.source.View()

	m.portfolioValue.Set(view.Summary.TotalValue)
	m.portfolioPL.Set(view.Summary.TotalUnrealizedPL)
	m.weightedRisk.Set(view.Summary.WeightedRisk)
	m.assetCount.Set(float64(len(view.Derived)))

	m.allocation.Reset()
	setBuckets(m.allocation, "sector", view.BySector)
	setBuckets(m.allocation, "geography", view.ByGeography)

	m.log.Debug().
		Float64("total_value", view.Summary.TotalValue).
		Int("assets", len(view.Derived)).
		Msg("Portfolio gauges updated")
}

func setBuckets(vec *prometheus.GaugeVec, dimension string, buckets []domain.AllocationBucket) {
	for _, b := range buckets {
		vec.WithLabelValues(dimension, b.Category).Set(b.Value)
	}
}
