// Package handlers provides HTTP handlers for news and intelligence reports.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/folio/internal/modules/intelligence"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles intelligence HTTP requests
type Handler struct {
	news     *intelligence.NewsRepository
	importer *intelligence.FeedImporter
	reports  *intelligence.ReportService
	log      zerolog.Logger
}

// NewHandler creates a new intelligence handler
func NewHandler(
	news *intelligence.NewsRepository,
	importer *intelligence.FeedImporter,
	reports *intelligence.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		news:     news,
		importer: importer,
		reports:  reports,
		log:      log.With().Str("handler", "intelligence").Logger(),
	}
}

// RegisterRoutes registers all intelligence routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/intelligence", func(r chi.Router) {
		r.Get("/news", h.HandleListNews)
		r.Post("/news/refresh", h.HandleRefreshNews)
		r.Get("/report", h.HandleGetReport)
		r.Post("/report", h.HandleGenerateReport)
	})
}

// HandleListNews returns news items, optionally filtered by category and ticker
func (h *Handler) HandleListNews(w http.ResponseWriter, r *http.Request) {
	var filter intelligence.Filter

	if raw := r.URL.Query().Get("category"); raw != "" {
		category, ok := intelligence.ParseCategory(raw)
		if !ok {
			h.writeError(w, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		filter.Category = category
	}
	filter.Ticker = r.URL.Query().Get("ticker")

	items := h.news.List(filter)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"count":  len(items),
		"import": h.importer.Status(),
	})
}

// HandleRefreshNews pulls the configured feeds
func (h *Handler) HandleRefreshNews(w http.ResponseWriter, r *http.Request) {
	if !h.importer.Enabled() {
		h.writeError(w, http.StatusConflict, "no news feeds configured")
		return
	}

	result, err := h.importer.Refresh(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to refresh news")
		h.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// HandleGenerateReport generates a new report
func (h *Handler) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	state, err := h.reports.Generate(r.Context())
	if err != nil {
		if errors.Is(err, intelligence.ErrRateLimited) {
			w.Header().Set("Retry-After", "60")
			h.writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		h.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// HandleGetReport returns the latest report as JSON state, markdown or HTML
func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	switch format := r.URL.Query().Get("format"); format {
	case "":
		h.writeJSON(w, http.StatusOK, h.reports.Current())
	case "markdown":
		md, err := h.reports.Markdown()
		if err != nil {
			h.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(md))
	case "html":
		html, err := h.reports.HTML()
		if err != nil {
			if errors.Is(err, intelligence.ErrNoReport) {
				h.writeError(w, http.StatusNotFound, err.Error())
				return
			}
			h.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	default:
		h.writeError(w, http.StatusBadRequest, "unknown format: "+format)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
