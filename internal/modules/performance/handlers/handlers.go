// Package handlers provides HTTP handlers for performance history and KPIs.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/folio/internal/modules/performance"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles performance HTTP requests
type Handler struct {
	service *performance.Service
	log     zerolog.Logger
}

// NewHandler creates a new performance handler
func NewHandler(service *performance.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "performance").Logger(),
	}
}

// RegisterRoutes registers all performance routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/history", h.HandleGetHistory) // Portfolio vs benchmark
		r.Get("/kpis", h.HandleGetKPIs)
		r.Get("/widgets", h.HandleGetWidgets) // Optional widgets, per settings
	})
}

// HandleGetHistory returns the weekly portfolio and benchmark values
func (h *Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	history := h.service.History()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": history,
		"count":  len(history),
	})
}

// HandleGetKPIs returns the KPI cards
func (h *Handler) HandleGetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis := h.service.KPIs()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"kpis":              kpis,
		"drawdown_breached": kpis.DrawdownBreached(),
	})
}

// HandleGetWidgets returns the visible optional widgets
func (h *Handler) HandleGetWidgets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Widgets())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
