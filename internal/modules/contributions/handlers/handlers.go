// Package handlers provides HTTP handlers for the contribution plan.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/folio/internal/modules/contributions"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles contribution HTTP requests
type Handler struct {
	service *contributions.Service
	log     zerolog.Logger
}

// NewHandler creates a new contributions handler
func NewHandler(service *contributions.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "contributions").Logger(),
	}
}

// RegisterRoutes registers all contribution routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/contributions", func(r chi.Router) {
		r.Get("/", h.HandleGetPlan)
		r.Post("/split", h.HandleSplit)
	})
}

// HandleGetPlan returns the plan, the monthly goal split and progress
func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan := h.service.Plan()
	lines, err := plan.Split(plan.MonthlyGoal)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"plan":             plan,
		"progress_percent": plan.ProgressPercent(),
		"goal_split":       lines,
	})
}

type splitRequest struct {
	Amount float64 `json:"amount"`
}

// HandleSplit divides a posted amount across the plan
func (h *Handler) HandleSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lines, err := h.service.Split(req.Amount)
	if err != nil {
		if errors.Is(err, contributions.ErrInvalidAmount) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"amount": req.Amount,
		"lines":  lines,
	})
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
