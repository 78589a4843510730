package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/view", h.HandleGetView)                           // Derived assets + allocations + summary
		r.Get("/summary", h.HandleGetSummary)                     // Header figures
		r.Get("/allocations/{dimension}", h.HandleGetAllocations) // sector | geography
	})
}
