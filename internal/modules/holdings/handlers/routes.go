package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all holdings routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assets", func(r chi.Router) {
		r.Get("/", h.HandleListAssets)   // Derived assets, sorted
		r.Post("/", h.HandleCreateAsset) // Add holding

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetAsset)
			r.Patch("/", h.HandleUpdateAsset) // Partial update
			r.Delete("/", h.HandleDeleteAsset)
		})
	})
}
