// Package handlers provides HTTP handlers for holdings management.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/holdings"
	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AssetViewer lists derived assets in table order
type AssetViewer interface {
	Assets(field metrics.SortField, direction metrics.SortDirection) ([]domain.DerivedAsset, error)
}

// Handler handles holdings HTTP requests
type Handler struct {
	store  *holdings.Store
	viewer AssetViewer
	log    zerolog.Logger
}

// NewHandler creates a new holdings handler
func NewHandler(store *holdings.Store, viewer AssetViewer, log zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		viewer: viewer,
		log:    log.With().Str("handler", "holdings").Logger(),
	}
}

// HandleListAssets returns derived assets sorted by ?sort= and ?dir=
func (h *Handler) HandleListAssets(w http.ResponseWriter, r *http.Request) {
	field, direction, err := metrics.ParseSort(r.URL.Query().Get("sort"), r.URL.Query().Get("dir"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := h.viewer.Assets(field, direction)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"assets": assets,
		"count":  len(assets),
		"sort":   field,
		"dir":    direction,
	})
}

// HandleCreateAsset adds a holding
func (h *Handler) HandleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var req domain.AssetInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	asset, err := h.store.Create(req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, asset)
}

// HandleGetAsset returns a single raw holding
func (h *Handler) HandleGetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, asset)
}

// HandleUpdateAsset merges the supplied fields into a holding
func (h *Handler) HandleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req domain.AssetUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	asset, err := h.store.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, asset)
}

// HandleDeleteAsset removes a holding
func (h *Handler) HandleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeStoreError maps domain errors to status codes
func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Msg("Holdings operation failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
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
