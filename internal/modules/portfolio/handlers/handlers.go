// Package handlers provides HTTP handlers for portfolio views.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aristath/folio/internal/modules/allocation"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// ContentTypeMsgpack is negotiated through the Accept header
const ContentTypeMsgpack = "application/msgpack"

// Handler handles portfolio HTTP requests
type Handler struct {
	service *portfolio.Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *portfolio.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetView returns derived assets, both allocation breakdowns and the summary.
// Clients sending Accept: application/msgpack get a msgpack body.
func (h *Handler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	view := h.service.View()
	if wantsMsgpack(r) {
		h.writeMsgpack(w, http.StatusOK, view)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// HandleGetSummary returns the header figures
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Summary())
}

// HandleGetAllocations returns the buckets of the {dimension} path parameter
func (h *Handler) HandleGetAllocations(w http.ResponseWriter, r *http.Request) {
	dim, ok := allocation.ParseDimension(chi.URLParam(r, "dimension"))
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown allocation dimension")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimension": dim,
		"buckets":   h.service.Allocations(dim),
	})
}

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), ContentTypeMsgpack)
}

func (h *Handler) writeMsgpack(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode msgpack response")
		h.writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Error().Err(err).Msg("Failed to write msgpack response")
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
