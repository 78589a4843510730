package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/folio/internal/events"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
)

const wsWriteTimeout = 5 * time.Second

// EventsSocketHandler pushes bus events to websocket clients
type EventsSocketHandler struct {
	bus         *events.Bus
	allowOrigin bool
	log         zerolog.Logger
}

// NewEventsSocketHandler creates a websocket event handler. allowAnyOrigin disables the origin check.
func NewEventsSocketHandler(bus *events.Bus, allowAnyOrigin bool, log zerolog.Logger) *EventsSocketHandler {
	return &EventsSocketHandler{
		bus:         bus,
		allowOrigin: allowAnyOrigin,
		log:         log.With().Str("component", "events_ws").Logger(),
	}
}

// ServeHTTP handles GET /api/events/ws?types=A,B
func (h *EventsSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.allowOrigin,
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to accept websocket")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	eventChan, unsubscribe := subscribe(h.bus, r.URL.Query().Get("types"), h.log)
	defer unsubscribe()

	// The client never sends; CloseRead handles control frames and cancels ctx on close
	ctx := conn.CloseRead(r.Context())

	h.log.Info().Msg("Client connected to event socket")

	if err := h.write(ctx, conn, map[string]interface{}{
		"type":    "connected",
		"message": "Connected to event socket",
	}); err != nil {
		return
	}

	heartbeat := time.NewTicker(HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info().Msg("Client disconnected from event socket")
			conn.Close(websocket.StatusNormalClosure, "")
			return

		case event := <-eventChan:
			if err := h.write(ctx, conn, eventPayload(event)); err != nil {
				h.log.Debug().Err(err).Msg("Failed to write event")
				return
			}

		case <-heartbeat.C:
			if err := conn.Ping(ctx); err != nil {
				h.log.Debug().Err(err).Msg("Websocket ping failed")
				return
			}
		}
	}
}

func (h *EventsSocketHandler) write(ctx context.Context, conn *websocket.Conn, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal event")
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
