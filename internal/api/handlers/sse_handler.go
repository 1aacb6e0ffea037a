package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
)

const sseHeartbeatInterval = 30 * time.Second

// SSEHandler streams store change events to the view layer over
// Server-Sent Events, so it can subscribe instead of polling
type SSEHandler struct {
	eventBus providers.EventBus
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{eventBus: eventBus}
}

// StreamUpdates handles GET /api/stream/updates: every store change.
func (h *SSEHandler) StreamUpdates(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelStoreUpdates)
}

// StreamEntityUpdates handles GET /api/stream/updates/{entity}: changes of
// one collection only.
func (h *SSEHandler) StreamEntityUpdates(w http.ResponseWriter, r *http.Request) {
	entity := entities.StoreEntity(r.PathValue("entity"))
	switch entity {
	case entities.StoreEntityAuth, entities.StoreEntityPatients,
		entities.StoreEntityAppointments, entities.StoreEntityTranscriptions:
	default:
		respondWithError(w, http.StatusBadRequest, "unknown entity")
		return
	}
	h.stream(w, r, providers.EntityChannel(entity))
}

func (h *SSEHandler) stream(w http.ResponseWriter, r *http.Request, channel string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to subscribe")
		respondWithError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			sendEvent(w, "store-update", event)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}

func sendEvent(w http.ResponseWriter, name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event", name).Msg("failed to marshal SSE payload")
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}
