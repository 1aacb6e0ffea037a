package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/application/stores"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// TranscriptionService defines the interface for transcription store
// operations
type TranscriptionService interface {
	Fetch(ctx context.Context) error
	Transcriptions() []entities.Transcription
	TranscriptionByID(id string) (entities.Transcription, bool)
	Add(ctx context.Context, draft entities.TranscriptionDraft) (entities.Transcription, error)
	Update(ctx context.Context, id string, patch entities.TranscriptionPatch) error
	AddTag(ctx context.Context, id, tag string) (entities.Transcription, error)
	RemoveTag(ctx context.Context, id, tag string) (entities.Transcription, error)
	Filter(tab stores.StatusTab, term string) []entities.Transcription
	Loading() bool
	Err() string
}

// TranscriptionHandler handles transcription requests
type TranscriptionHandler struct {
	service TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// Fetch handles POST /api/transcriptions/fetch
func (h *TranscriptionHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Fetch(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	h.List(w, r)
}

// List handles GET /api/transcriptions. Optional query parameters: "tab"
// (all, draft, final) and "q" (free-text search over patient name, content
// and tags).
func (h *TranscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	tab, err := stores.ParseStatusTab(r.URL.Query().Get("tab"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	transcriptions := h.service.Filter(tab, r.URL.Query().Get("q"))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transcriptions": transcriptions,
		"count":          len(transcriptions),
		"isLoading":      h.service.Loading(),
		"error":          h.service.Err(),
	})
}

// GetTranscription handles GET /api/transcriptions/{id}
func (h *TranscriptionHandler) GetTranscription(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "transcription ID is required")
		return
	}

	transcription, found := h.service.TranscriptionByID(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "transcription not found")
		return
	}
	respondWithJSON(w, http.StatusOK, transcription)
}

// Create handles POST /api/transcriptions
func (h *TranscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft entities.TranscriptionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.Add(r.Context(), draft)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// Patch handles PATCH /api/transcriptions/{id}. The store treats an absent
// id as a no-op; the handler reports it as 404 so the caller knows nothing
// was written.
func (h *TranscriptionHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "transcription ID is required")
		return
	}

	var patch entities.TranscriptionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		respondWithAppError(w, err)
		return
	}

	updated, found := h.service.TranscriptionByID(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "transcription not found")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// AddTag handles POST /api/transcriptions/{id}/tags
func (h *TranscriptionHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.service.AddTag(r.Context(), id, req.Tag)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// RemoveTag handles DELETE /api/transcriptions/{id}/tags?tag=...
func (h *TranscriptionHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		respondWithError(w, http.StatusBadRequest, "tag query parameter is required")
		return
	}

	updated, err := h.service.RemoveTag(r.Context(), id, tag)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}
