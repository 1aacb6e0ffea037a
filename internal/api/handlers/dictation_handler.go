package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
)

// DictationHandler handles mock dictation requests
type DictationHandler struct {
	provider providers.DictationProvider
}

// NewDictationHandler creates a new dictation handler
func NewDictationHandler(provider providers.DictationProvider) *DictationHandler {
	return &DictationHandler{provider: provider}
}

// Transcribe handles POST /api/dictation. The request carries whatever
// content the editor currently holds; the response carries the transcript
// after one simulated recording segment.
func (h *DictationHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	content, err := h.provider.Transcribe(r.Context(), req.Content)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"content": content,
	})
}
