package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/application/stores"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout()
	Snapshot() stores.AuthSnapshot
}

// AuthHandler handles auth requests
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := h.service.Login(r.Context(), req.Email, req.Password); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.service.Snapshot())
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Snapshot())
}
