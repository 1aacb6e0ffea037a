package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// Helper functions shared by all handlers

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy onto HTTP statuses.
func respondWithAppError(w http.ResponseWriter, err error) {
	message := apperrors.MessageOf(err)
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, message)
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, message)
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, message)
	case apperrors.ErrorTypeOperation:
		respondWithError(w, http.StatusBadGateway, message)
	default:
		respondWithError(w, http.StatusInternalServerError, message)
	}
}
