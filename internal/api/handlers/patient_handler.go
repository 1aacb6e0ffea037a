package handlers

import (
	"context"
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// PatientService defines the interface for patient store operations
type PatientService interface {
	Fetch(ctx context.Context) error
	Patients() []entities.Patient
	PatientByID(id string) (entities.Patient, bool)
	Loading() bool
	Err() string
}

// PatientHandler handles patient requests
type PatientHandler struct {
	service PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Fetch handles POST /api/patients/fetch: it loads the collection from the
// backend and returns the fresh state.
func (h *PatientHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Fetch(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	h.List(w, r)
}

// List handles GET /api/patients
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients := h.service.Patients()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients":  patients,
		"count":     len(patients),
		"isLoading": h.service.Loading(),
		"error":     h.service.Err(),
	})
}

// GetPatient handles GET /api/patients/{id}
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	patient, found := h.service.PatientByID(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "patient not found")
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}
