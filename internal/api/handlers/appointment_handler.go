package handlers

import (
	"context"
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// AppointmentService defines the interface for appointment store operations
type AppointmentService interface {
	Fetch(ctx context.Context) error
	Appointments() []entities.Appointment
	AppointmentByID(id string) (entities.Appointment, bool)
	Upcoming() []entities.Appointment
	Recent() []entities.Appointment
	Loading() bool
	Err() string
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Fetch handles POST /api/appointments/fetch
func (h *AppointmentHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Fetch(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	h.List(w, r)
}

// List handles GET /api/appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments := h.service.Appointments()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
		"isLoading":    h.service.Loading(),
		"error":        h.service.Err(),
	})
}

// GetAppointment handles GET /api/appointments/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	appointment, found := h.service.AppointmentByID(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "appointment not found")
		return
	}
	respondWithJSON(w, http.StatusOK, appointment)
}

// Upcoming handles GET /api/appointments/upcoming
func (h *AppointmentHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	appointments := h.service.Upcoming()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// Recent handles GET /api/appointments/recent
func (h *AppointmentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	appointments := h.service.Recent()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}
