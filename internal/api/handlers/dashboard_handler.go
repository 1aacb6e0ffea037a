package handlers

import (
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/application/stores"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// The dashboard summary cards show three upcoming appointments and three
// recent transcriptions.
const dashboardCardSize = 3

// DashboardPatientSource is the slice of the patients store the dashboard
// reads
type DashboardPatientSource interface {
	Count() int
}

// DashboardAppointmentSource is the slice of the appointments store the
// dashboard reads
type DashboardAppointmentSource interface {
	Upcoming() []entities.Appointment
}

// DashboardTranscriptionSource is the slice of the transcriptions store the
// dashboard reads
type DashboardTranscriptionSource interface {
	Recent(n int) []entities.Transcription
	Counts() stores.TranscriptionCounts
}

// DashboardHandler aggregates the summary cards into one payload
type DashboardHandler struct {
	patients       DashboardPatientSource
	appointments   DashboardAppointmentSource
	transcriptions DashboardTranscriptionSource
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	patients DashboardPatientSource,
	appointments DashboardAppointmentSource,
	transcriptions DashboardTranscriptionSource,
) *DashboardHandler {
	return &DashboardHandler{
		patients:       patients,
		appointments:   appointments,
		transcriptions: transcriptions,
	}
}

// Summary handles GET /api/dashboard/summary. It is a pure read over the
// stores' current state; the view layer triggers the fetches.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	upcoming := h.appointments.Upcoming()
	if len(upcoming) > dashboardCardSize {
		upcoming = upcoming[:dashboardCardSize]
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patientCount":         h.patients.Count(),
		"upcomingAppointments": upcoming,
		"recentTranscriptions": h.transcriptions.Recent(dashboardCardSize),
		"transcriptionCounts":  h.transcriptions.Counts(),
	})
}
