package routes

import (
	"net/http"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/api/handlers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler          *handlers.AuthHandler
	patientHandler       *handlers.PatientHandler
	appointmentHandler   *handlers.AppointmentHandler
	transcriptionHandler *handlers.TranscriptionHandler
	dashboardHandler     *handlers.DashboardHandler
	dictationHandler     *handlers.DictationHandler
	sseHandler           *handlers.SSEHandler
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	transcriptionHandler *handlers.TranscriptionHandler,
	dashboardHandler *handlers.DashboardHandler,
	dictationHandler *handlers.DictationHandler,
	sseHandler *handlers.SSEHandler,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:          authHandler,
		patientHandler:       patientHandler,
		appointmentHandler:   appointmentHandler,
		transcriptionHandler: transcriptionHandler,
		dashboardHandler:     dashboardHandler,
		dictationHandler:     dictationHandler,
		sseHandler:           sseHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/auth/session", r.authHandler.Session)

	// Patient endpoints
	r.mux.HandleFunc("POST /api/patients/fetch", r.patientHandler.Fetch)
	r.mux.HandleFunc("GET /api/patients", r.patientHandler.List)
	r.mux.HandleFunc("GET /api/patients/{id}", r.patientHandler.GetPatient)

	// Appointment endpoints
	r.mux.HandleFunc("POST /api/appointments/fetch", r.appointmentHandler.Fetch)
	r.mux.HandleFunc("GET /api/appointments", r.appointmentHandler.List)
	r.mux.HandleFunc("GET /api/appointments/upcoming", r.appointmentHandler.Upcoming)
	r.mux.HandleFunc("GET /api/appointments/recent", r.appointmentHandler.Recent)
	r.mux.HandleFunc("GET /api/appointments/{id}", r.appointmentHandler.GetAppointment)

	// Transcription endpoints
	r.mux.HandleFunc("POST /api/transcriptions/fetch", r.transcriptionHandler.Fetch)
	r.mux.HandleFunc("GET /api/transcriptions", r.transcriptionHandler.List)
	r.mux.HandleFunc("POST /api/transcriptions", r.transcriptionHandler.Create)
	r.mux.HandleFunc("GET /api/transcriptions/{id}", r.transcriptionHandler.GetTranscription)
	r.mux.HandleFunc("PATCH /api/transcriptions/{id}", r.transcriptionHandler.Patch)
	r.mux.HandleFunc("POST /api/transcriptions/{id}/tags", r.transcriptionHandler.AddTag)
	r.mux.HandleFunc("DELETE /api/transcriptions/{id}/tags", r.transcriptionHandler.RemoveTag)

	// Dashboard endpoints
	r.mux.HandleFunc("GET /api/dashboard/summary", r.dashboardHandler.Summary)

	// Dictation endpoints
	r.mux.HandleFunc("POST /api/dictation", r.dictationHandler.Transcribe)

	// SSE endpoints
	r.mux.HandleFunc("GET /api/stream/updates", r.sseHandler.StreamUpdates)
	r.mux.HandleFunc("GET /api/stream/updates/{entity}", r.sseHandler.StreamEntityUpdates)

	// Apply middleware
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}
