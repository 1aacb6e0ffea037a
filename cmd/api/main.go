package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/events"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/mockapi"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/remoteapi"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/api/handlers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/api/routes"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/application/stores"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/infrastructure/observability"
	"github.com/medscribe/Clinicdashboarddesign/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("clinic-dashboard", cfg.Logging.Env)

	// Initialize event bus
	eventBus := events.NewMemoryEventBus()

	// Initialize repository adapters
	var (
		directory         repositories.UserDirectory
		patientRepo       repositories.PatientRepository
		appointmentRepo   repositories.AppointmentRepository
		transcriptionRepo repositories.TranscriptionRepository
	)
	switch cfg.Backend.Mode {
	case config.BackendModeRemote:
		client := remoteapi.NewClient(cfg.Backend.RemoteBaseURL, cfg.Backend.RemoteTimeout)
		directory = client
		patientRepo = client.Patients()
		appointmentRepo = client.Appointments()
		transcriptionRepo = client.Transcriptions()
		log.Info().Str("base_url", cfg.Backend.RemoteBaseURL).Msg("using remote backend")
	default:
		directory = mockapi.NewUserDirectoryAdapter(cfg.Backend.MockLatency)
		patientRepo = mockapi.NewPatientAdapter(cfg.Backend.MockLatency)
		appointmentRepo = mockapi.NewAppointmentAdapter(cfg.Backend.MockLatency, nil)
		transcriptionRepo = mockapi.NewTranscriptionAdapter(cfg.Backend.MockLatency)
		log.Info().Dur("latency", cfg.Backend.MockLatency).Msg("using mock backend")
	}

	// Initialize stores
	authStore := stores.NewAuthStore(directory, eventBus)
	patientsStore := stores.NewPatientsStore(patientRepo, eventBus)
	appointmentsStore := stores.NewAppointmentsStore(appointmentRepo, eventBus, nil)
	transcriptionsStore := stores.NewTranscriptionsStore(transcriptionRepo, eventBus, nil)

	dictation := mockapi.NewDictationAdapter(cfg.Backend.RecordingDelay)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authStore)
	patientHandler := handlers.NewPatientHandler(patientsStore)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentsStore)
	transcriptionHandler := handlers.NewTranscriptionHandler(transcriptionsStore)
	dashboardHandler := handlers.NewDashboardHandler(patientsStore, appointmentsStore, transcriptionsStore)
	dictationHandler := handlers.NewDictationHandler(dictation)
	sseHandler := handlers.NewSSEHandler(eventBus)

	// Set up router
	router := routes.NewRouter(
		authHandler,
		patientHandler,
		appointmentHandler,
		transcriptionHandler,
		dashboardHandler,
		dictationHandler,
		sseHandler,
	)
	handler := router.SetupRoutes()

	// Create HTTP server. No write timeout: the SSE stream stays open for
	// the lifetime of the client connection.
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("error closing event bus")
	}

	log.Info().Msg("server stopped")
}
