package repositories

import (
	"context"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// TranscriptionRepository defines the interface for transcription data
// operations. The store owns the in-process collection; Create and Update
// only round-trip the backend so a real API can acknowledge (or reject) the
// mutation before the store commits it.
type TranscriptionRepository interface {
	// List retrieves the full transcription collection
	List(ctx context.Context) ([]entities.Transcription, error)

	// Create submits a new transcription to the backend
	Create(ctx context.Context, transcription *entities.Transcription) error

	// Update submits a fully merged transcription to the backend
	Update(ctx context.Context, transcription *entities.Transcription) error
}
