package mockapi

import (
	"context"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// TranscriptionAdapter implements repositories.TranscriptionRepository
// against the seeded transcription collection. Create and Update only
// acknowledge the mutation after the simulated latency; the store owns the
// in-process collection, and a fresh List always yields the seed set again.
type TranscriptionAdapter struct {
	transcriptions []entities.Transcription
	latency        time.Duration
}

// NewTranscriptionAdapter creates a new mock transcription adapter
func NewTranscriptionAdapter(latency time.Duration) *TranscriptionAdapter {
	return &TranscriptionAdapter{
		transcriptions: seedTranscriptions(),
		latency:        latency,
	}
}

// List returns a deep copy of the seed set.
func (a *TranscriptionAdapter) List(ctx context.Context) ([]entities.Transcription, error) {
	if err := wait(ctx, a.latency); err != nil {
		return nil, err
	}
	return entities.CloneTranscriptions(a.transcriptions), nil
}

// Create acknowledges a new transcription.
func (a *TranscriptionAdapter) Create(ctx context.Context, transcription *entities.Transcription) error {
	if transcription == nil {
		return apperrors.NewValidationError("transcription is required")
	}
	return wait(ctx, a.latency)
}

// Update acknowledges a merged transcription.
func (a *TranscriptionAdapter) Update(ctx context.Context, transcription *entities.Transcription) error {
	if transcription == nil || transcription.ID == "" {
		return apperrors.NewValidationError("transcription id is required")
	}
	return wait(ctx, a.latency)
}

var _ repositories.TranscriptionRepository = (*TranscriptionAdapter)(nil)
