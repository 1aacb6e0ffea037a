package mockapi

import (
	"context"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
)

// Placeholder transcript text. Real speech-to-text is out of scope; the
// mock emits the same hard-coded strings the product demo ships with.
const (
	dictationScaffold = "Patienten uppvisar symtom på...\n\nPatienten nämner också...\n\nPatienten nämner också..."
	dictationAppendix = "\n\nPatient also mentions..."
)

// DictationAdapter implements providers.DictationProvider by simulating a
// recording session of fixed duration
type DictationAdapter struct {
	recordingDelay time.Duration
}

// NewDictationAdapter creates a new mock dictation adapter
func NewDictationAdapter(recordingDelay time.Duration) *DictationAdapter {
	return &DictationAdapter{recordingDelay: recordingDelay}
}

// Transcribe waits out the simulated recording, then returns the scaffold
// text for an empty editor or appends a follow-up line otherwise.
func (a *DictationAdapter) Transcribe(ctx context.Context, existing string) (string, error) {
	if err := wait(ctx, a.recordingDelay); err != nil {
		return "", err
	}
	if existing == "" {
		return dictationScaffold, nil
	}
	return existing + dictationAppendix, nil
}

var _ providers.DictationProvider = (*DictationAdapter)(nil)
