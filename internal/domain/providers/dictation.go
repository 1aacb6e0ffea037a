package providers

import "context"

// DictationProvider turns a recording session into transcript text. The
// mock implementation returns placeholder text after a simulated recording
// delay; a real speech-to-text backend would satisfy the same interface.
type DictationProvider interface {
	// Transcribe records one dictation segment and returns the updated
	// transcript, given whatever content the editor already holds.
	Transcribe(ctx context.Context, existing string) (string, error)
}
