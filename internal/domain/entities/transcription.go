package entities

import (
	"strings"
	"time"
)

// TranscriptionStatus represents the two-state lifecycle of a transcription
type TranscriptionStatus string

const (
	TranscriptionStatusDraft TranscriptionStatus = "draft"
	TranscriptionStatusFinal TranscriptionStatus = "final"
)

// Transcription represents a visit transcription. PatientName and DoctorName
// are creation-time snapshots, same as on Appointment. Tags are lowercase,
// insertion-ordered and unique under case folding; every write path must go
// through NormalizeTags to keep that invariant.
type Transcription struct {
	ID            string              `json:"id"`
	AppointmentID string              `json:"appointmentId"`
	PatientID     string              `json:"patientId"`
	PatientName   string              `json:"patientName"`
	DoctorID      string              `json:"doctorId"`
	DoctorName    string              `json:"doctorName"`
	Date          string              `json:"date"`
	Content       string              `json:"content"`
	Tags          []string            `json:"tags,omitempty"`
	Status        TranscriptionStatus `json:"status"`
	LastUpdated   time.Time           `json:"lastUpdated"`
}

// Clone returns a deep copy of the transcription.
func (t Transcription) Clone() Transcription {
	out := t
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	return out
}

// CloneTranscriptions deep-copies a transcription collection.
func CloneTranscriptions(transcriptions []Transcription) []Transcription {
	if transcriptions == nil {
		return nil
	}
	out := make([]Transcription, len(transcriptions))
	for i, t := range transcriptions {
		out[i] = t.Clone()
	}
	return out
}

// TranscriptionDraft carries every caller-supplied field of a new
// transcription; the store mints the ID and the LastUpdated stamp.
type TranscriptionDraft struct {
	AppointmentID string              `json:"appointmentId"`
	PatientID     string              `json:"patientId"`
	PatientName   string              `json:"patientName"`
	DoctorID      string              `json:"doctorId"`
	DoctorName    string              `json:"doctorName"`
	Date          string              `json:"date"`
	Content       string              `json:"content"`
	Tags          []string            `json:"tags,omitempty"`
	Status        TranscriptionStatus `json:"status"`
}

// TranscriptionPatch is a shallow partial update: nil fields are left
// untouched, a non-nil Tags slice fully replaces the previous tag list.
type TranscriptionPatch struct {
	AppointmentID *string              `json:"appointmentId,omitempty"`
	PatientID     *string              `json:"patientId,omitempty"`
	PatientName   *string              `json:"patientName,omitempty"`
	DoctorID      *string              `json:"doctorId,omitempty"`
	DoctorName    *string              `json:"doctorName,omitempty"`
	Date          *string              `json:"date,omitempty"`
	Content       *string              `json:"content,omitempty"`
	Tags          *[]string            `json:"tags,omitempty"`
	Status        *TranscriptionStatus `json:"status,omitempty"`
}

// NormalizeTags trims and lowercases tags, drops empties, and removes
// duplicates while preserving first-insertion order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
