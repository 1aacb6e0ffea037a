package stores

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// StatusTab selects the status filter of the transcription list view
type StatusTab string

const (
	TabAll   StatusTab = "all"
	TabDraft StatusTab = "draft"
	TabFinal StatusTab = "final"
)

// ParseStatusTab maps the list view's tab parameter onto a StatusTab. An
// empty value means all.
func ParseStatusTab(value string) (StatusTab, error) {
	switch StatusTab(value) {
	case TabAll, TabDraft, TabFinal:
		return StatusTab(value), nil
	case "":
		return TabAll, nil
	}
	return "", apperrors.NewValidationError("tab must be one of all, draft, final")
}

// TranscriptionCounts are the dashboard summary counters. Draft and Final
// always sum to Total: no third status value is legal in the collection.
type TranscriptionCounts struct {
	Draft int `json:"draft"`
	Final int `json:"final"`
	Total int `json:"total"`
}

// TranscriptionsStore owns the transcription collection and its derived
// filtering, recency and count queries
type TranscriptionsStore struct {
	repo repositories.TranscriptionRepository
	bus  providers.EventBus
	now  Clock

	mu             sync.RWMutex
	transcriptions []entities.Transcription
	loading        bool
	err            string
}

// NewTranscriptionsStore creates a new transcriptions store
func NewTranscriptionsStore(repo repositories.TranscriptionRepository, bus providers.EventBus, clock Clock) *TranscriptionsStore {
	return &TranscriptionsStore{repo: repo, bus: bus, now: orNow(clock)}
}

// Fetch replaces the whole collection with the backend's current data.
func (s *TranscriptionsStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	transcriptions, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to fetch transcriptions"
		return err
	}

	s.transcriptions = transcriptions
	publish(ctx, s.bus, entities.StoreEntityTranscriptions, entities.StoreActionLoaded, "")
	return nil
}

// Transcriptions returns a deep copy of the collection.
func (s *TranscriptionsStore) Transcriptions() []entities.Transcription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entities.CloneTranscriptions(s.transcriptions)
}

// TranscriptionByID is a pure lookup with no fetch side effect.
func (s *TranscriptionsStore) TranscriptionByID(id string) (entities.Transcription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transcriptions {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return entities.Transcription{}, false
}

// Add mints a new transcription from the draft, submits it to the backend
// and appends it to the collection. Every call mints its own id, so
// overlapping calls cannot collide and a double submission yields two
// rows. The created entity is returned so the caller can navigate to it.
func (s *TranscriptionsStore) Add(ctx context.Context, draft entities.TranscriptionDraft) (entities.Transcription, error) {
	status := draft.Status
	if status == "" {
		status = entities.TranscriptionStatusDraft
	}
	if status != entities.TranscriptionStatusDraft && status != entities.TranscriptionStatusFinal {
		return entities.Transcription{}, apperrors.NewValidationError("status must be draft or final")
	}

	transcription := entities.Transcription{
		ID:            uuid.NewString(),
		AppointmentID: draft.AppointmentID,
		PatientID:     draft.PatientID,
		PatientName:   draft.PatientName,
		DoctorID:      draft.DoctorID,
		DoctorName:    draft.DoctorName,
		Date:          draft.Date,
		Content:       draft.Content,
		Tags:          entities.NormalizeTags(draft.Tags),
		Status:        status,
		LastUpdated:   s.now(),
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := s.repo.Create(ctx, &transcription)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to add transcription"
		return entities.Transcription{}, err
	}

	s.transcriptions = append(s.transcriptions, transcription)
	publish(ctx, s.bus, entities.StoreEntityTranscriptions, entities.StoreActionCreated, transcription.ID)
	return transcription.Clone(), nil
}

// Update shallow-merges the patch over the stored entity and refreshes
// LastUpdated. An absent id is a silent no-op: nothing is written and no
// error is raised. A supplied Tags slice fully replaces the previous one.
// Nothing blocks a final transcription from being patched back to draft;
// no caller currently does.
func (s *TranscriptionsStore) Update(ctx context.Context, id string, patch entities.TranscriptionPatch) error {
	if patch.Status != nil &&
		*patch.Status != entities.TranscriptionStatusDraft &&
		*patch.Status != entities.TranscriptionStatusFinal {
		return apperrors.NewValidationError("status must be draft or final")
	}

	existing, found := s.TranscriptionByID(id)
	if !found {
		return nil
	}

	merged := applyPatch(existing, patch)
	merged.LastUpdated = s.now()

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := s.repo.Update(ctx, &merged)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to update transcription"
		return err
	}

	for i := range s.transcriptions {
		if s.transcriptions[i].ID == id {
			s.transcriptions[i] = merged
			break
		}
	}
	publish(ctx, s.bus, entities.StoreEntityTranscriptions, entities.StoreActionUpdated, id)
	return nil
}

// AddTag appends a tag to a transcription. Tags are case-folded to
// lowercase; a tag already present under that comparison leaves the list
// untouched, in its original order, without a backend round trip.
func (s *TranscriptionsStore) AddTag(ctx context.Context, id, tag string) (entities.Transcription, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return entities.Transcription{}, apperrors.NewValidationError("tag is required")
	}

	existing, found := s.TranscriptionByID(id)
	if !found {
		return entities.Transcription{}, apperrors.NewNotFoundError("transcription not found")
	}

	for _, t := range existing.Tags {
		if t == normalized {
			return existing, nil
		}
	}

	tags := append(append([]string{}, existing.Tags...), normalized)
	if err := s.Update(ctx, id, entities.TranscriptionPatch{Tags: &tags}); err != nil {
		return entities.Transcription{}, err
	}

	updated, _ := s.TranscriptionByID(id)
	return updated, nil
}

// RemoveTag removes a tag from a transcription. Removing an absent tag is a
// no-op.
func (s *TranscriptionsStore) RemoveTag(ctx context.Context, id, tag string) (entities.Transcription, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))

	existing, found := s.TranscriptionByID(id)
	if !found {
		return entities.Transcription{}, apperrors.NewNotFoundError("transcription not found")
	}

	tags := make([]string, 0, len(existing.Tags))
	for _, t := range existing.Tags {
		if t != normalized {
			tags = append(tags, t)
		}
	}
	if len(tags) == len(existing.Tags) {
		return existing, nil
	}

	if err := s.Update(ctx, id, entities.TranscriptionPatch{Tags: &tags}); err != nil {
		return entities.Transcription{}, err
	}

	updated, _ := s.TranscriptionByID(id)
	return updated, nil
}

// Filter returns the transcriptions matching a status tab and a free-text
// search term. The tab filter always applies; a non-empty term must match
// the patient name, the content, or any one tag as a case-insensitive
// substring.
func (s *TranscriptionsStore) Filter(tab StatusTab, term string) []entities.Transcription {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Transcription, 0, len(s.transcriptions))
	for _, t := range s.transcriptions {
		switch tab {
		case TabDraft:
			if t.Status != entities.TranscriptionStatusDraft {
				continue
			}
		case TabFinal:
			if t.Status != entities.TranscriptionStatusFinal {
				continue
			}
		}
		if term != "" && !matchesTerm(t, term) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

// Recent returns the n most recently updated transcriptions, newest first.
func (s *TranscriptionsStore) Recent(n int) []entities.Transcription {
	s.mu.RLock()
	out := entities.CloneTranscriptions(s.transcriptions)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Counts returns the dashboard's draft/final counters.
func (s *TranscriptionsStore) Counts() TranscriptionCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := TranscriptionCounts{Total: len(s.transcriptions)}
	for _, t := range s.transcriptions {
		switch t.Status {
		case entities.TranscriptionStatusDraft:
			counts.Draft++
		case entities.TranscriptionStatusFinal:
			counts.Final++
		}
	}
	return counts
}

// Loading reports whether a load or mutation is in flight.
func (s *TranscriptionsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded failure message, empty when healthy.
func (s *TranscriptionsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func matchesTerm(t entities.Transcription, term string) bool {
	if strings.Contains(strings.ToLower(t.PatientName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Content), term) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func applyPatch(t entities.Transcription, patch entities.TranscriptionPatch) entities.Transcription {
	if patch.AppointmentID != nil {
		t.AppointmentID = *patch.AppointmentID
	}
	if patch.PatientID != nil {
		t.PatientID = *patch.PatientID
	}
	if patch.PatientName != nil {
		t.PatientName = *patch.PatientName
	}
	if patch.DoctorID != nil {
		t.DoctorID = *patch.DoctorID
	}
	if patch.DoctorName != nil {
		t.DoctorName = *patch.DoctorName
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.Tags != nil {
		t.Tags = entities.NormalizeTags(*patch.Tags)
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	return t
}
