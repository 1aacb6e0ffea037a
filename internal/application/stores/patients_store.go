package stores

import (
	"context"
	"sync"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
)

// PatientsStore owns the patient collection
type PatientsStore struct {
	repo repositories.PatientRepository
	bus  providers.EventBus

	mu       sync.RWMutex
	patients []entities.Patient
	loading  bool
	err      string
}

// NewPatientsStore creates a new patients store
func NewPatientsStore(repo repositories.PatientRepository, bus providers.EventBus) *PatientsStore {
	return &PatientsStore{repo: repo, bus: bus}
}

// Fetch replaces the whole collection with the backend's current data.
// Idempotent: a second call replaces again, it never appends. On failure
// the previous collection is kept and the error message recorded.
func (s *PatientsStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	patients, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to fetch patients"
		return err
	}

	s.patients = patients
	publish(ctx, s.bus, entities.StoreEntityPatients, entities.StoreActionLoaded, "")
	return nil
}

// Patients returns a deep copy of the collection.
func (s *PatientsStore) Patients() []entities.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entities.ClonePatients(s.patients)
}

// PatientByID is a pure lookup: it never triggers a fetch, and an absent id
// is a valid empty result.
func (s *PatientsStore) PatientByID(id string) (entities.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return entities.Patient{}, false
}

// Count returns the collection size.
func (s *PatientsStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// Loading reports whether a fetch is in flight.
func (s *PatientsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded failure message, empty when healthy.
func (s *PatientsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
