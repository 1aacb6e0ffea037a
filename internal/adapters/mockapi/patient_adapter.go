package mockapi

import (
	"context"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
)

// PatientAdapter implements repositories.PatientRepository against the
// seeded patient collection
type PatientAdapter struct {
	patients []entities.Patient
	latency  time.Duration
}

// NewPatientAdapter creates a new mock patient adapter
func NewPatientAdapter(latency time.Duration) *PatientAdapter {
	return &PatientAdapter{
		patients: seedPatients(),
		latency:  latency,
	}
}

// List returns a deep copy of the seed set. Repeated calls yield the same
// collection; the load contract is wholesale replacement, not append.
func (a *PatientAdapter) List(ctx context.Context) ([]entities.Patient, error) {
	if err := wait(ctx, a.latency); err != nil {
		return nil, err
	}
	return entities.ClonePatients(a.patients), nil
}

var _ repositories.PatientRepository = (*PatientAdapter)(nil)
