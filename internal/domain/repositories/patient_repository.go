package repositories

import (
	"context"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	// List retrieves the full patient collection
	List(ctx context.Context) ([]entities.Patient, error)
}
