package repositories

import (
	"context"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// List retrieves the full appointment collection
	List(ctx context.Context) ([]entities.Appointment, error)
}
