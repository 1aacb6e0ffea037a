package mockapi

import (
	"context"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
)

// AppointmentAdapter implements repositories.AppointmentRepository against
// the seeded schedule. The schedule is anchored to the current day at
// construction time, so the dashboard always has upcoming and recent rows.
type AppointmentAdapter struct {
	appointments []entities.Appointment
	latency      time.Duration
}

// NewAppointmentAdapter creates a new mock appointment adapter. A nil clock
// falls back to time.Now.
func NewAppointmentAdapter(latency time.Duration, clock func() time.Time) *AppointmentAdapter {
	if clock == nil {
		clock = time.Now
	}
	return &AppointmentAdapter{
		appointments: seedAppointments(clock()),
		latency:      latency,
	}
}

// List returns a copy of the seed schedule.
func (a *AppointmentAdapter) List(ctx context.Context) ([]entities.Appointment, error) {
	if err := wait(ctx, a.latency); err != nil {
		return nil, err
	}
	out := make([]entities.Appointment, len(a.appointments))
	copy(out, a.appointments)
	return out, nil
}

var _ repositories.AppointmentRepository = (*AppointmentAdapter)(nil)
