package stores

import (
	"context"
	"sort"
	"sync"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
)

// AppointmentsStore owns the appointment collection and the upcoming/recent
// derived queries the dashboard renders
type AppointmentsStore struct {
	repo repositories.AppointmentRepository
	bus  providers.EventBus
	now  Clock

	mu           sync.RWMutex
	appointments []entities.Appointment
	loading      bool
	err          string
}

// NewAppointmentsStore creates a new appointments store
func NewAppointmentsStore(repo repositories.AppointmentRepository, bus providers.EventBus, clock Clock) *AppointmentsStore {
	return &AppointmentsStore{repo: repo, bus: bus, now: orNow(clock)}
}

// Fetch replaces the whole collection with the backend's current data.
func (s *AppointmentsStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	appointments, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to fetch appointments"
		return err
	}

	s.appointments = appointments
	publish(ctx, s.bus, entities.StoreEntityAppointments, entities.StoreActionLoaded, "")
	return nil
}

// Appointments returns a copy of the collection.
func (s *AppointmentsStore) Appointments() []entities.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// AppointmentByID is a pure lookup with no fetch side effect.
func (s *AppointmentsStore) AppointmentByID(id string) (entities.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return entities.Appointment{}, false
}

// Upcoming returns appointments dated today or later that are still
// scheduled, ordered by date then time. The status filter dominates: a
// future appointment that was cancelled or completed is excluded. Date
// comparison is at calendar-day granularity; both dates and zero-padded
// HH:MM times order correctly under plain string comparison.
func (s *AppointmentsStore) Upcoming() []entities.Appointment {
	today := s.today()

	s.mu.RLock()
	out := make([]entities.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.Status != entities.AppointmentStatusScheduled {
			continue
		}
		if a.Date < today {
			continue
		}
		out = append(out, a)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// Recent returns appointments dated strictly before today or already
// completed, newest date first. The sort is stable with no secondary key:
// same-day entries keep their collection order.
func (s *AppointmentsStore) Recent() []entities.Appointment {
	today := s.today()

	s.mu.RLock()
	out := make([]entities.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.Date < today || a.Status == entities.AppointmentStatusCompleted {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Loading reports whether a fetch is in flight.
func (s *AppointmentsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded failure message, empty when healthy.
func (s *AppointmentsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *AppointmentsStore) today() string {
	return s.now().Format(entities.DateLayout)
}
