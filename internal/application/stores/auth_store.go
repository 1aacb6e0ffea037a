package stores

import (
	"context"
	"sync"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// AuthState represents the auth store's state machine position
type AuthState string

const (
	AuthStateAnonymous      AuthState = "anonymous"
	AuthStateAuthenticating AuthState = "authenticating"
	AuthStateAuthenticated  AuthState = "authenticated"
	AuthStateErrored        AuthState = "errored"
)

// AuthSnapshot is a value copy of the auth store's observable state
type AuthSnapshot struct {
	State           AuthState      `json:"state"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	User            *entities.User `json:"user,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// AuthStore owns the session state for the single active user. There is no
// session persistence: a process restart resets to anonymous.
type AuthStore struct {
	directory repositories.UserDirectory
	bus       providers.EventBus

	mu    sync.RWMutex
	state AuthState
	user  *entities.User
	err   string
}

// NewAuthStore creates a new auth store
func NewAuthStore(directory repositories.UserDirectory, bus providers.EventBus) *AuthStore {
	return &AuthStore{
		directory: directory,
		bus:       bus,
		state:     AuthStateAnonymous,
	}
}

// Login moves the store to authenticating, checks the credentials against
// the directory, and lands on authenticated or errored. A failed login
// leaves no user behind.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.NewValidationError("email and password are required")
	}

	s.mu.Lock()
	s.state = AuthStateAuthenticating
	s.err = ""
	s.mu.Unlock()

	user, err := s.directory.Authenticate(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = AuthStateErrored
		s.user = nil
		s.err = apperrors.MessageOf(err)
		return err
	}

	s.state = AuthStateAuthenticated
	s.user = user
	publish(ctx, s.bus, entities.StoreEntityAuth, entities.StoreActionUpdated, user.ID)
	return nil
}

// Logout is synchronous and unconditional: any state returns to anonymous
// and the held user is cleared.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = AuthStateAnonymous
	s.user = nil
	s.err = ""
}

// Snapshot returns a value copy of the observable auth state.
func (s *AuthStore) Snapshot() AuthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := AuthSnapshot{
		State:           s.state,
		IsAuthenticated: s.state == AuthStateAuthenticated,
		Error:           s.err,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

// CurrentUser returns the authenticated user, if any.
func (s *AuthStore) CurrentUser() (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entities.User{}, false
	}
	return *s.user, true
}
