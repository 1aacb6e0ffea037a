package repositories

import (
	"context"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// UserDirectory defines the interface for the user directory backend used by
// the auth store. The mock implementation compares against a fixed
// credential; a real identity backend can be dropped in without touching the
// store.
type UserDirectory interface {
	// Authenticate verifies a credential pair and returns the matching
	// user. An unknown email or a wrong password yields an unauthorized
	// error; the user is never partially returned.
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
}
