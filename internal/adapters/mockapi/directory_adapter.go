package mockapi

import (
	"context"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// UserDirectoryAdapter implements repositories.UserDirectory against the
// seeded user directory
type UserDirectoryAdapter struct {
	users   []entities.User
	latency time.Duration
}

// NewUserDirectoryAdapter creates a new mock user directory adapter
func NewUserDirectoryAdapter(latency time.Duration) *UserDirectoryAdapter {
	return &UserDirectoryAdapter{
		users:   seedUsers(),
		latency: latency,
	}
}

// Authenticate looks up a user by exact email match and checks the password
// against the sentinel credential.
func (a *UserDirectoryAdapter) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	if err := wait(ctx, a.latency); err != nil {
		return nil, err
	}

	for _, u := range a.users {
		if u.Email == email {
			if password != mockPassword {
				break
			}
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.NewUnauthorizedError("Invalid email or password")
}

var _ repositories.UserDirectory = (*UserDirectoryAdapter)(nil)
