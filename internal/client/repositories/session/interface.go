// Package session persists the authenticated session: the bearer token and
// the cached user profile. It is the injected handle every service reads the
// session through; there are no global accessors.
package session

import (
	"context"

	"github.com/fitquest/fitquest/internal/client/models"
)

// Repository stores exactly two values: the opaque token and the user
// record. Reads of absent values return zero values, not errors. All writes
// are last-write-wins.
type Repository interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
}
