package repository

import (
	"context"

	"nutrisheet/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile row has the email.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads and writes the profile sheet, one row per email.
type ProfileRepository interface {
	// FindByEmail returns the profile stored for email.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Upsert rewrites the row of profile.Email, or appends one.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
