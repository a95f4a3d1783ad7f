package repository

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines read access to account profiles.
type ProfileRepository interface {
	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
