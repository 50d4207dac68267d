package repository

import (
	"context"

	"tradie/internal/domain/entity"
	"tradie/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a business profile does not exist.
var ErrProfileNotFound = errors.New("business profile not found")

// BusinessRepository defines the persistence operations for business profiles.
type BusinessRepository interface {
	// Create persists a new business profile and fills in generated values.
	Create(ctx context.Context, profile *entity.BusinessProfile) error

	// Update saves the full state of an existing business profile.
	Update(ctx context.Context, profile *entity.BusinessProfile) error

	// FindByID retrieves a profile by its unique ID.
	// Returns ErrProfileNotFound when no such profile exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindByOwner retrieves the profile belonging to the given owner.
	// Returns ErrProfileNotFound when the owner has no profile.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)
}
