package usecase

import (
	"context"

	"tradie/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the read-side operations on business profiles.
type ProfileUsecase interface {
	// GetProfile retrieves a business profile by ID.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// GetOwnProfile retrieves the profile owned by the given principal.
	GetOwnProfile(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)
}
