package impl

import (
	"context"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	"tradie/internal/errors"
	"tradie/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	businessRepo repository.BusinessRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		businessRepo: params.BusinessRepo,
	}
}

// GetProfile retrieves a business profile by ID.
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get business profile")
	}

	return profile, nil
}

// GetOwnProfile retrieves the profile owned by the given principal.
func (s *profileService) GetOwnProfile(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get own business profile")
	}

	return profile, nil
}
