package impl

import (
	"context"
	"testing"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	mockRepo "tradie/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetOwnProfile(t *testing.T) {
	ctx := context.Background()
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewProfileService(ProfileServiceParams{BusinessRepo: businessRepo})

	ownerID := uuid.New()
	businessRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(&entity.BusinessProfile{OwnerID: ownerID, Name: "Harbour City Plumbing"}, nil)

	profile, err := service.GetOwnProfile(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour City Plumbing", profile.Name)
}

func TestProfileService_GetOwnProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewProfileService(ProfileServiceParams{BusinessRepo: businessRepo})

	ownerID := uuid.New()
	businessRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetOwnProfile(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewProfileService(ProfileServiceParams{BusinessRepo: businessRepo})

	profileID := uuid.New()
	businessRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(&entity.BusinessProfile{ID: profileID}, nil)

	profile, err := service.GetProfile(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
}
