// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	"tradie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the domain.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a single business profile by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by id")
	}

	return toBusinessDomain(&profileM), nil
}

// FindByOwner retrieves the profile belonging to the given owner.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by owner")
	}

	return toBusinessDomain(&profileM), nil
}

// Create persists a new business profile to the database.
func (repo *businessRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateBusinessName
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("years in trading out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update saves the full state of an existing business profile.
func (repo *businessRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessDomain(profile)
	profileM.CreatedAt = profile.CreatedAt

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateBusinessName
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("years in trading out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessProfileModel to a domain entity.
// Skills are stored flattened and migrated into tagged pairs here.
func toBusinessDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Email:        data.Email,
		Mobile:       data.Mobile,
		OfficePhone:  data.OfficePhone,
		Website:      data.Website,
		YearsTrading: data.YearsTrading,
		WorkTypes:    data.WorkTypes,
		Trades:       data.Trades,
		Skills:       entity.ParseSkills(data.Skills),
		Address: entity.Address{
			Street:     data.Street,
			Suburb:     data.Suburb,
			City:       data.City,
			Region:     data.Region,
			PostalCode: data.PostalCode,
		},
		Location:    toLocation(data.Latitude, data.Longitude),
		LogoURL:     data.LogoURL,
		CoverURL:    data.CoverURL,
		GalleryURLs: data.GalleryURLs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain entity to a GORM BusinessProfileModel.
func fromBusinessDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	lat, lng := fromLocation(data.Location)

	return &model.BusinessProfileModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Email:        data.Email,
		Mobile:       data.Mobile,
		OfficePhone:  data.OfficePhone,
		Website:      data.Website,
		YearsTrading: data.YearsTrading,
		WorkTypes:    data.WorkTypes,
		Trades:       data.Trades,
		Skills:       entity.FlattenSkills(data.Skills),
		Street:       data.Address.Street,
		Suburb:       data.Address.Suburb,
		City:         data.Address.City,
		Region:       data.Address.Region,
		PostalCode:   data.Address.PostalCode,
		Latitude:     lat,
		Longitude:    lng,
		LogoURL:      data.LogoURL,
		CoverURL:     data.CoverURL,
		GalleryURLs:  data.GalleryURLs,
	}
}
