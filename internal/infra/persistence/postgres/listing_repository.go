// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	"tradie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// FindByID retrieves a single listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// FindByOwner retrieves all listings belonging to the given owner, newest first.
func (repo *listingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	var listingMs []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	listings := make([]*entity.Listing, 0, len(listingMs))
	for _, listingM := range listingMs {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Create persists a new listing to the database.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateListing
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("missing required listing information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Reflect generated values back onto the entity
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// Update saves the full state of an existing listing.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)
	listingM.CreatedAt = listing.CreatedAt

	if err := repo.db.WithContext(ctx).Save(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateListing
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingUpdateFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update listing")
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Category:    entity.ListingCategory(data.Category),
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Address: entity.Address{
			Street:     data.Street,
			Suburb:     data.Suburb,
			City:       data.City,
			Region:     data.Region,
			PostalCode: data.PostalCode,
		},
		Location:    toLocation(data.Latitude, data.Longitude),
		CoverURL:    data.CoverURL,
		GalleryURLs: data.GalleryURLs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel for persistence.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	lat, lng := fromLocation(data.Location)

	return &model.ListingModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Category:    data.Category.String(),
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Street:      data.Address.Street,
		Suburb:      data.Address.Suburb,
		City:        data.Address.City,
		Region:      data.Address.Region,
		PostalCode:  data.Address.PostalCode,
		Latitude:    lat,
		Longitude:   lng,
		CoverURL:    data.CoverURL,
		GalleryURLs: data.GalleryURLs,
	}
}

// toLocation rebuilds an orb.Point from the stored coordinate pair.
// Both columns are set together, so a missing latitude means no location.
func toLocation(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}

	point := orb.Point{*lng, *lat}

	return &point
}

// fromLocation splits an orb.Point into the coordinate column pair.
func fromLocation(location *orb.Point) (lat, lng *float64) {
	if location == nil {
		return nil, nil
	}

	latV := location.Lat()
	lngV := location.Lon()

	return &latV, &lngV
}
