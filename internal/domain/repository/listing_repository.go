// Package repository defines the persistence interfaces the domain depends on.
package repository

import (
	"context"

	"tradie/internal/domain/entity"
	"tradie/internal/errors"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the persistence operations for listings.
type ListingRepository interface {
	// Create persists a new listing and fills in generated values.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update saves the full state of an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by its unique ID.
	// Returns ErrListingNotFound when no such listing exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByOwner retrieves all listings belonging to the given owner,
	// newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)
}
