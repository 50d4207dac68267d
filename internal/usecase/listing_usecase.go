package usecase

import (
	"context"

	"tradie/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingUsecase defines the read-side operations on published listings.
type ListingUsecase interface {
	// GetListing retrieves a single listing by ID.
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// ListOwnerListings retrieves all listings owned by the given
	// principal, newest first.
	ListOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// GenerateShareQR renders a QR code PNG pointing at the listing's
	// public page.
	GenerateShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}
