// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingCategory classifies what a listing offers.
type ListingCategory string

const (
	// CategoryVehicle covers utes, trucks and other work vehicles.
	CategoryVehicle ListingCategory = "vehicle"
	// CategoryPlant covers plant and heavy equipment.
	CategoryPlant ListingCategory = "plant"
	// CategoryMaterials covers building and trade materials.
	CategoryMaterials ListingCategory = "materials"
	// CategoryJob covers advertised job positions.
	CategoryJob ListingCategory = "job"
	// CategoryProject covers projects seeking contractors.
	CategoryProject ListingCategory = "project"
)

// String returns the string representation of the category.
func (c ListingCategory) String() string {
	return string(c)
}

// IsValid checks if the category is a known value.
func (c ListingCategory) IsValid() bool {
	switch c {
	case CategoryVehicle, CategoryPlant, CategoryMaterials, CategoryJob, CategoryProject:
		return true
	default:
		return false
	}
}

// Listing is a published marketplace record: a vehicle, plant item, batch of
// materials, job position or project. It is produced by the submission
// pipeline and owned by exactly one principal.
type Listing struct {
	ID          uuid.UUID       // The unique identifier for the listing.
	OwnerID     uuid.UUID       // The principal that created the listing and may modify it.
	Category    ListingCategory // What kind of record this is.
	Title       string          // Short headline, unique per owner.
	Description string          // Free-form body text.
	Price       *float64        // Asking price in NZD; nil for job and project listings.
	Address     Address         // Structured postal address; may be entirely blank.
	Location    *orb.Point      // Geocoded coordinates; nil when the address was never geocoded.
	CoverURL    string          // Public URL of the cover image, empty when none was supplied.
	GalleryURLs []string        // Public URLs of the gallery images in positional order.
	CreatedAt   time.Time       // Timestamp of when this listing was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
