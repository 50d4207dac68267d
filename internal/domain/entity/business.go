// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// BusinessProfile is the trade profile of a registered business: identity,
// contact methods, the trades and kinds of work it takes on, and its
// physical location. One principal owns at most one profile.
type BusinessProfile struct {
	ID          uuid.UUID  // The unique identifier for the profile.
	OwnerID     uuid.UUID  // The principal the profile belongs to.
	Name        string     // Registered trading name, unique per owner.
	Description string     // Free-form description of the business.

	Email       string // Contact email; at least one contact method is required.
	Mobile      string // Mobile phone number.
	OfficePhone string // Landline / office phone number.
	Website     string // Public website, stored with an explicit scheme.

	YearsTrading int      // Years in trading; zero is allowed only on established records.
	WorkTypes    []string // Kinds of work taken on, e.g. "Residential", "Commercial".
	Trades       []string // Trades practised, e.g. "Plumbing", "Electrical".
	Skills       []Skill  // Specific trade/skill pairs.

	Address  Address    // Physical address of the business.
	Location *orb.Point // Geocoded coordinates; nil when never geocoded.

	LogoURL     string   // Public URL of the logo image.
	CoverURL    string   // Public URL of the cover image.
	GalleryURLs []string // Public URLs of the gallery images in positional order.

	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// HasContactMethod reports whether at least one of the three contact
// channels is populated.
func (p *BusinessProfile) HasContactMethod() bool {
	return p.Email != "" || p.Mobile != "" || p.OfficePhone != ""
}
