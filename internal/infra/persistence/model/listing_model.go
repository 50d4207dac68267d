// Package model contains the GORM persistence structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// Titles are unique per owner; the composite index backs the duplicate-name
// constraint the pipeline translates into a user-facing conflict message.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"not null;index;uniqueIndex:idx_listings_owner_title"`
	Category    string    `gorm:"type:varchar(32);not null"`
	Title       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_listings_owner_title"`
	Description string    `gorm:"type:text;not null"`
	Price       *float64  `gorm:"type:decimal(12,2)"`

	Street     string `gorm:"type:varchar(255)"`
	Suburb     string `gorm:"type:varchar(100)"`
	City       string `gorm:"type:varchar(100)"`
	Region     string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(16)"`

	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`

	CoverURL    string   `gorm:"type:text"`
	GalleryURLs []string `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
