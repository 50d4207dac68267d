package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel is the GORM-specific struct for the
// 'business_profiles' table. One profile per owner; skills are stored in
// their flattened canonical string form and migrated into tagged pairs at
// the load boundary.
type BusinessProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`

	Email       string `gorm:"type:varchar(255)"`
	Mobile      string `gorm:"type:varchar(32)"`
	OfficePhone string `gorm:"type:varchar(32)"`
	Website     string `gorm:"type:text"`

	YearsTrading int      `gorm:"not null;check:years_trading >= 0 AND years_trading <= 100"`
	WorkTypes    []string `gorm:"type:jsonb;serializer:json"`
	Trades       []string `gorm:"type:jsonb;serializer:json"`
	Skills       []string `gorm:"type:jsonb;serializer:json"`

	Street     string `gorm:"type:varchar(255)"`
	Suburb     string `gorm:"type:varchar(100)"`
	City       string `gorm:"type:varchar(100)"`
	Region     string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(16)"`

	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`

	LogoURL     string   `gorm:"type:text"`
	CoverURL    string   `gorm:"type:text"`
	GalleryURLs []string `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
