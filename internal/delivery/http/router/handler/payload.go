package handler

import (
	"time"

	"tradie/internal/domain/entity"
	"tradie/internal/usecase"
	"tradie/internal/wizard"

	"github.com/google/uuid"
)

// AddressPayload is the wire form of a structured postal address.
type AddressPayload struct {
	Street     string `json:"street,omitempty"`
	Suburb     string `json:"suburb,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

func (p AddressPayload) toEntity() entity.Address {
	return entity.Address{
		Street:     p.Street,
		Suburb:     p.Suburb,
		City:       p.City,
		Region:     p.Region,
		PostalCode: p.PostalCode,
	}
}

func addressPayload(a entity.Address) AddressPayload {
	return AddressPayload{
		Street:     a.Street,
		Suburb:     a.Suburb,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
	}
}

// SkillPayload is the wire form of one trade/skill pair.
type SkillPayload struct {
	Trade string `json:"trade,omitempty"`
	Name  string `json:"name"`
}

func skillsToEntity(payloads []SkillPayload) []entity.Skill {
	if len(payloads) == 0 {
		return nil
	}
	skills := make([]entity.Skill, 0, len(payloads))
	for _, p := range payloads {
		skills = append(skills, entity.Skill{Trade: p.Trade, Name: p.Name})
	}

	return skills
}

func skillPayloads(skills []entity.Skill) []SkillPayload {
	if len(skills) == 0 {
		return nil
	}
	payloads := make([]SkillPayload, 0, len(skills))
	for _, s := range skills {
		payloads = append(payloads, SkillPayload{Trade: s.Trade, Name: s.Name})
	}

	return payloads
}

// SubmissionResultResponse reports the outcome of a successful submission.
type SubmissionResultResponse struct {
	ID               uuid.UUID `json:"id"`
	Geocoded         bool      `json:"geocoded"`
	GeocodingWarning string    `json:"geocoding_warning,omitempty"`
}

func submissionResultResponse(result *usecase.SubmissionResult) SubmissionResultResponse {
	return SubmissionResultResponse{
		ID:               result.EntityID,
		Geocoded:         result.Geocoded,
		GeocodingWarning: result.GeocodingWarning,
	}
}

// StepResultResponse reports one wizard step's validation outcome.
type StepResultResponse struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func stepResultResponse(result wizard.StepResult) StepResultResponse {
	return StepResultResponse{
		Valid:       result.Valid,
		FieldErrors: result.FieldErrors,
	}
}

// ListingResponse is the wire form of a published listing.
type ListingResponse struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Category    string         `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       *float64       `json:"price,omitempty"`
	Address     AddressPayload `json:"address"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	CoverURL    string         `json:"cover_url,omitempty"`
	GalleryURLs []string       `json:"gallery_urls,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func listingResponse(listing *entity.Listing) ListingResponse {
	resp := ListingResponse{
		ID:          listing.ID,
		OwnerID:     listing.OwnerID,
		Category:    listing.Category.String(),
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Address:     addressPayload(listing.Address),
		CoverURL:    listing.CoverURL,
		GalleryURLs: listing.GalleryURLs,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
	if listing.Location != nil {
		lat, lng := listing.Location.Lat(), listing.Location.Lon()
		resp.Latitude, resp.Longitude = &lat, &lng
	}

	return resp
}

func listingResponses(listings []*entity.Listing) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		responses = append(responses, listingResponse(listing))
	}

	return responses
}

// ProfileResponse is the wire form of a business profile.
type ProfileResponse struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Email        string         `json:"email,omitempty"`
	Mobile       string         `json:"mobile,omitempty"`
	OfficePhone  string         `json:"office_phone,omitempty"`
	Website      string         `json:"website,omitempty"`
	YearsTrading int            `json:"years_trading"`
	WorkTypes    []string       `json:"work_types,omitempty"`
	Trades       []string       `json:"trades,omitempty"`
	Skills       []SkillPayload `json:"skills,omitempty"`
	Address      AddressPayload `json:"address"`
	Latitude     *float64       `json:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty"`
	LogoURL      string         `json:"logo_url,omitempty"`
	CoverURL     string         `json:"cover_url,omitempty"`
	GalleryURLs  []string       `json:"gallery_urls,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func profileResponse(profile *entity.BusinessProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:           profile.ID,
		OwnerID:      profile.OwnerID,
		Name:         profile.Name,
		Description:  profile.Description,
		Email:        profile.Email,
		Mobile:       profile.Mobile,
		OfficePhone:  profile.OfficePhone,
		Website:      profile.Website,
		YearsTrading: profile.YearsTrading,
		WorkTypes:    profile.WorkTypes,
		Trades:       profile.Trades,
		Skills:       skillPayloads(profile.Skills),
		Address:      addressPayload(profile.Address),
		LogoURL:      profile.LogoURL,
		CoverURL:     profile.CoverURL,
		GalleryURLs:  profile.GalleryURLs,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
	if profile.Location != nil {
		lat, lng := profile.Location.Lat(), profile.Location.Lon()
		resp.Latitude, resp.Longitude = &lat, &lng
	}

	return resp
}
