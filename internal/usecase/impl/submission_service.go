// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	"tradie/internal/domain/service"
	"tradie/internal/errors"
	"tradie/internal/usecase"
	"tradie/internal/wizard"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	validationFailedMessage = "Please fix the highlighted fields"

	eventKindListing = "listing"
	eventKindProfile = "business_profile"

	eventActionCreated = "created"
	eventActionUpdated = "updated"
)

type submissionService struct {
	listingRepo  repository.ListingRepository
	businessRepo repository.BusinessRepository
	txManager    repository.TransactionManager
	uploader     *mediaUploader
	geocoder     service.Geocoder
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	BusinessRepo repository.BusinessRepository
	TxManager    repository.TransactionManager
	MediaStorage service.MediaStorage
	Geocoder     service.Geocoder
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		listingRepo:  params.ListingRepo,
		businessRepo: params.BusinessRepo,
		txManager:    params.TxManager,
		uploader:     newMediaUploader(params.MediaStorage, params.Logger),
		geocoder:     params.Geocoder,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// ValidateListingStep validates a single listing wizard step.
func (s *submissionService) ValidateListingStep(mode wizard.Mode, stepIndex int, draft *wizard.Draft) wizard.StepResult {
	return wizard.ValidateStep(wizard.ListingSteps(mode), stepIndex, draft)
}

// ValidateProfileStep validates a single profile wizard step.
func (s *submissionService) ValidateProfileStep(mode wizard.Mode, stepIndex int, draft *wizard.Draft) wizard.StepResult {
	return wizard.ValidateStep(wizard.ProfileSteps(mode), stepIndex, draft)
}

// SubmitListing runs the pipeline for a listing draft: re-validate every
// step, check ownership on the update path, upload pending media, geocode a
// changed address, then persist inside one transaction and announce the
// result. Stages run strictly in that order.
func (s *submissionService) SubmitListing(ctx context.Context, ownerID uuid.UUID, submission *usecase.ListingSubmission) (*usecase.SubmissionResult, error) {
	if submission == nil || submission.Draft == nil {
		return nil, &usecase.StageError{Stage: usecase.StageValidation, Message: "No draft supplied"}
	}

	mode := wizard.ModeCreate
	if submission.ListingID != nil {
		mode = wizard.ModeUpdate
	}

	if result := wizard.ValidateAll(wizard.ListingSteps(mode), submission.Draft); !result.Valid {
		return nil, &usecase.StageError{
			Stage:       usecase.StageValidation,
			Message:     validationFailedMessage,
			FieldErrors: result.FieldErrors,
		}
	}

	// Ownership runs before uploads so no storage I/O is wasted on a
	// record the caller cannot modify.
	var existing *entity.Listing
	if submission.ListingID != nil {
		var stageErr *usecase.StageError
		existing, stageErr = s.guardListingOwnership(ctx, ownerID, *submission.ListingID)
		if stageErr != nil {
			return nil, stageErr
		}
	}

	urls, uploadedKeys, err := s.uploader.UploadAll(ctx, submission.Draft.Media)
	if err != nil {
		return nil, &usecase.StageError{Stage: usecase.StageUpload, Message: err.Error(), Err: err}
	}

	draft := wizard.NormalizeDraft(submission.Draft)
	media := resolveMedia(draft.Media, urls)

	var previousAddress *entity.Address
	var previousLocation *orb.Point
	if existing != nil {
		previousAddress = &existing.Address
		previousLocation = existing.Location
	}
	location, geocoded, warning := s.resolveLocation(ctx, previousAddress, previousLocation, draft.Address)

	listing := &entity.Listing{
		OwnerID:     ownerID,
		Category:    entity.ListingCategory(draft.Category),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Address:     draft.Address,
		Location:    location,
		CoverURL:    media.cover,
		GalleryURLs: media.gallery,
	}
	if existing != nil {
		listing.ID = existing.ID
		listing.CreatedAt = existing.CreatedAt
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewListingRepository()
		if existing == nil {
			return repo.Create(ctx, listing)
		}

		// Re-check ownership inside the transaction; the record may
		// have changed hands since the pre-upload guard.
		current, err := repo.FindByID(ctx, listing.ID)
		if err != nil {
			return err
		}
		if current.OwnerID != ownerID {
			return domainerrors.ErrForbidden
		}

		return repo.Update(ctx, listing)
	})
	if err != nil {
		s.uploader.Cleanup(context.WithoutCancel(ctx), uploadedKeys)

		return nil, &usecase.StageError{
			Stage:   usecase.StagePersistence,
			Message: persistenceMessage(err, "Could not save the listing"),
			Err:     err,
		}
	}

	s.publishEvent(ctx, &service.ListingEvent{
		RequestID: submission.RequestID,
		EntityID:  listing.ID.String(),
		OwnerID:   ownerID.String(),
		Kind:      eventKindListing,
		Action:    modeAction(mode),
		Title:     listing.Title,
		Latitude:  locationLat(location),
		Longitude: locationLon(location),
	})

	return &usecase.SubmissionResult{
		EntityID:         listing.ID,
		Geocoded:         geocoded,
		GeocodingWarning: warning,
	}, nil
}

// SubmitProfile runs the pipeline for a business profile draft. The stage
// order matches SubmitListing.
func (s *submissionService) SubmitProfile(ctx context.Context, ownerID uuid.UUID, submission *usecase.ProfileSubmission) (*usecase.SubmissionResult, error) {
	if submission == nil || submission.Draft == nil {
		return nil, &usecase.StageError{Stage: usecase.StageValidation, Message: "No draft supplied"}
	}

	mode := wizard.ModeCreate
	if submission.ProfileID != nil {
		mode = wizard.ModeUpdate
	}

	if result := wizard.ValidateAll(wizard.ProfileSteps(mode), submission.Draft); !result.Valid {
		return nil, &usecase.StageError{
			Stage:       usecase.StageValidation,
			Message:     validationFailedMessage,
			FieldErrors: result.FieldErrors,
		}
	}

	var existing *entity.BusinessProfile
	if submission.ProfileID != nil {
		var stageErr *usecase.StageError
		existing, stageErr = s.guardProfileOwnership(ctx, ownerID, *submission.ProfileID)
		if stageErr != nil {
			return nil, stageErr
		}
	}

	urls, uploadedKeys, err := s.uploader.UploadAll(ctx, submission.Draft.Media)
	if err != nil {
		return nil, &usecase.StageError{Stage: usecase.StageUpload, Message: err.Error(), Err: err}
	}

	draft := wizard.NormalizeDraft(submission.Draft)
	media := resolveMedia(draft.Media, urls)

	var previousAddress *entity.Address
	var previousLocation *orb.Point
	if existing != nil {
		previousAddress = &existing.Address
		previousLocation = existing.Location
	}
	location, geocoded, warning := s.resolveLocation(ctx, previousAddress, previousLocation, draft.Address)

	profile := &entity.BusinessProfile{
		OwnerID:      ownerID,
		Name:         draft.BusinessName,
		Description:  draft.Description,
		Email:        draft.Email,
		Mobile:       draft.Mobile,
		OfficePhone:  draft.OfficePhone,
		Website:      draft.Website,
		YearsTrading: draft.YearsTrading,
		WorkTypes:    draft.WorkTypes,
		Trades:       draft.Trades,
		Skills:       draft.Skills,
		Address:      draft.Address,
		Location:     location,
		LogoURL:      media.logo,
		CoverURL:     media.cover,
		GalleryURLs:  media.gallery,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBusinessRepository()
		if existing == nil {
			return repo.Create(ctx, profile)
		}

		current, err := repo.FindByID(ctx, profile.ID)
		if err != nil {
			return err
		}
		if current.OwnerID != ownerID {
			return domainerrors.ErrForbidden
		}

		return repo.Update(ctx, profile)
	})
	if err != nil {
		s.uploader.Cleanup(context.WithoutCancel(ctx), uploadedKeys)

		return nil, &usecase.StageError{
			Stage:   usecase.StagePersistence,
			Message: persistenceMessage(err, "Could not save the business profile"),
			Err:     err,
		}
	}

	s.publishEvent(ctx, &service.ListingEvent{
		RequestID: submission.RequestID,
		EntityID:  profile.ID.String(),
		OwnerID:   ownerID.String(),
		Kind:      eventKindProfile,
		Action:    modeAction(mode),
		Title:     profile.Name,
		Latitude:  locationLat(location),
		Longitude: locationLon(location),
	})

	return &usecase.SubmissionResult{
		EntityID:         profile.ID,
		Geocoded:         geocoded,
		GeocodingWarning: warning,
	}, nil
}

// guardListingOwnership verifies the listing exists and belongs to the
// acting principal. NotFound and Forbidden are reported as distinct
// ownership failures.
func (s *submissionService) guardListingOwnership(ctx context.Context, ownerID, listingID uuid.UUID) (*entity.Listing, *usecase.StageError) {
	existing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, &usecase.StageError{
				Stage:   usecase.StageOwnership,
				Message: "Listing not found",
				Err:     domainerrors.ErrListingNotFound,
			}
		}

		return nil, &usecase.StageError{
			Stage:   usecase.StageOwnership,
			Message: "Could not verify listing ownership",
			Err:     err,
		}
	}
	if existing.OwnerID != ownerID {
		return nil, &usecase.StageError{
			Stage:   usecase.StageOwnership,
			Message: "Forbidden: you do not own this listing",
			Err:     domainerrors.ErrForbidden,
		}
	}

	return existing, nil
}

// guardProfileOwnership is the business profile counterpart of
// guardListingOwnership.
func (s *submissionService) guardProfileOwnership(ctx context.Context, ownerID, profileID uuid.UUID) (*entity.BusinessProfile, *usecase.StageError) {
	existing, err := s.businessRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, &usecase.StageError{
				Stage:   usecase.StageOwnership,
				Message: "Business profile not found",
				Err:     domainerrors.ErrProfileNotFound,
			}
		}

		return nil, &usecase.StageError{
			Stage:   usecase.StageOwnership,
			Message: "Could not verify profile ownership",
			Err:     err,
		}
	}
	if existing.OwnerID != ownerID {
		return nil, &usecase.StageError{
			Stage:   usecase.StageOwnership,
			Message: "Forbidden: you do not own this profile",
			Err:     domainerrors.ErrForbidden,
		}
	}

	return existing, nil
}

// resolveLocation decides whether to geocode and with what outcome. A
// provider error is a soft failure: the submission proceeds without
// coordinates and the warning travels back to the caller. An unchanged
// address keeps its stored coordinates and counts as geocoded.
func (s *submissionService) resolveLocation(ctx context.Context, previous *entity.Address, previousLocation *orb.Point, candidate entity.Address) (*orb.Point, bool, string) {
	if !entity.ShouldGeocode(previous, candidate) {
		if candidate.IsEmpty() {
			return nil, false, ""
		}

		return previousLocation, true, ""
	}

	if candidate.IsEmpty() {
		// Update path where the address was cleared.
		return nil, false, ""
	}

	point, err := s.geocoder.Geocode(ctx, candidate.FormattedLine())
	if err != nil {
		s.logger.Warn("Geocoding failed, continuing without coordinates",
			slog.String("address", candidate.FormattedLine()),
			slog.String("error", err.Error()),
		)

		return nil, false, fmt.Sprintf("The address could not be verified (%v); the record was saved without a map location", err)
	}

	return &point, true, ""
}

// publishEvent announces a persisted submission. Publishing is best-effort;
// a broker outage never fails a submission that already committed.
func (s *submissionService) publishEvent(ctx context.Context, event *service.ListingEvent) {
	if err := s.publisher.PublishListingEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish submission event",
			slog.String("entity_id", event.EntityID),
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}

// resolvedMedia is the per-role URL set after merging freshly uploaded URLs
// with remote URLs carried over from a previous submission.
type resolvedMedia struct {
	logo    string
	cover   string
	gallery []string
}

func resolveMedia(slots []entity.MediaSlot, uploaded map[string]string) resolvedMedia {
	var resolved resolvedMedia

	type galleryEntry struct {
		index int
		url   string
	}
	var gallery []galleryEntry

	for _, slot := range slots {
		url := slot.RemoteURL
		if fresh, ok := uploaded[slot.SlotKey()]; ok {
			url = fresh
		}
		if url == "" {
			continue
		}

		switch slot.Role {
		case entity.MediaRoleLogo:
			resolved.logo = url
		case entity.MediaRoleCover:
			resolved.cover = url
		case entity.MediaRoleGallery:
			gallery = append(gallery, galleryEntry{index: slot.GalleryIndex, url: url})
		}
	}

	slices.SortStableFunc(gallery, func(a, b galleryEntry) int {
		return a.index - b.index
	})
	for _, entry := range gallery {
		resolved.gallery = append(resolved.gallery, entry.url)
	}

	return resolved
}

// persistenceMessage extracts the user-facing message from a domain error,
// falling back to a generic one for raw database failures.
func persistenceMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
}

func modeAction(mode wizard.Mode) string {
	if mode == wizard.ModeUpdate {
		return eventActionUpdated
	}

	return eventActionCreated
}

func locationLat(location *orb.Point) *float64 {
	if location == nil {
		return nil
	}
	lat := location.Lat()

	return &lat
}

func locationLon(location *orb.Point) *float64 {
	if location == nil {
		return nil
	}
	lon := location.Lon()

	return &lon
}
