package impl

import (
	"context"
	"strings"

	"tradie/config"
	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	"tradie/internal/domain/service"
	"tradie/internal/errors"
	"tradie/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type listingService struct {
	listingRepo   repository.ListingRepository
	qrcodeService service.QRCodeService
	publicBaseURL string
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo   repository.ListingRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listingRepo:   params.ListingRepo,
		qrcodeService: params.QRCodeService,
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
	}
}

// GetListing retrieves a single listing by ID.
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to get listing")
	}

	return listing, nil
}

// ListOwnerListings retrieves all listings owned by the given principal.
func (s *listingService) ListOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	listings, err := s.listingRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner listings")
	}

	return listings, nil
}

// GenerateShareQR renders a QR code PNG pointing at the listing's public
// page. The listing must exist; sharing an unknown ID is a not-found.
func (s *listingService) GenerateShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to load listing for QR code")
	}

	shareURL := s.publicBaseURL + "/listings/" + listingID.String()

	png, err := s.qrcodeService.GeneratePNG(shareURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
