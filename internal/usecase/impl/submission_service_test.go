package impl

import (
	"context"
	"log/slog"
	"testing"

	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/domain/repository"
	mockRepo "tradie/internal/mocks/repository"
	mockSvc "tradie/internal/mocks/service"
	"tradie/internal/usecase"
	"tradie/internal/wizard"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionMocks struct {
	listingRepo  *mockRepo.MockListingRepository
	businessRepo *mockRepo.MockBusinessRepository
	txManager    *mockRepo.MockTransactionManager
	storage      *mockSvc.MockMediaStorage
	geocoder     *mockSvc.MockGeocoder
	publisher    *mockSvc.MockEventPublisher
}

func newSubmissionService(t *testing.T) (usecase.SubmissionUsecase, *submissionMocks) {
	t.Helper()

	m := &submissionMocks{
		listingRepo:  mockRepo.NewMockListingRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		storage:      mockSvc.NewMockMediaStorage(t),
		geocoder:     mockSvc.NewMockGeocoder(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	service := NewSubmissionService(SubmissionServiceParams{
		ListingRepo:  m.listingRepo,
		BusinessRepo: m.businessRepo,
		TxManager:    m.txManager,
		MediaStorage: m.storage,
		Geocoder:     m.geocoder,
		Publisher:    m.publisher,
		Logger:       slog.Default(),
	})

	return service, m
}

// expectListingTx wires the transaction manager so the callback runs against
// the given listing repository, mirroring what the real manager does.
func (m *submissionMocks) expectListingTx(ctx context.Context, repo repository.ListingRepository) {
	factory := &stubFactory{listingRepo: repo}
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func (m *submissionMocks) expectProfileTx(ctx context.Context, repo repository.BusinessRepository) {
	factory := &stubFactory{businessRepo: repo}
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

type stubFactory struct {
	listingRepo  repository.ListingRepository
	businessRepo repository.BusinessRepository
}

func (f *stubFactory) NewListingRepository() repository.ListingRepository {
	return f.listingRepo
}

func (f *stubFactory) NewBusinessRepository() repository.BusinessRepository {
	return f.businessRepo
}

func validListingDraft() *wizard.Draft {
	return &wizard.Draft{
		Category:    "vehicle",
		Title:       "2018 Hilux flat deck",
		Description: "Well maintained, one owner",
		Address: entity.Address{
			City:   "Auckland",
			Region: "Auckland",
		},
	}
}

func TestSubmissionService_SubmitListing_CreateSuccess(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	ownerID := uuid.New()
	listingID := uuid.New()

	txRepo := mockRepo.NewMockListingRepository(t)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, listing *entity.Listing) {
			listing.ID = listingID
		}).
		Return(nil)
	m.expectListingTx(ctx, txRepo)

	m.geocoder.EXPECT().
		Geocode(ctx, "Auckland, Auckland").
		Return(orb.Point{174.7633, -36.8485}, nil)

	m.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	result, err := service.SubmitListing(ctx, ownerID, &usecase.ListingSubmission{
		Draft: validListingDraft(),
	})

	require.NoError(t, err)
	assert.Equal(t, listingID, result.EntityID)
	assert.True(t, result.Geocoded)
	assert.Empty(t, result.GeocodingWarning)
}

func TestSubmissionService_SubmitListing_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	service, _ := newSubmissionService(t)

	draft := validListingDraft()
	draft.Title = "   "

	result, err := service.SubmitListing(ctx, uuid.New(), &usecase.ListingSubmission{Draft: draft})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageValidation, stageErr.Stage)
	assert.Contains(t, stageErr.FieldErrors, "title")
}

func TestSubmissionService_SubmitListing_UploadFailureSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	draft := validListingDraft()
	draft.Address = entity.Address{}
	draft.Media = []entity.MediaSlot{
		{
			Role:        entity.MediaRoleGallery,
			Filename:    "site.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("jpeg-bytes"),
		},
	}

	m.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), "image/jpeg", []byte("jpeg-bytes")).
		Return("", errors.New("storage returned 500"))

	result, err := service.SubmitListing(ctx, uuid.New(), &usecase.ListingSubmission{Draft: draft})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageUpload, stageErr.Stage)
	assert.Contains(t, stageErr.Message, "Gallery image upload failed")

	// The persistence write must never run: txManager has no expectations,
	// so any Execute call would fail the test.
}

func TestSubmissionService_SubmitListing_OwnershipForbiddenShortCircuits(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	listingID := uuid.New()
	actingPrincipal := uuid.New()
	actualOwner := uuid.New()

	m.listingRepo.EXPECT().
		FindByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID, OwnerID: actualOwner}, nil)

	draft := validListingDraft()
	draft.Media = []entity.MediaSlot{
		{Role: entity.MediaRoleCover, Filename: "cover.jpg", ContentType: "image/jpeg", Data: []byte("x")},
	}

	result, err := service.SubmitListing(ctx, actingPrincipal, &usecase.ListingSubmission{
		ListingID: &listingID,
		Draft:     draft,
	})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageOwnership, stageErr.Stage)
	assert.Contains(t, stageErr.Message, "Forbidden")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// Zero upload and zero geocode calls: the storage and geocoder mocks
	// carry no expectations.
}

func TestSubmissionService_SubmitListing_OwnershipNotFound(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	listingID := uuid.New()

	m.listingRepo.EXPECT().
		FindByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	result, err := service.SubmitListing(ctx, uuid.New(), &usecase.ListingSubmission{
		ListingID: &listingID,
		Draft:     validListingDraft(),
	})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageOwnership, stageErr.Stage)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestSubmissionService_SubmitListing_UnchangedAddressSkipsGeocode(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	listingID := uuid.New()
	ownerID := uuid.New()
	storedLocation := orb.Point{174.7633, -36.8485}

	existing := &entity.Listing{
		ID:      listingID,
		OwnerID: ownerID,
		Address: entity.Address{City: "Auckland", Region: "Auckland"},
		// Coordinates from the original submission.
		Location: &storedLocation,
	}

	m.listingRepo.EXPECT().FindByID(ctx, listingID).Return(existing, nil)

	txRepo := mockRepo.NewMockListingRepository(t)
	txRepo.EXPECT().FindByID(ctx, listingID).Return(existing, nil)

	var persisted *entity.Listing
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, listing *entity.Listing) {
			persisted = listing
		}).
		Return(nil)
	m.expectListingTx(ctx, txRepo)

	m.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	result, err := service.SubmitListing(ctx, ownerID, &usecase.ListingSubmission{
		ListingID: &listingID,
		Draft:     validListingDraft(),
	})

	require.NoError(t, err)
	assert.True(t, result.Geocoded)
	assert.Empty(t, result.GeocodingWarning)

	require.NotNil(t, persisted)
	require.NotNil(t, persisted.Location)
	assert.Equal(t, storedLocation, *persisted.Location)

	// The geocoder mock carries no expectations: an unchanged address
	// must not trigger a lookup.
}

func TestSubmissionService_SubmitListing_GeocodeFailureIsSoft(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	ownerID := uuid.New()
	listingID := uuid.New()

	m.geocoder.EXPECT().
		Geocode(ctx, "Auckland, Auckland").
		Return(orb.Point{}, errors.New("provider unavailable"))

	txRepo := mockRepo.NewMockListingRepository(t)

	var persisted *entity.Listing
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, listing *entity.Listing) {
			listing.ID = listingID
			persisted = listing
		}).
		Return(nil)
	m.expectListingTx(ctx, txRepo)

	m.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	result, err := service.SubmitListing(ctx, ownerID, &usecase.ListingSubmission{
		Draft: validListingDraft(),
	})

	require.NoError(t, err)
	assert.Equal(t, listingID, result.EntityID)
	assert.False(t, result.Geocoded)
	assert.NotEmpty(t, result.GeocodingWarning)

	require.NotNil(t, persisted)
	assert.Nil(t, persisted.Location)
}

func TestSubmissionService_SubmitListing_DuplicateTitle(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	draft := validListingDraft()
	draft.Address = entity.Address{}
	draft.Media = []entity.MediaSlot{
		{Role: entity.MediaRoleCover, Filename: "cover.jpg", ContentType: "image/jpeg", Data: []byte("x")},
	}

	var uploadedKey string
	m.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), "image/jpeg", []byte("x")).
		RunAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			uploadedKey = key

			return "https://media.example.nz/" + key, nil
		})

	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(domainerrors.ErrDuplicateListing)

	// Orphaned media from the failed submission is cleaned up best-effort.
	m.storage.EXPECT().
		Delete(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, uploadedKey, key)

			return nil
		})

	result, err := service.SubmitListing(ctx, uuid.New(), &usecase.ListingSubmission{Draft: draft})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StagePersistence, stageErr.Stage)
	assert.Equal(t, "You already have a listing with this title", stageErr.Message)
}

func TestSubmissionService_SubmitListing_PublishFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	draft := validListingDraft()
	draft.Address = entity.Address{}

	txRepo := mockRepo.NewMockListingRepository(t)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Return(nil)
	m.expectListingTx(ctx, txRepo)

	m.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(errors.New("broker unavailable"))

	result, err := service.SubmitListing(ctx, uuid.New(), &usecase.ListingSubmission{Draft: draft})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Geocoded)
}

func validProfileDraft() *wizard.Draft {
	return &wizard.Draft{
		BusinessName: "Harbour City Plumbing",
		Email:        "Office@HarbourPlumbing.co.nz",
		Website:      "harbourplumbing.co.nz",
		YearsTrading: 12,
		WorkTypes:    []string{"Residential"},
		Trades:       []string{"Plumbing"},
		Skills:       []entity.Skill{{Trade: "Plumbing", Name: "Gas fitting"}},
		Address: entity.Address{
			Street: "14 Victoria St",
			City:   "Wellington",
			Region: "Wellington",
		},
	}
}

func TestSubmissionService_SubmitProfile_CreateSuccessNormalizes(t *testing.T) {
	ctx := context.Background()
	service, m := newSubmissionService(t)

	ownerID := uuid.New()
	profileID := uuid.New()

	m.geocoder.EXPECT().
		Geocode(ctx, "14 Victoria St, Wellington, Wellington").
		Return(orb.Point{174.7756, -41.2866}, nil)

	txRepo := mockRepo.NewMockBusinessRepository(t)

	var persisted *entity.BusinessProfile
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
		Run(func(_ context.Context, profile *entity.BusinessProfile) {
			profile.ID = profileID
			persisted = profile
		}).
		Return(nil)
	m.expectProfileTx(ctx, txRepo)

	m.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	result, err := service.SubmitProfile(ctx, ownerID, &usecase.ProfileSubmission{
		Draft: validProfileDraft(),
	})

	require.NoError(t, err)
	assert.Equal(t, profileID, result.EntityID)
	assert.True(t, result.Geocoded)

	require.NotNil(t, persisted)
	assert.Equal(t, "office@harbourplumbing.co.nz", persisted.Email)
	assert.Equal(t, "https://harbourplumbing.co.nz", persisted.Website)
	require.NotNil(t, persisted.Location)
	assert.InDelta(t, -41.2866, persisted.Location.Lat(), 1e-9)
}

func TestSubmissionService_SubmitProfile_MissingContactMethod(t *testing.T) {
	ctx := context.Background()
	service, _ := newSubmissionService(t)

	draft := validProfileDraft()
	draft.Email = ""
	draft.Mobile = ""
	draft.OfficePhone = ""

	result, err := service.SubmitProfile(ctx, uuid.New(), &usecase.ProfileSubmission{Draft: draft})

	require.Error(t, err)
	assert.Nil(t, result)

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageValidation, stageErr.Stage)
	assert.Contains(t, stageErr.FieldErrors, "contact")
}

func TestSubmissionService_SubmitListing_NilDraft(t *testing.T) {
	service, _ := newSubmissionService(t)

	_, err := service.SubmitListing(context.Background(), uuid.New(), &usecase.ListingSubmission{})

	var stageErr *usecase.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, usecase.StageValidation, stageErr.Stage)
}

func TestSubmissionService_ValidateListingStep(t *testing.T) {
	service, _ := newSubmissionService(t)

	draft := validListingDraft()
	draft.Title = "ab"

	result := service.ValidateListingStep(wizard.ModeCreate, 0, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "title")

	draft.Title = "2018 Hilux flat deck"
	result = service.ValidateListingStep(wizard.ModeCreate, 0, draft)
	assert.True(t, result.Valid)
}
