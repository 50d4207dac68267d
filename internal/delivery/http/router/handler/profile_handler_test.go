package handler

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	deliverycontext "tradie/internal/delivery/context"
	"tradie/internal/domain/entity"
	domainerrors "tradie/internal/domain/errors"
	mockUsecase "tradie/internal/mocks/usecase"
	"tradie/internal/usecase"
	"tradie/internal/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockSubmissionUsecase, *mockUsecase.MockProfileUsecase) {
	t.Helper()

	submissionUC := mockUsecase.NewMockSubmissionUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{
		submissionUC: submissionUC,
		profileUC:    profileUC,
		cfg:          testConfig(),
		logger:       slog.Default(),
	}

	return h, submissionUC, profileUC
}

func TestProfileHandler_CreateProfile_Success(t *testing.T) {
	h, submissionUC, _ := newProfileHandler(t)
	ownerID := uuid.New()
	profileID := uuid.New()

	var captured *usecase.ProfileSubmission
	submissionUC.EXPECT().
		SubmitProfile(mock.Anything, ownerID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, submission *usecase.ProfileSubmission) {
			captured = submission
		}).
		Return(&usecase.SubmissionResult{EntityID: profileID, Geocoded: true}, nil)

	body := `{
		"business_name": "Harbour City Plumbing",
		"email": "office@harbourplumbing.co.nz",
		"years_trading": 12,
		"work_types": ["Residential"],
		"trades": ["Plumbing"],
		"skills": [{"trade":"Plumbing","name":"Gasfitting"}],
		"address": {"city":"Wellington","region":"Wellington"}
	}`
	c, rec := newTestContext(http.MethodPost, "/profiles", echo.MIMEApplicationJSON, strings.NewReader(body))
	c.Set("userID", ownerID)

	require.NoError(t, h.CreateProfile(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), profileID.String())

	require.NotNil(t, captured)
	assert.Nil(t, captured.ProfileID)
	assert.Equal(t, "Harbour City Plumbing", captured.Draft.BusinessName)
	require.Len(t, captured.Draft.Skills, 1)
	assert.Equal(t, entity.Skill{Trade: "Plumbing", Name: "Gasfitting"}, captured.Draft.Skills[0])
}

func TestProfileHandler_CreateProfile_CarriesRequestID(t *testing.T) {
	h, submissionUC, _ := newProfileHandler(t)
	ownerID := uuid.New()

	var captured *usecase.ProfileSubmission
	submissionUC.EXPECT().
		SubmitProfile(mock.Anything, ownerID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, submission *usecase.ProfileSubmission) {
			captured = submission
		}).
		Return(&usecase.SubmissionResult{EntityID: uuid.New()}, nil)

	c, rec := newTestContext(http.MethodPost, "/profiles", echo.MIMEApplicationJSON, strings.NewReader(`{"business_name":"Sparks R Us"}`))
	c.Set("userID", ownerID)
	deliverycontext.SetRequestID(c, "req-abc-123")

	require.NoError(t, h.CreateProfile(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "req-abc-123", captured.RequestID)
}

func TestProfileHandler_UpdateProfile_DuplicateNameMapsTo409(t *testing.T) {
	h, submissionUC, _ := newProfileHandler(t)
	ownerID := uuid.New()
	profileID := uuid.New()

	submissionUC.EXPECT().
		SubmitProfile(mock.Anything, ownerID, mock.Anything).
		Return(nil, &usecase.StageError{
			Stage:   usecase.StagePersistence,
			Message: "A profile with this business name already exists",
			Err:     domainerrors.ErrDuplicateBusinessName,
		})

	c, rec := newTestContext(http.MethodPut, "/profiles/"+profileID.String(), echo.MIMEApplicationJSON, strings.NewReader(`{"business_name":"Harbour City Plumbing"}`))
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())
	c.Set("userID", ownerID)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "A profile with this business name already exists")
}

func TestProfileHandler_CreateProfile_MultipartLogoSlot(t *testing.T) {
	h, submissionUC, _ := newProfileHandler(t)
	ownerID := uuid.New()

	var captured *usecase.ProfileSubmission
	submissionUC.EXPECT().
		SubmitProfile(mock.Anything, ownerID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, submission *usecase.ProfileSubmission) {
			captured = submission
		}).
		Return(&usecase.SubmissionResult{EntityID: uuid.New()}, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("draft", `{"business_name":"Sparks R Us","cover_url":"https://media.tradie.nz/cover/kept.jpg"}`))
	logoPart, err := form.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = logoPart.Write([]byte("logo-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	c, rec := newTestContext(http.MethodPost, "/profiles", form.FormDataContentType(), &buf)
	c.Set("userID", ownerID)

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, captured)
	require.Len(t, captured.Draft.Media, 2)

	logo := captured.Draft.Media[0]
	assert.Equal(t, entity.MediaRoleLogo, logo.Role)
	assert.Equal(t, []byte("logo-bytes"), logo.Data)

	cover := captured.Draft.Media[1]
	assert.Equal(t, entity.MediaRoleCover, cover.Role)
	assert.Equal(t, "https://media.tradie.nz/cover/kept.jpg", cover.RemoteURL)
	assert.Empty(t, cover.Data)
}

func TestProfileHandler_ValidateProfileStep(t *testing.T) {
	h, submissionUC, _ := newProfileHandler(t)

	submissionUC.EXPECT().
		ValidateProfileStep(wizard.ModeUpdate, 1, mock.Anything).
		Return(wizard.StepResult{Valid: true, FieldErrors: wizard.FieldErrors{}})

	body := `{"mode":"update","step_index":1,"draft":{"business_name":"Sparks R Us","email":"info@sparks.co.nz"}}`
	c, rec := newTestContext(http.MethodPost, "/profiles/validate-step", echo.MIMEApplicationJSON, strings.NewReader(body))

	require.NoError(t, h.ValidateProfileStep(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestProfileHandler_GetOwnProfile(t *testing.T) {
	h, _, profileUC := newProfileHandler(t)
	ownerID := uuid.New()

	profileUC.EXPECT().
		GetOwnProfile(mock.Anything, ownerID).
		Return(&entity.BusinessProfile{ID: uuid.New(), OwnerID: ownerID, Name: "Harbour City Plumbing"}, nil)

	c, rec := newTestContext(http.MethodGet, "/my/profile", "", nil)
	c.Set("userID", ownerID)

	require.NoError(t, h.GetOwnProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Harbour City Plumbing")
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	h, _, profileUC := newProfileHandler(t)
	profileID := uuid.New()

	profileUC.EXPECT().
		GetProfile(mock.Anything, profileID).
		Return(nil, domainerrors.ErrProfileNotFound)

	c, rec := newTestContext(http.MethodGet, "/profiles/"+profileID.String(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}
