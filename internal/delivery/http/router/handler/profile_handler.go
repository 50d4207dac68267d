package handler

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"tradie/config"
	deliverycontext "tradie/internal/delivery/context"
	"tradie/internal/delivery/http/middleware"
	"tradie/internal/delivery/http/response"
	"tradie/internal/usecase"
	"tradie/internal/wizard"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	ProfileUC    usecase.ProfileUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// ProfileHandler holds dependencies for business-profile-related handlers
type ProfileHandler struct {
	submissionUC usecase.SubmissionUsecase
	profileUC    usecase.ProfileUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		submissionUC: params.SubmissionUC,
		profileUC:    params.ProfileUC,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// ProfileDraftPayload is the wire form of a business profile wizard draft.
type ProfileDraftPayload struct {
	BusinessName string         `json:"business_name"`
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
	LogoURL      string         `json:"logo_url,omitempty"`
	CoverURL     string         `json:"cover_url,omitempty"`
	GalleryURLs  []string       `json:"gallery_urls,omitempty"`
}

// ValidateProfileStepRequest asks whether one wizard step's fields pass.
type ValidateProfileStepRequest struct {
	Mode      string              `json:"mode" validate:"required,oneof=create update"`
	StepIndex int                 `json:"step_index" validate:"gte=0"`
	Draft     ProfileDraftPayload `json:"draft"`
}

func (p *ProfileDraftPayload) toDraft() *wizard.Draft {
	return &wizard.Draft{
		BusinessName: p.BusinessName,
		Description:  p.Description,
		Email:        p.Email,
		Mobile:       p.Mobile,
		OfficePhone:  p.OfficePhone,
		Website:      p.Website,
		YearsTrading: p.YearsTrading,
		WorkTypes:    p.WorkTypes,
		Trades:       p.Trades,
		Skills:       skillsToEntity(p.Skills),
		Address:      p.Address.toEntity(),
	}
}

func (h *ProfileHandler) parseProfileDraft(c echo.Context) (*wizard.Draft, error) {
	var payload ProfileDraftPayload
	var form *multipart.Form

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var err error
		form, err = c.MultipartForm()
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(c.FormValue("draft")), &payload); err != nil {
			return nil, err
		}
	} else {
		if err := c.Bind(&payload); err != nil {
			return nil, err
		}
	}

	draft := payload.toDraft()

	maxFileBytes, maxGallery := submissionLimits(h.cfg)
	media, err := collectMediaSlots(
		form,
		payload.LogoURL, payload.CoverURL, payload.GalleryURLs,
		true,
		maxFileBytes, maxGallery,
	)
	if err != nil {
		return nil, err
	}
	draft.Media = media

	return draft, nil
}

// CreateProfile handles first-time business profile submissions
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	return h.submitProfile(c, nil)
}

// UpdateProfile handles edits of an existing business profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	return h.submitProfile(c, &profileID)
}

func (h *ProfileHandler) submitProfile(c echo.Context, profileID *uuid.UUID) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	draft, err := h.parseProfileDraft(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.submissionUC.SubmitProfile(c.Request().Context(), userID, &usecase.ProfileSubmission{
		ProfileID: profileID,
		Draft:     draft,
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return response.HandleSubmissionError(c, err)
	}

	statusCode := http.StatusOK
	message := "Profile updated successfully"
	if profileID == nil {
		statusCode = http.StatusCreated
		message = "Profile created successfully"
	}

	return response.Success(c, statusCode, submissionResultResponse(result), message)
}

// ValidateProfileStep validates one wizard step without submitting
func (h *ProfileHandler) ValidateProfileStep(c echo.Context) error {
	var req ValidateProfileStepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step validation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result := h.submissionUC.ValidateProfileStep(wizard.Mode(req.Mode), req.StepIndex, req.Draft.toDraft())

	return response.Success(c, http.StatusOK, stepResultResponse(result), "Step validated")
}

// GetProfile handles retrieving a business profile by ID
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profileResponse(profile), "Profile retrieved successfully")
}

// GetOwnProfile handles retrieving the authenticated owner's profile
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetOwnProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profileResponse(profile), "Profile retrieved successfully")
}
