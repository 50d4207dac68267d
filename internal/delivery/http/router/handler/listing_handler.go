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

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	ListingUC    usecase.ListingUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// ListingHandler holds dependencies for listing-related handlers
type ListingHandler struct {
	submissionUC usecase.SubmissionUsecase
	listingUC    usecase.ListingUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		submissionUC: params.SubmissionUC,
		listingUC:    params.ListingUC,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// ListingDraftPayload is the wire form of a listing wizard draft. Carried
// over media URLs live here; fresh files arrive as multipart file parts.
type ListingDraftPayload struct {
	Category    string         `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       *float64       `json:"price,omitempty"`
	Address     AddressPayload `json:"address"`
	CoverURL    string         `json:"cover_url,omitempty"`
	GalleryURLs []string       `json:"gallery_urls,omitempty"`
}

// ValidateListingStepRequest asks whether one wizard step's fields pass.
type ValidateListingStepRequest struct {
	Mode      string              `json:"mode" validate:"required,oneof=create update"`
	StepIndex int                 `json:"step_index" validate:"gte=0"`
	Draft     ListingDraftPayload `json:"draft"`
}

func (p *ListingDraftPayload) toDraft() *wizard.Draft {
	return &wizard.Draft{
		Category:    p.Category,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Address:     p.Address.toEntity(),
	}
}

// parseListingDraft decodes the draft from either a plain JSON body or a
// multipart form whose "draft" field carries the JSON and whose file parts
// carry fresh media.
func (h *ListingHandler) parseListingDraft(c echo.Context) (*wizard.Draft, error) {
	var payload ListingDraftPayload
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
		"", payload.CoverURL, payload.GalleryURLs,
		false,
		maxFileBytes, maxGallery,
	)
	if err != nil {
		return nil, err
	}
	draft.Media = media

	return draft, nil
}

// CreateListing handles first-time listing submissions
func (h *ListingHandler) CreateListing(c echo.Context) error {
	return h.submitListing(c, nil)
}

// UpdateListing handles edits of an existing listing
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	return h.submitListing(c, &listingID)
}

func (h *ListingHandler) submitListing(c echo.Context, listingID *uuid.UUID) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	draft, err := h.parseListingDraft(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.submissionUC.SubmitListing(c.Request().Context(), userID, &usecase.ListingSubmission{
		ListingID: listingID,
		Draft:     draft,
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return response.HandleSubmissionError(c, err)
	}

	statusCode := http.StatusOK
	message := "Listing updated successfully"
	if listingID == nil {
		statusCode = http.StatusCreated
		message = "Listing created successfully"
	}

	return response.Success(c, statusCode, submissionResultResponse(result), message)
}

// ValidateListingStep validates one wizard step without submitting
func (h *ListingHandler) ValidateListingStep(c echo.Context) error {
	var req ValidateListingStepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step validation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result := h.submissionUC.ValidateListingStep(wizard.Mode(req.Mode), req.StepIndex, req.Draft.toDraft())

	return response.Success(c, http.StatusOK, stepResultResponse(result), "Step validated")
}

// GetListing handles retrieving a single listing by ID
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listingResponse(listing), "Listing retrieved successfully")
}

// ListMyListings handles retrieving the authenticated owner's listings
func (h *ListingHandler) ListMyListings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.listingUC.ListOwnerListings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listingResponses(listings), "Listings retrieved successfully")
}

// GetListingShareQR renders a QR code PNG pointing at the listing's public page
func (h *ListingHandler) GetListingShareQR(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	qrCode, err := h.listingUC.GenerateShareQR(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", `inline; filename="listing-qr.png"`)

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
