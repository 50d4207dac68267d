package response

import (
	"net/http"

	domainerrors "tradie/internal/domain/errors"
	"tradie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`             // Business error code, e.g., "LISTING_NOT_FOUND"
	Details string            `json:"details"`          // Detailed error description
	Fields  map[string]string `json:"fields,omitempty"` // Per-field validation messages
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// ValidationFailed 400 response carrying per-field messages
func ValidationFailed(c echo.Context, message string, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Code:    http.StatusBadRequest,
		Message: message,
		Error: &ErrorInfo{
			Code:   "VALIDATION_FAILED",
			Fields: fields,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps a use-case error to the appropriate HTTP response.
// AppError values carry their own status and code; anything else becomes a
// generic 500 so internal details are never exposed.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return InternalServerError(c, "INTERNAL_ERROR", "An internal error occurred")
}

// HandleSubmissionError maps a submission pipeline failure to an HTTP
// response keyed by the stage that failed. Validation failures carry the
// per-field messages; ownership and persistence failures defer to the
// underlying AppError for their status when one is present.
func HandleSubmissionError(c echo.Context, err error) error {
	var stageErr *usecase.StageError
	if !errors.As(err, &stageErr) {
		return HandleAppError(c, err)
	}

	switch stageErr.Stage {
	case usecase.StageValidation:
		return ValidationFailed(c, stageErr.Message, stageErr.FieldErrors)

	case usecase.StageOwnership:
		var appErr domainerrors.AppError
		if errors.As(stageErr.Err, &appErr) {
			return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), stageErr.Message, "")
		}

		return NotFound(c, "NOT_FOUND", stageErr.Message)

	case usecase.StageUpload:
		return Error(c, http.StatusBadGateway, "UPLOAD_FAILED", stageErr.Message, "")

	case usecase.StagePersistence:
		var appErr domainerrors.AppError
		if errors.As(stageErr.Err, &appErr) {
			return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), stageErr.Message, "")
		}

		return InternalServerError(c, "PERSISTENCE_FAILED", stageErr.Message)

	default:
		return InternalServerError(c, "INTERNAL_ERROR", stageErr.Message)
	}
}
