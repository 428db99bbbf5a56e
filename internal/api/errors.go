package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in APIError payloads.
const (
	// Generic
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// Auth
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodeRegistrationClosed = "ERR_REGISTRATION_CLOSED"
	ErrCodeUserDisabled       = "ERR_USER_DISABLED"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"

	// Resources
	ErrCodeSourceNotFound  = "ERR_SOURCE_NOT_FOUND"
	ErrCodeVoiceNotFound   = "ERR_VOICE_NOT_FOUND"
	ErrCodeContentNotFound = "ERR_CONTENT_NOT_FOUND"

	// Business rules
	ErrCodeMissingField        = "ERR_MISSING_FIELD"
	ErrCodeInvalidPlatform     = "ERR_INVALID_PLATFORM"
	ErrCodeInvalidTone         = "ERR_INVALID_TONE"
	ErrCodeInvalidStatus       = "ERR_INVALID_STATUS"
	ErrCodeInsufficientCredits = "ERR_INSUFFICIENT_CREDITS"
	ErrCodeGenerationFailed    = "ERR_GENERATION_FAILED"
	ErrCodeModeNotAvailable    = "ERR_MODE_NOT_AVAILABLE"
	ErrCodeCannotDeleteSelf    = "ERR_CANNOT_DELETE_SELF"
)

// APIError is the uniform error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse writes a uniform error response.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails writes an error response carrying extra context.
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Shortcut helpers for common responses.

func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// PaymentRequired signals an operation the balance cannot cover.
func PaymentRequired(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusPaymentRequired, ErrCodeInsufficientCredits, message)
}

func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}
