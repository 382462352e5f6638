package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Client-facing messages.
const (
	msgTaskNotFound      = "Task not found"
	msgInvalidRequest    = "Invalid request format"
	msgValidationFailed  = "Validation error"
	msgUnexpectedFailure = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Uniqueness violations are persistence failures and
// map to 500.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.As(err, &validationErrs),
		errors.As(err, &domainErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpectedFailure
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusNotFound:
		return msgTaskNotFound
	case http.StatusBadRequest:
		return SanitizeValidationError(err)
	default:
		return msgUnexpectedFailure
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first offending field.
func SanitizeValidationError(err error) string {
	if err == nil {
		return msgValidationFailed
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) && domainErr.Field != "" {
		if errors.Is(domainErr, domain.ErrEmptyContent) {
			return fmt.Sprintf("Invalid %s: %s", domainErr.Field, getValidationTagMessage("required"))
		}
		return fmt.Sprintf("Invalid %s", domainErr.Field)
	}

	return msgValidationFailed
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "notblank":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error envelope for err. 5xx responses carry
// defaultMsg when it is set so clients learn which operation failed;
// every other status uses GetSafeErrorMessage. The raw error is only logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// HandleValidationError writes a 400 envelope for a request that failed
// schema or domain validation.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// HandleDecodeError writes a 400 envelope for a body that could not be decoded.
// Oversized bodies are logged at WARN level.
func HandleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err,
			shared.WithElevatedLogLevel())
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
}
