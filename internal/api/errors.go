package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mzhelnin/adboard-api/internal/api/shared"
	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/platform/logger"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// ErrNotAdvertisementOwner is returned when a caller tries to mutate an
// advertisement they do not own, or one that does not exist. The two cases
// share one error so resource existence is never leaked.
var ErrNotAdvertisementOwner = errors.New("advertisement is not owned by the caller")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors; 410 is the contract inherited from the
	// original service, not a typo for 401.
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusGone

	// Ownership and not found errors
	case errors.Is(err, ErrNotAdvertisementOwner),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing error message based on
// the error type. The message strings match the original wire contract.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return "Empty email or password"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid authenticate"

	case errors.Is(err, ErrNotAdvertisementOwner):
		return "Can not manipulate with this advertisement"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrAdvertisementNotFound):
		return "advertisement not found"

	case errors.Is(err, store.ErrNotFound), errors.Is(err, domain.ErrInvalidID):
		return "not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Error of existance"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError is the single error boundary for handlers: it classifies the
// error, logs server-side failures and writes the uniform error envelope.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	if status >= http.StatusInternalServerError {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())
		log.Error("request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method))
	}

	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}

// FieldError is one entry of the per-field error list returned for payloads
// that fail schema validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorDetails converts a validator error into the per-field error
// list carried by the 400 envelope. Non-validator errors collapse to a single
// generic entry.
func ValidationErrorDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "Validation error"}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: validationTagMessage(fe.Tag()),
		})
	}
	return details
}

// validationTagMessage maps validation tags to user-facing error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
