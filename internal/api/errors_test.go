package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
	"github.com/mzhelnin/adboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing credentials", err: auth.ErrMissingCredentials, want: http.StatusGone},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, want: http.StatusGone},
		{name: "not owner", err: ErrNotAdvertisementOwner, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "advertisement not found", err: store.ErrAdvertisementNotFound, want: http.StatusNotFound},
		{name: "invalid path id", err: domain.ErrInvalidID, want: http.StatusNotFound},
		{name: "duplicate email", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "validation failure", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrUserNotFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "transaction failure", err: store.ErrTransactionFailed, want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "missing credentials", err: auth.ErrMissingCredentials, want: "Empty email or password"},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, want: "Invalid authenticate"},
		{name: "not owner", err: ErrNotAdvertisementOwner, want: "Can not manipulate with this advertisement"},
		{name: "user not found", err: store.ErrUserNotFound, want: "user not found"},
		{name: "advertisement not found", err: store.ErrAdvertisementNotFound, want: "advertisement not found"},
		{name: "duplicate", err: store.ErrEmailExists, want: "Error of existance"},
		{name: "validation", err: domain.ErrValidation, want: "Validation error"},
		{
			name: "internal details never leak",
			err:  errors.New("pq: connection reset at 10.0.0.3:5432"),
			want: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	err := validator.New().Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	details := ValidationErrorDetails(err)
	require.Len(t, details, 2)
	assert.Equal(t, "Email", details[0].Field)
	assert.Equal(t, "invalid email format", details[0].Message)
	assert.Equal(t, "Password", details[1].Field)
	assert.Equal(t, "required field", details[1].Message)
}

func TestValidationErrorDetailsNonValidatorError(t *testing.T) {
	t.Parallel()

	details := ValidationErrorDetails(errors.New("not a validator error"))
	require.Len(t, details, 1)
	assert.Equal(t, "Validation error", details[0].Message)
}
