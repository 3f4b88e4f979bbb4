// Package auth provides password digesting and header-credential resolution.
package auth

import "errors"

// Authentication errors surfaced to the API boundary. Both map to the same
// HTTP status so callers cannot probe which part of a credential pair failed.
var (
	// ErrMissingCredentials is returned when the email or password header is absent.
	ErrMissingCredentials = errors.New("empty email or password")

	// ErrInvalidCredentials is returned when the credential pair does not
	// resolve to a stored user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownScheme is returned when an unsupported password scheme is configured.
	ErrUnknownScheme = errors.New("unknown password scheme")
)
