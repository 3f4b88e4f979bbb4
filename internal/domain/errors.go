// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or non-positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyPassword is returned when neither a plaintext password nor a
	// stored digest is present on a user.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyTitle is returned when an advertisement title is missing.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyDescription is returned when an advertisement description is missing.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEmptyOwner is returned when an advertisement has no owner reference.
	ErrEmptyOwner = errors.New("owner ID cannot be empty")
)
