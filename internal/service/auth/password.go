package auth

import (
	"crypto/md5" //nolint:gosec // reference-compatible digest, see scheme docs
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported password scheme names, selected via auth.password_scheme config.
const (
	// SchemeMD5 is the reference-compatible scheme: an unsalted hex digest
	// used purely for equality checks. Kept as the default so existing
	// stored hashes keep working.
	SchemeMD5 = "md5"

	// SchemeBcrypt is the production-grade upgrade path. Switching schemes
	// invalidates previously stored digests.
	SchemeBcrypt = "bcrypt"
)

// PasswordHasher digests plaintext passwords and compares them against
// stored digests. Implementations must be deterministic in their Compare
// behavior but may produce salted, non-deterministic digests.
type PasswordHasher interface {
	// Hash returns the storable digest of a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a stored digest against a plaintext candidate.
	// Returns nil on match, ErrInvalidCredentials on mismatch.
	Compare(hashedPassword, password string) error
}

// NewPasswordHasher returns the hasher for the configured scheme name.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemeMD5:
		return &MD5Hasher{}, nil
	case SchemeBcrypt:
		return &BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// MD5Hasher implements PasswordHasher with an unsalted hex MD5 digest.
// The digest is fixed-length and deterministic, which is what allows the
// store to look users up by (email, digest) pairs.
type MD5Hasher struct{}

// Hash implements PasswordHasher.Hash.
func (h *MD5Hasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password)) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}

// Compare implements PasswordHasher.Compare using a constant-time equality
// check of the hex digests.
func (h *MD5Hasher) Compare(hashedPassword, password string) error {
	digest, _ := h.Hash(password)
	if subtle.ConstantTimeCompare([]byte(hashedPassword), []byte(digest)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	Cost int
}

// Hash implements PasswordHasher.Hash.
func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare implements PasswordHasher.Compare.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
