package store

import (
	"context"
	"database/sql"

	"github.com/mzhelnin/adboard-api/internal/domain"
)

// AdvertisementPatch describes a partial update of an advertisement.
// Nil fields are left untouched by Update. The owner is never patchable.
type AdvertisementPatch struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the patch carries no fields.
func (p AdvertisementPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

// AdvertisementStore defines the interface for advertisement data persistence.
type AdvertisementStore interface {
	// Create saves a new advertisement to the store and assigns the generated
	// ID to the given advertisement.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, adv *domain.Advertisement) error

	// GetByID retrieves an advertisement by its unique ID.
	// Returns ErrAdvertisementNotFound if the advertisement does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Advertisement, error)

	// IsOwner reports whether the advertisement exists and is owned by the
	// given user. A missing advertisement and a foreign owner are
	// indistinguishable to the caller.
	IsOwner(ctx context.Context, userID, advID int64) (bool, error)

	// Update applies the non-nil fields of the patch to an existing
	// advertisement.
	// Returns ErrAdvertisementNotFound if the advertisement does not exist.
	Update(ctx context.Context, id int64, patch AdvertisementPatch) error

	// Delete removes an advertisement from the store by its ID.
	// Returns ErrAdvertisementNotFound if the advertisement does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new AdvertisementStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) AdvertisementStore
}
