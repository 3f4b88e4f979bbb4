package store

import (
	"context"
	"database/sql"

	"github.com/mzhelnin/adboard-api/internal/domain"
)

// UserPatch describes a partial update of a user. Nil fields are left
// untouched by Update.
type UserPatch struct {
	Email          *string
	HashedPassword *string
}

// IsEmpty reports whether the patch carries no fields.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.HashedPassword == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns the generated ID to
	// the given user. The HashedPassword field must already be populated.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user includes the stored password digest for credential
	// comparison; it must never be serialized to a response.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies the non-nil fields of the patch to an existing user.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that is already taken.
	Update(ctx context.Context, id int64, patch UserPatch) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
