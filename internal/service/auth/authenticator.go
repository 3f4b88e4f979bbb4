package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/platform/logger"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID int64
	Email  string
}

// Authenticator resolves per-request header credentials to a stored user.
type Authenticator struct {
	userStore store.UserStore
	hasher    PasswordHasher
	logger    *slog.Logger
}

// NewAuthenticator creates an Authenticator with the given dependencies.
// If logger is nil, the default logger will be used.
func NewAuthenticator(userStore store.UserStore, hasher PasswordHasher, logger *slog.Logger) *Authenticator {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Authenticator{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "authenticator")),
	}
}

// Authenticate resolves an email/password credential pair to an identity.
// Returns ErrMissingCredentials when either part is empty and
// ErrInvalidCredentials when the pair does not match a stored user. An
// unknown email and a wrong password are indistinguishable to the caller.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("authentication failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user during authentication",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := a.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("authentication failed: digest mismatch",
			slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}

// DigestUser replaces a user's transient plaintext password with its digest.
// Called before a user reaches the store on signup or password change.
func DigestUser(hasher PasswordHasher, user *domain.User) error {
	if user.Password == "" {
		return nil
	}
	hashed, err := hasher.Hash(user.Password)
	if err != nil {
		return err
	}
	user.HashedPassword = hashed
	user.Password = ""
	return nil
}
