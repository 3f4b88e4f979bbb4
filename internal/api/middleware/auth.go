package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mzhelnin/adboard-api/internal/api/shared"
	"github.com/mzhelnin/adboard-api/internal/platform/logger"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
)

// AuthMiddleware authenticates requests from the email and password headers
// and adds the resolved identity to the request context.
//
// Credentials travel in plain headers and failures answer 410, both preserved
// from the wire contract this service replaces.
type AuthMiddleware struct {
	authenticator *auth.Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator *auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// Authenticate resolves the header credential pair and stores the identity in
// the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("email")
		password := r.Header.Get("password")

		identity, err := m.authenticator.Authenticate(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingCredentials):
				shared.RespondWithError(w, r, http.StatusGone, "Empty email or password")
			case errors.Is(err, auth.ErrInvalidCredentials):
				shared.RespondWithError(w, r, http.StatusGone, "Invalid authenticate")
			default:
				log := logger.FromContextOrDefault(r.Context(), slog.Default())
				log.Error("authentication failed with store error",
					slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (*auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(*auth.Identity)
	return identity, ok && identity != nil
}
