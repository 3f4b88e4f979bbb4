package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/mocks"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
)

func newTestAuthenticator(t *testing.T) (*auth.Authenticator, *mocks.MockUserStore) {
	t.Helper()

	users := mocks.NewMockUserStore()
	hasher := &auth.MD5Hasher{}

	digest, err := hasher.Hash("pw")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		Email:          "a@b.com",
		HashedPassword: digest,
	}))

	return auth.NewAuthenticator(users, hasher, nil), users
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "a@b.com", password: "pw"},
		{name: "missing email", email: "", password: "pw", wantErr: auth.ErrMissingCredentials},
		{name: "missing password", email: "a@b.com", password: "", wantErr: auth.ErrMissingCredentials},
		{name: "unknown email", email: "x@y.com", password: "pw", wantErr: auth.ErrInvalidCredentials},
		{name: "wrong password", email: "a@b.com", password: "nope", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authenticator, _ := newTestAuthenticator(t)

			identity, err := authenticator.Authenticate(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, identity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a@b.com", identity.Email)
			assert.Equal(t, int64(1), identity.UserID)
		})
	}
}

func TestAuthenticateStoreError(t *testing.T) {
	t.Parallel()

	authenticator, users := newTestAuthenticator(t)

	storeErr := errors.New("connection refused")
	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, storeErr
	}

	_, err := authenticator.Authenticate(context.Background(), "a@b.com", "pw")
	assert.ErrorIs(t, err, storeErr, "store failures must not collapse into credential errors")
}

func TestDigestUser(t *testing.T) {
	t.Parallel()

	hasher := &auth.MD5Hasher{}
	user := &domain.User{Email: "a@b.com", Password: "password"}

	require.NoError(t, auth.DigestUser(hasher, user))

	assert.Empty(t, user.Password, "plaintext must be cleared")
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", user.HashedPassword)

	// A user without a plaintext password is left untouched.
	loaded := &domain.User{Email: "a@b.com", HashedPassword: "existing"}
	require.NoError(t, auth.DigestUser(hasher, loaded))
	assert.Equal(t, "existing", loaded.HashedPassword)
}
