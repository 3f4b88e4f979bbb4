package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhelnin/adboard-api/internal/api"
	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/mocks"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
)

// newRequest builds a request with the {id} path parameter resolved the way
// the chi router would.
func newRequest(t *testing.T, method, target, id, body string) *http.Request {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newUserHandler(t *testing.T) (*api.UserHandler, *mocks.MockUserStore) {
	t.Helper()

	users := mocks.NewMockUserStore()
	return api.NewUserHandler(users, &auth.MD5Hasher{}, &mocks.MockTxRunner{}), users
}

func seedUser(t *testing.T, users *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()

	digest, err := (&auth.MD5Hasher{}).Hash(password)
	require.NoError(t, err)

	user := &domain.User{Email: email, HashedPassword: digest}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Create(w, newRequest(t, http.MethodPost, "/user", "", `{"email":"a@b.com","password":"pw"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "a@b.com", body["email"])
		assert.NotContains(t, body, "password")

		stored := users.Users[1]
		require.NotNil(t, stored)
		assert.Len(t, stored.HashedPassword, 32, "store receives the digest, not the plaintext")
		assert.NotEqual(t, "pw", stored.HashedPassword)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		seedUser(t, users, "a@b.com", "pw")
		w := httptest.NewRecorder()

		handler.Create(w, newRequest(t, http.MethodPost, "/user", "", `{"email":"a@b.com","password":"other"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Error of existance", body["message"])
	})

	t.Run("missing fields return per-field errors", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Create(w, newRequest(t, http.MethodPost, "/user", "", `{"email":"not-an-email"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "error", body["status"])
		messages, ok := body["message"].([]any)
		require.True(t, ok, "validation failures carry a per-field error list")
		assert.Len(t, messages, 2)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Create(w, newRequest(t, http.MethodPost, "/user", "", `{"email":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation error", decodeBody(t, w)["message"])
	})
}

func TestUserHandlerGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		user := seedUser(t, users, "a@b.com", "pw")
		w := httptest.NewRecorder()

		handler.Get(w, newRequest(t, http.MethodGet, "/user/1", "1", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, float64(user.ID), body["id"])
		assert.Equal(t, "a@b.com", body["email"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "hashed_password")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Get(w, newRequest(t, http.MethodGet, "/user/42", "42", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeBody(t, w)["message"])
	})

	t.Run("non-integer id", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Get(w, newRequest(t, http.MethodGet, "/user/abc", "abc", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandlerPatch(t *testing.T) {
	t.Parallel()

	t.Run("email update", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		seedUser(t, users, "a@b.com", "pw")
		w := httptest.NewRecorder()

		handler.Patch(w, newRequest(t, http.MethodPatch, "/user/1", "1", `{"email":"new@b.com"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "new@b.com", body["email"])
		assert.Equal(t, "new@b.com", users.Users[1].Email)
	})

	t.Run("password update never echoes the password", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		before := seedUser(t, users, "a@b.com", "pw").HashedPassword
		w := httptest.NewRecorder()

		handler.Patch(w, newRequest(t, http.MethodPatch, "/user/1", "1", `{"password":"changed"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "email")
		assert.NotEqual(t, before, users.Users[1].HashedPassword)
	})

	t.Run("empty effective field set", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			body string
		}{
			{name: "empty object", body: `{}`},
			{name: "explicit empty strings", body: `{"email":"","password":""}`},
			{name: "explicit nulls", body: `{"email":null,"password":null}`},
			{name: "unknown fields only", body: `{"title":"ignored"}`},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				handler, users := newUserHandler(t)
				seedUser(t, users, "a@b.com", "pw")
				w := httptest.NewRecorder()

				handler.Patch(w, newRequest(t, http.MethodPatch, "/user/1", "1", tc.body))

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, "Validation error", decodeBody(t, w)["message"])
				assert.Equal(t, "a@b.com", users.Users[1].Email, "nothing was written")
			})
		}
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Patch(w, newRequest(t, http.MethodPatch, "/user/9", "9", `{"email":"new@b.com"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeBody(t, w)["message"])
	})

	t.Run("invalid email format", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		seedUser(t, users, "a@b.com", "pw")
		w := httptest.NewRecorder()

		handler.Patch(w, newRequest(t, http.MethodPatch, "/user/1", "1", `{"email":"nope"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("returns the pre-deletion record", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		user := seedUser(t, users, "a@b.com", "pw")
		w := httptest.NewRecorder()

		handler.Delete(w, newRequest(t, http.MethodDelete, "/user/1", "1", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, float64(user.ID), body["id"])
		assert.Equal(t, "a@b.com", body["email"])
		assert.Empty(t, users.Users)
	})

	t.Run("deleting twice never succeeds twice", func(t *testing.T) {
		t.Parallel()

		handler, users := newUserHandler(t)
		seedUser(t, users, "a@b.com", "pw")

		first := httptest.NewRecorder()
		handler.Delete(first, newRequest(t, http.MethodDelete, "/user/1", "1", ""))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.Delete(second, newRequest(t, http.MethodDelete, "/user/1", "1", ""))
		assert.Equal(t, http.StatusNotFound, second.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		handler, _ := newUserHandler(t)
		w := httptest.NewRecorder()

		handler.Delete(w, newRequest(t, http.MethodDelete, "/user/5", "5", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
