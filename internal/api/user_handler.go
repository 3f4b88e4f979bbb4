package api

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mzhelnin/adboard-api/internal/api/shared"
	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// UserHandler handles user CRUD requests.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	tx        store.TxRunner
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, hasher auth.PasswordHasher, tx store.TxRunner) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		hasher:    hasher,
		tx:        tx,
		validator: validator.New(),
	}
}

// Get handles GET /user/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, UserResponse{ID: user.ID, Email: user.Email})
}

// Create handles POST /user requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationErrorDetails(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := auth.DigestUser(h.hasher, user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	// The accepted fields minus the password; the digest never leaves the store layer.
	shared.RespondOK(w, r, CreateUserResponse{Email: user.Email})
}

// Patch handles PATCH /user/{id} requests.
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req PatchUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	// Drop absent and explicitly empty fields before validating what remains.
	req.Email = normalizeString(req.Email)
	req.Password = normalizeString(req.Password)
	if req.Email == nil && req.Password == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationErrorDetails(err))
		return
	}

	patch := store.UserPatch{Email: req.Email}
	if req.Password != nil {
		hashed, err := h.hasher.Hash(*req.Password)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		patch.HashedPassword = &hashed
	}

	err = h.tx.RunInTransaction(r.Context(), func(ctx context.Context, tx *sql.Tx) error {
		users := h.userStore.WithTx(tx)
		if _, err := users.GetByID(ctx, id); err != nil {
			return err
		}
		return users.Update(ctx, id, patch)
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, PatchUserResponse{Email: req.Email})
}

// Delete handles DELETE /user/{id} requests.
// The pre-deletion record is returned as confirmation.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var user *domain.User
	err = h.tx.RunInTransaction(r.Context(), func(ctx context.Context, tx *sql.Tx) error {
		users := h.userStore.WithTx(tx)
		u, err := users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = u
		return users.Delete(ctx, id)
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, UserResponse{ID: user.ID, Email: user.Email})
}
