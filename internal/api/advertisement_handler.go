package api

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mzhelnin/adboard-api/internal/api/middleware"
	"github.com/mzhelnin/adboard-api/internal/api/shared"
	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// AdvertisementHandler handles advertisement CRUD requests. Mutations run
// behind the credential middleware; reads are public.
type AdvertisementHandler struct {
	advStore  store.AdvertisementStore
	tx        store.TxRunner
	validator *validator.Validate
}

// NewAdvertisementHandler creates a new AdvertisementHandler with the given
// dependencies.
func NewAdvertisementHandler(advStore store.AdvertisementStore, tx store.TxRunner) *AdvertisementHandler {
	return &AdvertisementHandler{
		advStore:  advStore,
		tx:        tx,
		validator: validator.New(),
	}
}

// identity fetches the authenticated caller placed in the context by the
// credential middleware. Its absence means the route was wired without the
// middleware; answer as an unauthenticated request rather than leaking a
// server error.
func (h *AdvertisementHandler) identity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusGone, "Empty email or password")
		return nil, false
	}
	return identity, true
}

// Get handles GET /advertisement/{id} requests.
func (h *AdvertisementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	adv, err := h.advStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, AdvertisementResponse{
		ID:          adv.ID,
		Title:       adv.Title,
		Description: adv.Description,
		OwnerID:     adv.OwnerID,
	})
}

// Create handles POST /advertisement requests.
// The owner is always the authenticated caller, never a payload field.
func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req CreateAdvertisementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationErrorDetails(err))
		return
	}

	adv, err := domain.NewAdvertisement(identity.UserID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.advStore.Create(r.Context(), adv); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, AdvertisementResponse{
		ID:          adv.ID,
		Title:       adv.Title,
		Description: adv.Description,
		OwnerID:     adv.OwnerID,
	})
}

// Patch handles PATCH /advertisement/{id} requests.
func (h *AdvertisementHandler) Patch(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req PatchAdvertisementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	// Drop absent and explicitly empty fields.
	req.Title = normalizeString(req.Title)
	req.Description = normalizeString(req.Description)
	if req.Title == nil && req.Description == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	patch := store.AdvertisementPatch{Title: req.Title, Description: req.Description}

	err = h.tx.RunInTransaction(r.Context(), func(ctx context.Context, tx *sql.Tx) error {
		advs := h.advStore.WithTx(tx)
		owned, err := advs.IsOwner(ctx, identity.UserID, id)
		if err != nil {
			return err
		}
		if !owned {
			return ErrNotAdvertisementOwner
		}
		return advs.Update(ctx, id, patch)
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, PatchAdvertisementResponse{
		Title:       req.Title,
		Description: req.Description,
	})
}

// Delete handles DELETE /advertisement/{id} requests.
func (h *AdvertisementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	err = h.tx.RunInTransaction(r.Context(), func(ctx context.Context, tx *sql.Tx) error {
		advs := h.advStore.WithTx(tx)
		owned, err := advs.IsOwner(ctx, identity.UserID, id)
		if err != nil {
			return err
		}
		if !owned {
			return ErrNotAdvertisementOwner
		}
		return advs.Delete(ctx, id)
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondOK(w, r, DeleteAdvertisementResponse{Advertisement: id})
}
