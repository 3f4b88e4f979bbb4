package mocks

import (
	"context"
	"database/sql"

	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// MockAdvertisementStore implements store.AdvertisementStore for testing.
// Function fields override the default in-memory behavior per test.
type MockAdvertisementStore struct {
	CreateFn  func(ctx context.Context, adv *domain.Advertisement) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Advertisement, error)
	IsOwnerFn func(ctx context.Context, userID, advID int64) (bool, error)
	UpdateFn  func(ctx context.Context, id int64, patch store.AdvertisementPatch) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for the default in-memory implementation
	Advertisements map[int64]*domain.Advertisement
	NextID         int64
}

// NewMockAdvertisementStore creates a new mock store with initialized defaults.
func NewMockAdvertisementStore() *MockAdvertisementStore {
	return &MockAdvertisementStore{
		Advertisements: make(map[int64]*domain.Advertisement),
		NextID:         1,
	}
}

// Ensure MockAdvertisementStore implements store.AdvertisementStore interface
var _ store.AdvertisementStore = (*MockAdvertisementStore)(nil)

// Create implements the AdvertisementStore interface.
func (m *MockAdvertisementStore) Create(ctx context.Context, adv *domain.Advertisement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, adv)
	}

	adv.ID = m.NextID
	m.NextID++
	copied := *adv
	m.Advertisements[adv.ID] = &copied
	return nil
}

// GetByID implements the AdvertisementStore interface.
func (m *MockAdvertisementStore) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	adv, ok := m.Advertisements[id]
	if !ok {
		return nil, store.ErrAdvertisementNotFound
	}
	copied := *adv
	return &copied, nil
}

// IsOwner implements the AdvertisementStore interface.
func (m *MockAdvertisementStore) IsOwner(ctx context.Context, userID, advID int64) (bool, error) {
	if m.IsOwnerFn != nil {
		return m.IsOwnerFn(ctx, userID, advID)
	}

	adv, ok := m.Advertisements[advID]
	if !ok {
		return false, nil
	}
	return adv.OwnerID == userID, nil
}

// Update implements the AdvertisementStore interface.
func (m *MockAdvertisementStore) Update(ctx context.Context, id int64, patch store.AdvertisementPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	adv, ok := m.Advertisements[id]
	if !ok {
		return store.ErrAdvertisementNotFound
	}
	if patch.Title != nil {
		adv.Title = *patch.Title
	}
	if patch.Description != nil {
		adv.Description = *patch.Description
	}
	return nil
}

// Delete implements the AdvertisementStore interface.
func (m *MockAdvertisementStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Advertisements[id]; !ok {
		return store.ErrAdvertisementNotFound
	}
	delete(m.Advertisements, id)
	return nil
}

// WithTx implements the AdvertisementStore interface. The mock has no
// transactional state, so it returns itself.
func (m *MockAdvertisementStore) WithTx(tx *sql.Tx) store.AdvertisementStore {
	return m
}
