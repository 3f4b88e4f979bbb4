package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mzhelnin/adboard-api/internal/domain"
	"github.com/mzhelnin/adboard-api/internal/platform/logger"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// PostgresAdvertisementStore implements the store.AdvertisementStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdvertisementStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdvertisementStore creates a new PostgreSQL implementation of the
// AdvertisementStore interface. It accepts a database connection or
// transaction that is initialized and managed by the caller.
// If logger is nil, the default logger will be used.
func NewPostgresAdvertisementStore(db store.DBTX, logger *slog.Logger) *PostgresAdvertisementStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdvertisementStore{
		db:     db,
		logger: logger.With(slog.String("component", "advertisement_store")),
	}
}

// Ensure PostgresAdvertisementStore implements store.AdvertisementStore interface
var _ store.AdvertisementStore = (*PostgresAdvertisementStore)(nil)

// WithTx implements store.AdvertisementStore.WithTx
func (s *PostgresAdvertisementStore) WithTx(tx *sql.Tx) store.AdvertisementStore {
	return &PostgresAdvertisementStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AdvertisementStore.Create
// It saves a new advertisement and assigns the generated ID to it.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresAdvertisementStore) Create(ctx context.Context, adv *domain.Advertisement) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := adv.Validate(); err != nil {
		log.Warn("advertisement validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO advertisements (title, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		adv.Title,
		adv.Description,
		adv.OwnerID,
		adv.CreatedAt,
		adv.UpdatedAt,
	).Scan(&adv.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during advertisement creation",
				slog.Int64("owner_id", adv.OwnerID))
			return fmt.Errorf("%w: owner with ID %d not found",
				store.ErrInvalidEntity, adv.OwnerID)
		}
		log.Error("failed to create advertisement",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", adv.OwnerID))
		return MapError(err)
	}

	log.Info("advertisement created",
		slog.Int64("advertisement_id", adv.ID),
		slog.Int64("owner_id", adv.OwnerID))
	return nil
}

// GetByID implements store.AdvertisementStore.GetByID
// Returns store.ErrAdvertisementNotFound if the advertisement does not exist.
func (s *PostgresAdvertisementStore) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, owner_id, created_at, updated_at
		FROM advertisements
		WHERE id = $1
	`

	var adv domain.Advertisement
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&adv.ID,
		&adv.Title,
		&adv.Description,
		&adv.OwnerID,
		&adv.CreatedAt,
		&adv.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("advertisement not found", slog.Int64("advertisement_id", id))
			return nil, store.ErrAdvertisementNotFound
		}
		log.Error("failed to get advertisement by ID",
			slog.String("error", err.Error()),
			slog.Int64("advertisement_id", id))
		return nil, MapError(err)
	}

	return &adv, nil
}

// IsOwner implements store.AdvertisementStore.IsOwner
// It reports whether the advertisement exists and is owned by the given user.
func (s *PostgresAdvertisementStore) IsOwner(ctx context.Context, userID, advID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM advertisements
			WHERE id = $1 AND owner_id = $2
		)
	`

	var owned bool
	if err := s.db.QueryRowContext(ctx, query, advID, userID).Scan(&owned); err != nil {
		log.Error("failed to check advertisement ownership",
			slog.String("error", err.Error()),
			slog.Int64("advertisement_id", advID),
			slog.Int64("user_id", userID))
		return false, MapError(err)
	}

	return owned, nil
}

// Update implements store.AdvertisementStore.Update
// It applies the non-nil fields of the patch to an existing advertisement.
// Returns store.ErrAdvertisementNotFound if the advertisement does not exist.
func (s *PostgresAdvertisementStore) Update(ctx context.Context, id int64, patch store.AdvertisementPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return fmt.Errorf("%w: empty patch", domain.ErrValidation)
	}

	// Build the SET clause from the supplied fields only.
	set := "updated_at = $1"
	args := []any{time.Now().UTC()}
	if patch.Title != nil {
		args = append(args, *patch.Title)
		set += fmt.Sprintf(", title = $%d", len(args))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE advertisements SET %s WHERE id = $%d", set, len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update advertisement",
			slog.String("error", err.Error()),
			slog.Int64("advertisement_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAdvertisementNotFound); err != nil {
		return err
	}

	log.Info("advertisement updated", slog.Int64("advertisement_id", id))
	return nil
}

// Delete implements store.AdvertisementStore.Delete
// Returns store.ErrAdvertisementNotFound if the advertisement does not exist.
func (s *PostgresAdvertisementStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM advertisements WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete advertisement",
			slog.String("error", err.Error()),
			slog.Int64("advertisement_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAdvertisementNotFound); err != nil {
		return err
	}

	log.Info("advertisement deleted", slog.Int64("advertisement_id", id))
	return nil
}
