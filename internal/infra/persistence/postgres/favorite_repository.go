package postgres

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Toggle flips the (user, store) membership in a single statement. Concurrent
// toggles by the same user are serialized by a transaction-scoped advisory lock.
func (repo *favoriteRepository) Toggle(ctx context.Context, userID, storeID uuid.UUID) ([]uuid.UUID, error) {
	var hearts []uuid.UUID

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID.String()).Error; err != nil {
			return errors.Wrap(err, "failed to lock user hearts")
		}

		// Delete the pair if present, insert it otherwise
		toggle := `
			WITH removed AS (
				DELETE FROM store_hearts
				WHERE user_id = ? AND store_id = ?
				RETURNING store_id
			)
			INSERT INTO store_hearts (user_id, store_id, created_at)
			SELECT ?, ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT DO NOTHING
		`
		if err := tx.Exec(toggle, userID, storeID, userID, storeID, time.Now()).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return errors.Wrap(repository.ErrStoreNotFound, "cannot heart unknown store")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to toggle heart")
		}

		var err error
		hearts, err = listStoreIDs(ctx, tx, userID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return hearts, nil
}

// ListStoreIDs returns the user's hearted store ids in the order they were hearted.
func (repo *favoriteRepository) ListStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return listStoreIDs(ctx, repo.db, userID)
}

func listStoreIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	hearts := make([]uuid.UUID, 0)

	if err := db.WithContext(ctx).
		Model(&model.StoreHeartModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, store_id ASC").
		Pluck("store_id", &hearts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hearts")
	}

	return hearts, nil
}
