package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository reads the externally owned reviews and derives statistics from them.
type ReviewRepository interface {
	// ListByStore returns the reviews of one store, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error)

	// TopStores joins every store to its reviews, keeps stores with at least
	// minReviews reviews and returns them by average rating, descending.
	// It is recomputed on every call.
	TopStores(ctx context.Context, minReviews, limit int) ([]*entity.RatedStore, error)
}
