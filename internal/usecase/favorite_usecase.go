package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the hearts (favorites) operations
type FavoriteUsecase interface {
	// ToggleHeart flips membership of storeID in the user's heart set and returns the new set.
	// It must not be retried blindly: a retry toggles again.
	ToggleHeart(ctx context.Context, userID, storeID uuid.UUID) ([]uuid.UUID, error)

	// Hearts returns the user's heart set
	Hearts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListHearted resolves the user's heart set to stores
	ListHearted(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error)
}
