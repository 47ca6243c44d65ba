package repository

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository persists each user's set of hearted stores.
type FavoriteRepository interface {
	// Toggle removes storeID from the user's heart set if present and adds it
	// otherwise, as one atomic read-modify-write. It returns the resulting set.
	Toggle(ctx context.Context, userID, storeID uuid.UUID) ([]uuid.UUID, error)

	// ListStoreIDs returns the user's heart set.
	ListStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
