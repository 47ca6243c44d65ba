// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when no store matches an id or slug.
	ErrStoreNotFound = errors.New("store not found")
	// ErrSlugTaken is returned when the unique slug index rejects a write.
	ErrSlugTaken = errors.New("slug already taken")
)

// StoreRepository defines the persistence operations over the store collection
// and its two query indexes (full-text on name/description, spatial on location).
type StoreRepository interface {
	// Create persists a new store. The slug must already be set.
	// Returns ErrSlugTaken if the slug is not unique.
	Create(ctx context.Context, store *entity.Store) error

	// Update persists the mutable fields of an existing store.
	// Returns ErrStoreNotFound or ErrSlugTaken.
	Update(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindBySlug retrieves a store by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// FindByIDs retrieves every store whose id is in ids. Unknown ids are ignored.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)

	// FindPage returns stores sorted by creation time, newest first.
	FindPage(ctx context.Context, skip, limit int) ([]*entity.Store, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)

	// FindByTag returns stores carrying tag. An empty tag matches any store with at least one tag.
	FindByTag(ctx context.Context, tag string) ([]*entity.Store, error)

	// ListTags groups stores by each tag value and returns the groups by count, descending.
	ListTags(ctx context.Context) ([]entity.TagCount, error)

	// TextSearch ranks stores by full-text relevance over name and description.
	TextSearch(ctx context.Context, query string, limit int) ([]entity.ScoredStore, error)

	// NearPoint returns stores within maxDistanceMeters of point, nearest first.
	// Only slug, name, description and location are populated.
	NearPoint(ctx context.Context, point orb.Point, maxDistanceMeters float64, limit int) ([]*entity.Store, error)

	// CountSlugs counts stores other than excludeID whose slug matches pattern case-insensitively.
	CountSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) (int64, error)

	// ListSlugs returns the slugs of stores other than excludeID matching pattern case-insensitively.
	ListSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) ([]string, error)
}
