package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationInput is the geographic part of a store write. Coordinates are
// pointers so an omitted one is told apart from 0.
type LocationInput struct {
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Address   string   `json:"address" validate:"required"`
}

// Point returns the coordinates of a validated location
func (in *LocationInput) Point() orb.Point {
	return orb.Point{*in.Longitude, *in.Latitude}
}

// CreateStoreInput represents the input for creating a store
type CreateStoreInput struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description string         `json:"description" validate:"max=5000"`
	Tags        []string       `json:"tags" validate:"dive,required,max=50"`
	Location    *LocationInput `json:"location" validate:"required"`
	Photo       string         `json:"photo" validate:"max=255"`
}

// UpdateStoreInput represents the input for updating a store. Nil fields are left unchanged.
type UpdateStoreInput struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
	Location    *LocationInput `json:"location,omitempty"`
	Photo       *string        `json:"photo,omitempty"`
}

// StorePage is one page of the home listing
type StorePage struct {
	Stores []*entity.Store `json:"stores"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
	Count  int64           `json:"count"`
}

// StoreDetail is a store together with its reviews
type StoreDetail struct {
	Store   *entity.Store    `json:"store"`
	Reviews []*entity.Review `json:"reviews"`
}

// TagListing is the tag page: every tag facet plus the stores matching the selected tag
type TagListing struct {
	Tag    string            `json:"tag,omitempty"`
	Tags   []entity.TagCount `json:"tags"`
	Stores []*entity.Store   `json:"stores"`
}

// CatalogUsecase defines the read and write operations over the store catalog
type CatalogUsecase interface {
	// Listings
	ListStores(ctx context.Context, page int) (*StorePage, error)
	ListByTag(ctx context.Context, tag string) (*TagListing, error)
	SearchStores(ctx context.Context, query string) ([]entity.ScoredStore, error)
	NearbyStores(ctx context.Context, lng, lat float64) ([]entity.NearbyStore, error)
	NearbyStoresWithin(ctx context.Context, lng, lat, radiusMeters float64) ([]entity.NearbyStore, error)
	TopStores(ctx context.Context) ([]*entity.RatedStore, error)

	// Single store reads
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*StoreDetail, error)
	GetStoreForEdit(ctx context.Context, storeID, actingUserID uuid.UUID) (*entity.Store, error)

	// Mutations
	CreateStore(ctx context.Context, input *CreateStoreInput, authorID uuid.UUID) (*entity.Store, error)
	UpdateStore(ctx context.Context, storeID uuid.UUID, input *UpdateStoreInput, actingUserID uuid.UUID) (*entity.Store, error)

	// ConfirmOwner fails unless actingUserID authored store
	ConfirmOwner(store *entity.Store, actingUserID uuid.UUID) error
}
