package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// LocationResponse is a GeoJSON point plus the street address
type LocationResponse struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Address  string            `json:"address"`
}

// StoreResponse is the public representation of a store
type StoreResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Location    LocationResponse `json:"location"`
	Photo       string           `json:"photo,omitempty"`
	AuthorID    uuid.UUID        `json:"author_id,omitzero"`
	CreatedAt   time.Time        `json:"created_at,omitzero"`
	UpdatedAt   time.Time        `json:"updated_at,omitzero"`
}

// StorePageResponse is one page of the store listing
type StorePageResponse struct {
	Stores []StoreResponse `json:"stores"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
	Count  int64           `json:"count"`
}

// ReviewResponse is the public representation of a review
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreDetailResponse is a store with its reviews
type StoreDetailResponse struct {
	Store   StoreResponse    `json:"store"`
	Reviews []ReviewResponse `json:"reviews"`
}

// TagCountResponse is one tag facet
type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagListingResponse is the tag page
type TagListingResponse struct {
	Tag    string             `json:"tag,omitempty"`
	Tags   []TagCountResponse `json:"tags"`
	Stores []StoreResponse    `json:"stores"`
}

// ScoredStoreResponse is a search hit
type ScoredStoreResponse struct {
	StoreResponse
	Score float64 `json:"score"`
}

// NearbyStoreResponse is a proximity hit
type NearbyStoreResponse struct {
	StoreResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// RatedStoreResponse is a ranked store
type RatedStoreResponse struct {
	StoreResponse
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// HeartsResponse is the user's heart set
type HeartsResponse struct {
	Hearts []uuid.UUID `json:"hearts"`
}

func newStoreResponse(store *entity.Store) StoreResponse {
	tags := store.Tags
	if tags == nil {
		tags = []string{}
	}

	return StoreResponse{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        tags,
		Location: LocationResponse{
			Geometry: geojson.NewGeometry(store.Location.Point),
			Address:  store.Location.Address,
		},
		Photo:     store.Photo,
		AuthorID:  store.AuthorID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

func newStoreResponses(stores []*entity.Store) []StoreResponse {
	result := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		result = append(result, newStoreResponse(store))
	}

	return result
}

func newStorePageResponse(page *usecase.StorePage) StorePageResponse {
	return StorePageResponse{
		Stores: newStoreResponses(page.Stores),
		Page:   page.Page,
		Pages:  page.Pages,
		Count:  page.Count,
	}
}

func newStoreDetailResponse(detail *usecase.StoreDetail) StoreDetailResponse {
	reviews := make([]ReviewResponse, 0, len(detail.Reviews))
	for _, review := range detail.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:        review.ID,
			AuthorID:  review.AuthorID,
			Text:      review.Text,
			Rating:    review.Rating,
			CreatedAt: review.CreatedAt,
		})
	}

	return StoreDetailResponse{
		Store:   newStoreResponse(detail.Store),
		Reviews: reviews,
	}
}

func newTagListingResponse(listing *usecase.TagListing) TagListingResponse {
	tags := make([]TagCountResponse, 0, len(listing.Tags))
	for _, tag := range listing.Tags {
		tags = append(tags, TagCountResponse{Tag: tag.Tag, Count: tag.Count})
	}

	return TagListingResponse{
		Tag:    listing.Tag,
		Tags:   tags,
		Stores: newStoreResponses(listing.Stores),
	}
}

func newScoredStoreResponses(results []entity.ScoredStore) []ScoredStoreResponse {
	out := make([]ScoredStoreResponse, 0, len(results))
	for _, result := range results {
		out = append(out, ScoredStoreResponse{
			StoreResponse: newStoreResponse(result.Store),
			Score:         result.Score,
		})
	}

	return out
}

func newNearbyStoreResponses(results []entity.NearbyStore) []NearbyStoreResponse {
	out := make([]NearbyStoreResponse, 0, len(results))
	for _, result := range results {
		out = append(out, NearbyStoreResponse{
			StoreResponse:  newStoreResponse(result.Store),
			DistanceMeters: result.DistanceMeters,
		})
	}

	return out
}

func newRatedStoreResponses(results []*entity.RatedStore) []RatedStoreResponse {
	out := make([]RatedStoreResponse, 0, len(results))
	for _, result := range results {
		out = append(out, RatedStoreResponse{
			StoreResponse: newStoreResponse(result.Store),
			AverageRating: result.AverageRating,
			ReviewCount:   result.ReviewCount,
		})
	}

	return out
}

func newHeartsResponse(hearts []uuid.UUID) HeartsResponse {
	if hearts == nil {
		hearts = []uuid.UUID{}
	}

	return HeartsResponse{Hearts: hearts}
}
