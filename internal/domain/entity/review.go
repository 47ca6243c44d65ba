package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is owned by the review collaborator; the catalog only reads it.
type Review struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
}

// RatedStore is a store with the statistics derived from its reviews.
type RatedStore struct {
	Store         *Store
	AverageRating float64
	ReviewCount   int
}
