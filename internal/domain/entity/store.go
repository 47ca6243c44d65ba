// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store is a listing in the directory. Its slug is derived from the name and
// is unique across all stores.
type Store struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the store.
	Name        string    // Display name, trimmed and never empty.
	Slug        string    // URL-safe identifier derived from Name.
	Description string    // Optional free text, trimmed.
	Tags        []string  // Ordered tags, duplicates allowed.
	Location    Location  // Where the store is.
	Photo       string    // Opaque filename reference, optional.
	AuthorID    uuid.UUID // The user who created the store. Immutable.
	CreatedAt   time.Time // Timestamp of when this store was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Location is a geographic point plus its human-readable address.
type Location struct {
	Point   orb.Point // [longitude, latitude]
	Address string    // The full street address.
}

// Lng returns the longitude of the location.
func (l Location) Lng() float64 {
	return l.Point.Lon()
}

// Lat returns the latitude of the location.
func (l Location) Lat() float64 {
	return l.Point.Lat()
}

// IsOwnedBy reports whether userID authored the store. A nil store or a zero
// user id is never an owner.
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	if s == nil || userID == uuid.Nil || s.AuthorID == uuid.Nil {
		return false
	}

	return s.AuthorID == userID
}
