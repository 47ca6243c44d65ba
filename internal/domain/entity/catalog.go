package entity

// TagCount is one facet of the tag listing.
type TagCount struct {
	Tag   string
	Count int
}

// ScoredStore is a full-text search hit.
type ScoredStore struct {
	Store *Store
	Score float64
}

// NearbyStore is a proximity search hit. DistanceMeters is the great-circle
// distance from the query point.
type NearbyStore struct {
	Store          *Store
	DistanceMeters float64
}
