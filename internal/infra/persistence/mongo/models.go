package mongo

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Collection name constants.
const (
	colStores  = "stores"
	colReviews = "reviews"
	colHearts  = "user_hearts"
)

// geoPoint is a GeoJSON point as required by the 2dsphere index.
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func newGeoPoint(p orb.Point) geoPoint {
	return geoPoint{Type: "Point", Coordinates: []float64{p.Lon(), p.Lat()}}
}

func (g geoPoint) point() orb.Point {
	if len(g.Coordinates) != 2 {
		return orb.Point{}
	}

	return orb.Point{g.Coordinates[0], g.Coordinates[1]}
}

type storeModel struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Slug        string    `bson:"slug"`
	Description string    `bson:"description"`
	Tags        []string  `bson:"tags"`
	Location    geoPoint  `bson:"location"`
	Address     string    `bson:"address"`
	Photo       string    `bson:"photo,omitempty"`
	AuthorID    string    `bson:"author_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty"`
}

// scoredStoreModel is a store decoded together with its text score.
type scoredStoreModel struct {
	Store storeModel `bson:",inline"`
	Score float64    `bson:"score"`
}

// ratedStoreModel is a store decoded together with its review statistics.
type ratedStoreModel struct {
	Store         storeModel `bson:",inline"`
	AverageRating float64    `bson:"average_rating"`
	ReviewCount   int        `bson:"review_count"`
}

type tagCountModel struct {
	Tag   string `bson:"_id"`
	Count int    `bson:"count"`
}

type reviewModel struct {
	ID        string    `bson:"_id"`
	StoreID   string    `bson:"store_id"`
	AuthorID  string    `bson:"author_id"`
	Text      string    `bson:"text"`
	Rating    int       `bson:"rating"`
	CreatedAt time.Time `bson:"created_at"`
}

// heartsModel holds one user's hearted store ids, in the order they were hearted.
type heartsModel struct {
	UserID string   `bson:"_id"`
	Hearts []string `bson:"hearts"`
}

// --- Mapper Functions ---

func storeToModel(s *entity.Store) *storeModel {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	return &storeModel{
		ID:          s.ID.String(),
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Tags:        tags,
		Location:    newGeoPoint(s.Location.Point),
		Address:     s.Location.Address,
		Photo:       s.Photo,
		AuthorID:    s.AuthorID.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func storeFromModel(m *storeModel) *entity.Store {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Store{
		ID:          parseUUID(m.ID),
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Tags:        tags,
		Location: entity.Location{
			Point:   m.Location.point(),
			Address: m.Address,
		},
		Photo:     m.Photo,
		AuthorID:  parseUUID(m.AuthorID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func storesFromModels(models []storeModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for i := range models {
		stores = append(stores, storeFromModel(&models[i]))
	}

	return stores
}

func reviewFromModel(m *reviewModel) *entity.Review {
	return &entity.Review{
		ID:        parseUUID(m.ID),
		StoreID:   parseUUID(m.StoreID),
		AuthorID:  parseUUID(m.AuthorID),
		Text:      m.Text,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func parseUUIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if parsed, err := uuid.Parse(id); err == nil {
			out = append(out, parsed)
		}
	}

	return out
}

// parseUUID returns uuid.Nil for ids that are missing or malformed.
func parseUUID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}

	return parsed
}
