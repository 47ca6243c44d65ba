package mongo

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func stage(t *testing.T, doc bson.D) (string, any) {
	t.Helper()
	require.Len(t, doc, 1)

	return doc[0].Key, doc[0].Value
}

func TestTopStoresPipeline_FiltersByMinimumReviews(t *testing.T) {
	pipeline := topStoresPipeline(2, 10)
	require.Len(t, pipeline, 6)

	name, _ := stage(t, pipeline[0])
	assert.Equal(t, "$lookup", name)

	name, value := stage(t, pipeline[1])
	assert.Equal(t, "$match", name)
	assert.Equal(t, bson.D{{Key: "reviews.1", Value: bson.D{{Key: "$exists", Value: true}}}}, value)

	name, value = stage(t, pipeline[5])
	assert.Equal(t, "$limit", name)
	assert.Equal(t, 10, value)
}

func TestTopStoresPipeline_NoMinimum(t *testing.T) {
	pipeline := topStoresPipeline(0, 3)
	require.Len(t, pipeline, 5)

	for _, doc := range pipeline {
		name, _ := stage(t, doc)
		assert.NotEqual(t, "$match", name)
	}
}

func TestTagCountPipeline_SortsByCountThenTag(t *testing.T) {
	pipeline := tagCountPipeline()
	require.Len(t, pipeline, 3)

	name, value := stage(t, pipeline[2])
	assert.Equal(t, "$sort", name)
	assert.Equal(t, bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}, value)
}

func TestTagFilter(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "tags", Value: "Wifi"}}, tagFilter("Wifi"))
	assert.Equal(t, bson.D{{Key: "tags.0", Value: bson.D{{Key: "$exists", Value: true}}}}, tagFilter(""))
}

func TestSlugFilter_IsCaseInsensitiveAndExcludesSelf(t *testing.T) {
	excludeID := uuid.New()

	filter := slugFilter("^ramen-shop(-[0-9]*)?$", excludeID)

	require.Len(t, filter, 2)
	assert.Equal(t, bson.Regex{Pattern: "^ramen-shop(-[0-9]*)?$", Options: "i"}, filter[0].Value)
	assert.Equal(t, bson.D{{Key: "$ne", Value: excludeID.String()}}, filter[1].Value)
}

func TestNearFilter_UsesGeoJSONLongitudeFirst(t *testing.T) {
	filter := nearFilter(orb.Point{-79.38, 43.65}, 10000)

	near := filter[0].Value.(bson.D)[0].Value.(bson.D)
	assert.Equal(t, geoPoint{Type: "Point", Coordinates: []float64{-79.38, 43.65}}, near[0].Value)
	assert.Equal(t, float64(10000), near[1].Value)
}

func TestStoreModelMapping(t *testing.T) {
	store := &entity.Store{
		ID:        uuid.New(),
		Name:      "Ramen Shop",
		Slug:      "ramen-shop",
		Location:  entity.Location{Point: orb.Point{139.7, 35.6}, Address: "Tokyo"},
		AuthorID:  uuid.New(),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	m := storeToModel(store)
	assert.Equal(t, []string{}, m.Tags)
	assert.Equal(t, []float64{139.7, 35.6}, m.Location.Coordinates)

	back := storeFromModel(m)
	assert.Equal(t, store.ID, back.ID)
	assert.Equal(t, store.AuthorID, back.AuthorID)
	assert.Equal(t, store.Location, back.Location)
}

func TestNearProjection_OnlyMarkerFields(t *testing.T) {
	keys := make([]string, 0, len(nearProjection))
	for _, field := range nearProjection {
		keys = append(keys, field.Key)
	}

	assert.ElementsMatch(t, []string{"slug", "name", "description", "location", "address"}, keys)
}
