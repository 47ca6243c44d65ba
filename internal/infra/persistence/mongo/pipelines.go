package mongo

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
)

// Fields returned by the proximity query, enough to draw a map marker
var nearProjection = bson.D{
	{Key: "slug", Value: 1},
	{Key: "name", Value: 1},
	{Key: "description", Value: 1},
	{Key: "location", Value: 1},
	{Key: "address", Value: 1},
}

// newestFirst is the listing order shared by every store query.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// tagFilter matches stores carrying tag, or any store with at least one tag when tag is empty.
func tagFilter(tag string) bson.D {
	if tag == "" {
		return bson.D{{Key: "tags.0", Value: bson.D{{Key: "$exists", Value: true}}}}
	}

	return bson.D{{Key: "tags", Value: tag}}
}

// slugFilter matches slugs against pattern case-insensitively, skipping excludeID.
func slugFilter(pattern string, excludeID uuid.UUID) bson.D {
	return bson.D{
		{Key: "slug", Value: bson.Regex{Pattern: pattern, Options: "i"}},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID.String()}}},
	}
}

// nearFilter matches stores within maxDistanceMeters of point; $near sorts nearest first.
func nearFilter(point orb.Point, maxDistanceMeters float64) bson.D {
	return bson.D{{Key: "location", Value: bson.D{{Key: "$near", Value: bson.D{
		{Key: "$geometry", Value: newGeoPoint(point)},
		{Key: "$maxDistance", Value: maxDistanceMeters},
	}}}}}
}

// tagCountPipeline counts how many stores carry each tag, most used first.
func tagCountPipeline() mongod.Pipeline {
	return mongod.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

// topStoresPipeline joins reviews onto stores, keeps stores with at least
// minReviews reviews and ranks them by average rating.
func topStoresPipeline(minReviews, limit int) mongod.Pipeline {
	pipeline := mongod.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colReviews},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "store_id"},
			{Key: "as", Value: "reviews"},
		}}},
	}

	// A store has at least n reviews exactly when reviews.(n-1) exists
	if minReviews > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "reviews." + strconv.Itoa(minReviews-1), Value: bson.D{{Key: "$exists", Value: true}}},
		}}})
	}

	return append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "average_rating", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$avg", Value: "$reviews.rating"}}, 0,
			}}}},
			{Key: "review_count", Value: bson.D{{Key: "$size", Value: "$reviews"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "reviews", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "average_rating", Value: -1},
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	)
}

// toggleHeartUpdate removes storeID from the hearts array if present and appends
// it otherwise. It runs server-side as one atomic document update.
func toggleHeartUpdate(storeID string) mongod.Pipeline {
	hearts := bson.D{{Key: "$ifNull", Value: bson.A{"$hearts", bson.A{}}}}

	return mongod.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "hearts", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{storeID, hearts}}}},
			{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: hearts},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", storeID}}}},
			}}}},
			{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{hearts, bson.A{storeID}}}}},
		}}}}}}},
	}
}
