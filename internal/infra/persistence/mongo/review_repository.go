package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	stores  *mongod.Collection
	reviews *mongod.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongod.Database) repository.ReviewRepository {
	return &reviewRepository{
		stores:  db.Collection(colStores),
		reviews: db.Collection(colReviews),
	}
}

// ListByStore returns the reviews of a store, newest first.
func (repo *reviewRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := repo.reviews.Find(ctx, bson.D{{Key: "store_id", Value: storeID.String()}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by store")
	}

	var models []reviewModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, reviewFromModel(&models[i]))
	}

	return reviews, nil
}

// TopStores ranks the stores with at least minReviews reviews by average rating.
func (repo *reviewRepository) TopStores(ctx context.Context, minReviews, limit int) ([]*entity.RatedStore, error) {
	cursor, err := repo.stores.Aggregate(ctx, topStoresPipeline(minReviews, limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank stores by rating")
	}

	var rows []ratedStoreModel
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode ranked stores")
	}

	ranked := make([]*entity.RatedStore, 0, len(rows))
	for i := range rows {
		ranked = append(ranked, &entity.RatedStore{
			Store:         storeFromModel(&rows[i].Store),
			AverageRating: rows[i].AverageRating,
			ReviewCount:   rows[i].ReviewCount,
		})
	}

	return ranked, nil
}
