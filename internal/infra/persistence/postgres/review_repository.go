package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// ListByStore returns the reviews of a store, newest first.
func (repo *reviewRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by store")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// TopStores ranks the stores with at least minReviews reviews by average rating.
// Ties keep the oldest store first.
func (repo *reviewRepository) TopStores(ctx context.Context, minReviews, limit int) ([]*entity.RatedStore, error) {
	var rows []ratedStoreRow

	query := `
		SELECT s.*,
		       AVG(r.rating)::float8 AS average_rating,
		       COUNT(r.id) AS review_count
		FROM stores s
		LEFT JOIN reviews r ON r.store_id = s.id
		GROUP BY s.id
		HAVING COUNT(r.id) >= ?
		ORDER BY average_rating DESC, s.created_at ASC, s.id ASC
		LIMIT ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, minReviews, limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank stores by rating")
	}

	ranked := make([]*entity.RatedStore, 0, len(rows))
	for i := range rows {
		ranked = append(ranked, &entity.RatedStore{
			Store:         toStoreDomain(&rows[i].StoreModel),
			AverageRating: rows[i].AverageRating,
			ReviewCount:   rows[i].ReviewCount,
		})
	}

	return ranked, nil
}

type ratedStoreRow struct {
	model.StoreModel `gorm:"embedded"`
	AverageRating    float64
	ReviewCount      int
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		StoreID:   data.StoreID,
		AuthorID:  data.AuthorID,
		Text:      data.Text,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
	}
}
