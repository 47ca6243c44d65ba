package mongo

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	col     *mongod.Collection
	session *mongod.Session
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *mongod.Database) repository.FavoriteRepository {
	return newFavoriteRepository(db, nil)
}

func newFavoriteRepository(db *mongod.Database, session *mongod.Session) *favoriteRepository {
	return &favoriteRepository{
		col:     db.Collection(colHearts),
		session: session,
	}
}

// Toggle flips storeID in the user's hearts with a single findOneAndUpdate,
// creating the user's document on first use.
func (repo *favoriteRepository) Toggle(ctx context.Context, userID, storeID uuid.UUID) ([]uuid.UUID, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var m heartsModel
	err := repo.col.FindOneAndUpdate(
		sessionContext(ctx, repo.session),
		bson.D{{Key: "_id", Value: userID.String()}},
		toggleHeartUpdate(storeID.String()),
		opts,
	).Decode(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle heart")
	}

	return parseUUIDs(m.Hearts), nil
}

// ListStoreIDs returns the user's hearted store ids in the order they were hearted.
func (repo *favoriteRepository) ListStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var m heartsModel

	err := repo.col.FindOne(sessionContext(ctx, repo.session), bson.D{{Key: "_id", Value: userID.String()}}).Decode(&m)
	if err != nil {
		if isNoDocuments(err) {
			return []uuid.UUID{}, nil
		}

		return nil, errors.Wrap(err, "failed to list hearts")
	}

	return parseUUIDs(m.Hearts), nil
}
