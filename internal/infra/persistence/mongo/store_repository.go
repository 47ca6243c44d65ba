package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	col     *mongod.Collection
	session *mongod.Session
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *mongod.Database) repository.StoreRepository {
	return newStoreRepository(db, nil)
}

func newStoreRepository(db *mongod.Database, session *mongod.Session) *storeRepository {
	return &storeRepository{
		col:     db.Collection(colStores),
		session: session,
	}
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	if _, err := repo.col.InsertOne(sessionContext(ctx, repo.session), storeToModel(store)); err != nil {
		if mongod.IsDuplicateKeyError(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	return nil
}

// Update overwrites the mutable fields of a store. author_id and created_at are never touched.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	m := storeToModel(store)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: m.Name},
		{Key: "slug", Value: m.Slug},
		{Key: "description", Value: m.Description},
		{Key: "tags", Value: m.Tags},
		{Key: "location", Value: m.Location},
		{Key: "address", Value: m.Address},
		{Key: "photo", Value: m.Photo},
		{Key: "updated_at", Value: m.UpdatedAt},
	}}}

	result, err := repo.col.UpdateByID(sessionContext(ctx, repo.session), m.ID, update)
	if err != nil {
		if mongod.IsDuplicateKeyError(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}

	if result.MatchedCount == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

// FindBySlug retrieves a store by its slug.
func (repo *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return repo.findOne(ctx, bson.D{{Key: "slug", Value: slug}})
}

func (repo *storeRepository) findOne(ctx context.Context, filter bson.D) (*entity.Store, error) {
	var m storeModel

	if err := repo.col.FindOne(sessionContext(ctx, repo.session), filter).Decode(&m); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return storeFromModel(&m), nil
}

// FindByIDs retrieves every store whose id is in ids. Unknown ids are skipped.
func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: uuidStrings(ids)}}}}

	return repo.find(ctx, filter, options.Find().SetSort(newestFirst), "failed to find stores by IDs")
}

// FindPage returns stores newest first, skipping the first skip stores.
func (repo *storeRepository) FindPage(ctx context.Context, skip, limit int) ([]*entity.Store, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	return repo.find(ctx, bson.D{}, opts, "failed to find stores page")
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.col.CountDocuments(sessionContext(ctx, repo.session), bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// FindByTag returns the stores carrying tag. An empty tag matches every store with at least one tag.
func (repo *storeRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Store, error) {
	return repo.find(ctx, tagFilter(tag), options.Find().SetSort(newestFirst), "failed to find stores by tag")
}

// ListTags counts how many stores carry each tag, most used first.
func (repo *storeRepository) ListTags(ctx context.Context) ([]entity.TagCount, error) {
	ctx = sessionContext(ctx, repo.session)

	cursor, err := repo.col.Aggregate(ctx, tagCountPipeline())
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tags")
	}

	var rows []tagCountModel
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode tags")
	}

	tags := make([]entity.TagCount, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, entity.TagCount{Tag: row.Tag, Count: row.Count})
	}

	return tags, nil
}

// TextSearch ranks stores by MongoDB's text score over name and description.
func (repo *storeRepository) TextSearch(ctx context.Context, query string, limit int) ([]entity.ScoredStore, error) {
	ctx = sessionContext(ctx, repo.session)
	textScore := bson.D{{Key: "$meta", Value: "textScore"}}

	opts := options.Find().
		SetProjection(bson.D{{Key: "score", Value: textScore}}).
		SetSort(bson.D{
			{Key: "score", Value: textScore},
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}).
		SetLimit(int64(limit))

	cursor, err := repo.col.Find(ctx, bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: query}}}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	var rows []scoredStoreModel
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode search results")
	}

	results := make([]entity.ScoredStore, 0, len(rows))
	for i := range rows {
		results = append(results, entity.ScoredStore{
			Store: storeFromModel(&rows[i].Store),
			Score: rows[i].Score,
		})
	}

	return results, nil
}

// NearPoint returns stores within maxDistanceMeters of point, nearest first.
// Only the fields needed to render a map marker are loaded.
func (repo *storeRepository) NearPoint(ctx context.Context, point orb.Point, maxDistanceMeters float64, limit int) ([]*entity.Store, error) {
	opts := options.Find().
		SetProjection(nearProjection).
		SetLimit(int64(limit))

	return repo.find(ctx, nearFilter(point, maxDistanceMeters), opts, "failed to find stores near point")
}

// CountSlugs counts stores other than excludeID whose slug matches pattern, ignoring case.
func (repo *storeRepository) CountSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) (int64, error) {
	count, err := repo.col.CountDocuments(sessionContext(ctx, repo.session), slugFilter(pattern, excludeID))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count slugs")
	}

	return count, nil
}

// ListSlugs returns the slugs of stores other than excludeID matching pattern, ignoring case.
func (repo *storeRepository) ListSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "slug", Value: 1}}).
		SetSort(bson.D{{Key: "slug", Value: 1}})

	stores, err := repo.find(ctx, slugFilter(pattern, excludeID), opts, "failed to list slugs")
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(stores))
	for _, store := range stores {
		slugs = append(slugs, store.Slug)
	}

	return slugs, nil
}

func (repo *storeRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder, message string) ([]*entity.Store, error) {
	ctx = sessionContext(ctx, repo.session)

	cursor, err := repo.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, message)
	}

	var models []storeModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, message)
	}

	return storesFromModels(models), nil
}
