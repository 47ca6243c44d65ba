package mongo_test

import (
	"context"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx/fxtest"
	"golang.org/x/sync/errgroup"
)

const mongoImage = "mongo:7"

func setupDatabase(t *testing.T) *mongod.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcmongodb.Run(ctx, mongoImage, tcmongodb.WithReplicaSet("rs0"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverMongo, AutoMigrate: true},
		Mongo:   &config.MongoConfig{URI: directURI(t, uri), Database: "storefront"},
	}

	lc := fxtest.NewLifecycle(t)
	db, err := mongo.New(mongo.Params{Lifecycle: lc, Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return db
}

// directURI talks to the single replica set member through the mapped port
// instead of the member address the set advertises inside the container.
func directURI(t *testing.T, uri string) string {
	t.Helper()

	u, err := url.Parse(uri)
	require.NoError(t, err)

	q := u.Query()
	q.Del("replicaSet")
	q.Set("directConnection", "true")
	u.RawQuery = q.Encode()

	return u.String()
}

func truncate(t *testing.T, db *mongod.Database) {
	t.Helper()

	for _, col := range []string{"stores", "reviews", "user_hearts"} {
		_, err := db.Collection(col).DeleteMany(context.Background(), bson.D{})
		require.NoError(t, err)
	}
}

func seedStore(t *testing.T, repo repository.StoreRepository, name, description string, tags []string, lng, lat float64, createdAt time.Time) *entity.Store {
	t.Helper()

	store := &entity.Store{
		ID:          uuid.New(),
		Name:        name,
		Slug:        uuid.NewString(),
		Description: description,
		Tags:        tags,
		Location:    entity.Location{Point: orb.Point{lng, lat}, Address: "somewhere"},
		AuthorID:    uuid.New(),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), store))

	return store
}

func seedReview(t *testing.T, db *mongod.Database, storeID uuid.UUID, rating int, createdAt time.Time) {
	t.Helper()

	_, err := db.Collection("reviews").InsertOne(context.Background(), bson.D{
		{Key: "_id", Value: uuid.NewString()},
		{Key: "store_id", Value: storeID.String()},
		{Key: "author_id", Value: uuid.NewString()},
		{Key: "text", Value: "review"},
		{Key: "rating", Value: rating},
		{Key: "created_at", Value: createdAt},
	})
	require.NoError(t, err)
}

func coord(v float64) *float64 {
	return &v
}

func newCatalog(db *mongod.Database) usecase.CatalogUsecase {
	cfg := &config.Config{Catalog: config.DefaultCatalogConfig()}

	return impl.NewCatalogService(
		mongo.NewTransactionManager(db),
		mongo.NewStoreRepository(db),
		mongo.NewReviewRepository(db),
		pubsub.NewNoopPublisher(slog.Default()),
		cfg,
		slog.Default(),
	)
}

func newFavorites(db *mongod.Database) usecase.FavoriteUsecase {
	return impl.NewFavoriteService(
		mongo.NewTransactionManager(db),
		mongo.NewStoreRepository(db),
		mongo.NewFavoriteRepository(db),
		pubsub.NewNoopPublisher(slog.Default()),
		slog.Default(),
	)
}

func TestMongoRepositories(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("slugs are suffixed for repeated names", func(t *testing.T) {
		truncate(t, db)
		catalog := newCatalog(db)

		var slugs []string
		for i := 0; i < 3; i++ {
			store, err := catalog.CreateStore(ctx, &usecase.CreateStoreInput{
				Name:     "Ramen Shop",
				Location: &usecase.LocationInput{Longitude: coord(139.7), Latitude: coord(35.6), Address: "Tokyo"},
			}, uuid.New())
			require.NoError(t, err)
			slugs = append(slugs, store.Slug)
		}

		assert.Equal(t, []string{"ramen-shop", "ramen-shop-2", "ramen-shop-3"}, slugs)

		found, err := catalog.GetStoreBySlug(ctx, "ramen-shop-2")
		require.NoError(t, err)
		assert.Equal(t, "Ramen Shop", found.Store.Name)
	})

	t.Run("duplicate slug is reported as taken", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)

		first := seedStore(t, repo, "A", "", nil, 0, 0, base)
		second := &entity.Store{
			ID:       uuid.New(),
			Name:     "B",
			Slug:     first.Slug,
			Location: entity.Location{Address: "x"},
			AuthorID: uuid.New(),
		}

		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, repository.ErrSlugTaken)

		other := seedStore(t, repo, "C", "", nil, 0, 0, base)
		other.Slug = first.Slug
		assert.ErrorIs(t, repo.Update(ctx, other), repository.ErrSlugTaken)
	})

	t.Run("text search ranks name matches above description matches", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		described := seedStore(t, repo, "Corner Bakery", "the best coffee in town", nil, 0, 0, base)
		named := seedStore(t, repo, "Coffee Palace", "pastries", nil, 0, 0, base.Add(time.Minute))
		seedStore(t, repo, "Tea House", "green tea", nil, 0, 0, base.Add(2*time.Minute))

		results, err := repo.TextSearch(ctx, "coffee", 5)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, named.ID, results[0].Store.ID)
		assert.Equal(t, described.ID, results[1].Store.ID)
		assert.Greater(t, results[0].Score, results[1].Score)
		assert.Positive(t, results[1].Score)
	})

	t.Run("near point orders by distance within radius", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		far := seedStore(t, repo, "Far", "", nil, -79.40, 43.6532, base)
		near := seedStore(t, repo, "Near", "", nil, -79.3840, 43.6532, base)
		seedStore(t, repo, "Elsewhere", "", nil, 2.35, 48.85, base)
		_, err := db.Collection("stores").UpdateByID(ctx, near.ID.String(),
			bson.D{{Key: "$set", Value: bson.D{{Key: "photo", Value: "near.jpg"}}}})
		require.NoError(t, err)

		stores, err := repo.NearPoint(ctx, orb.Point{-79.3832, 43.6532}, 10000, 10)
		require.NoError(t, err)
		require.Len(t, stores, 2)
		assert.Equal(t, near.ID, stores[0].ID)
		assert.Equal(t, far.ID, stores[1].ID)
		assert.Equal(t, near.Slug, stores[0].Slug)
		assert.InDelta(t, -79.3840, stores[0].Location.Lng(), 1e-9)
		assert.Empty(t, stores[0].Photo)

		none, err := repo.NearPoint(ctx, orb.Point{-79.3832, 43.6532}, 10, 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("tags are counted and filtered", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		seedStore(t, repo, "A", "", []string{"Wifi", "Open Late"}, 0, 0, base)
		seedStore(t, repo, "B", "", []string{"Wifi"}, 0, 0, base)
		seedStore(t, repo, "C", "", nil, 0, 0, base)

		tags, err := repo.ListTags(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.TagCount{{Tag: "Wifi", Count: 2}, {Tag: "Open Late", Count: 1}}, tags)

		tagged, err := repo.FindByTag(ctx, "Wifi")
		require.NoError(t, err)
		assert.Len(t, tagged, 2)

		anyTag, err := repo.FindByTag(ctx, "")
		require.NoError(t, err)
		assert.Len(t, anyTag, 2)
	})

	t.Run("top stores average ratings and require the minimum review count", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		good := seedStore(t, repo, "Good", "", nil, 0, 0, base)
		better := seedStore(t, repo, "Better", "", nil, 0, 0, base)
		single := seedStore(t, repo, "Single", "", nil, 0, 0, base)

		for storeID, ratings := range map[uuid.UUID][]int{
			good.ID:   {4, 3},
			better.ID: {5, 4, 5},
			single.ID: {5},
		} {
			for _, rating := range ratings {
				seedReview(t, db, storeID, rating, base)
			}
		}

		ranked, err := mongo.NewReviewRepository(db).TopStores(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, better.ID, ranked[0].Store.ID)
		assert.InDelta(t, 14.0/3.0, ranked[0].AverageRating, 1e-9)
		assert.Equal(t, 3, ranked[0].ReviewCount)
		assert.Equal(t, good.ID, ranked[1].Store.ID)
		assert.InDelta(t, 3.5, ranked[1].AverageRating, 1e-9)
		assert.Equal(t, 2, ranked[1].ReviewCount)
	})

	t.Run("toggling a heart twice restores the set", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		favorites := newFavorites(db)
		store := seedStore(t, repo, "A", "", nil, 0, 0, base)
		userID := uuid.New()

		hearts, err := favorites.ToggleHeart(ctx, userID, store.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{store.ID}, hearts)

		hearts, err = favorites.ToggleHeart(ctx, userID, store.ID)
		require.NoError(t, err)
		assert.Empty(t, hearts)

		_, err = favorites.ToggleHeart(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})

	t.Run("concurrent hearts on one user all commit", func(t *testing.T) {
		truncate(t, db)
		repo := mongo.NewStoreRepository(db)
		favorites := newFavorites(db)
		userID := uuid.New()

		stores := make([]*entity.Store, 8)
		for i := range stores {
			stores[i] = seedStore(t, repo, "S", "", nil, 0, 0, base)
		}

		// Create the user's document first so the writers below only collide on updates
		_, err := favorites.ToggleHeart(ctx, userID, stores[0].ID)
		require.NoError(t, err)

		// Each transaction rewrites the same document. Write conflicts are
		// transient and the transaction manager retries them until they commit
		var g errgroup.Group
		for _, store := range stores[1:] {
			g.Go(func() error {
				_, err := favorites.ToggleHeart(ctx, userID, store.ID)
				return err
			})
		}
		require.NoError(t, g.Wait())

		hearts, err := favorites.Hearts(ctx, userID)
		require.NoError(t, err)
		want := make([]uuid.UUID, 0, len(stores))
		for _, store := range stores {
			want = append(want, store.ID)
		}
		assert.ElementsMatch(t, want, hearts)
	})
}
