package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	txManager  *mockRepo.MockTransactionManager
	storeRepo  *mockRepo.MockStoreRepository
	reviewRepo *mockRepo.MockReviewRepository
	publisher  *mockSvc.MockEventPublisher
}

func newTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogMocks) {
	t.Helper()

	mocks := &catalogMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}
	cfg := &config.Config{Catalog: config.DefaultCatalogConfig()}
	catalog := NewCatalogService(mocks.txManager, mocks.storeRepo, mocks.reviewRepo, mocks.publisher, cfg, slog.Default())

	return catalog, mocks
}

// expectPublish expects one event of eventType
func expectPublish(publisher *mockSvc.MockEventPublisher, eventType service.CatalogEventType) *mockSvc.MockEventPublisher_PublishCatalogEvent_Call {
	return publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == eventType
		}))
}

// newTestPublisher accepts any event
func newTestPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

// expectTx runs the transaction body against a factory that hands out txStoreRepo
// and propagates the body's error, the way the real manager does.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, txStoreRepo *mockRepo.MockStoreRepository) *mockRepo.MockTransactionManager_Execute_Call {
	t.Helper()

	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().StoreRepo().Return(txStoreRepo)

			return fn(factory)
		})
}

func testStores(n int) []*entity.Store {
	stores := make([]*entity.Store, 0, n)
	for i := 0; i < n; i++ {
		stores = append(stores, &entity.Store{ID: uuid.New(), Name: "store", CreatedAt: time.Now()})
	}

	return stores
}

func validCreateInput(name string) *usecase.CreateStoreInput {
	return &usecase.CreateStoreInput{
		Name:        name,
		Description: "  Hand-pulled noodles  ",
		Tags:        []string{"Open Late", " ", "Family Friendly"},
		Location: &usecase.LocationInput{
			Longitude: coord(-79.3832),
			Latitude:  coord(43.6532),
			Address:   "1 Queen St W, Toronto",
		},
	}
}

func coord(v float64) *float64 {
	return &v
}

func TestCatalogService_ListStores_FirstPage(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindPage(ctx, 0, 4).Return(testStores(4), nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(10), nil)

	page, err := catalog.ListStores(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Stores, 4)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(10), page.Count)
}

func TestCatalogService_ListStores_NonPositivePageIsFirstPage(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindPage(ctx, 0, 4).Return(testStores(2), nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	page, err := catalog.ListStores(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
}

func TestCatalogService_ListStores_PageOutOfRange(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindPage(ctx, 12, 4).Return([]*entity.Store{}, nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(10), nil)

	page, err := catalog.ListStores(ctx, 4)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrPageOutOfRange))

	var rangeErr *domainerrors.PageOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 4, rangeErr.Requested)
	assert.Equal(t, 3, rangeErr.Last)
}

func TestCatalogService_ListStores_HugePageIsOutOfRange(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	page := 1<<62 + 1

	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(10), nil)

	result, err := catalog.ListStores(ctx, page)
	require.Error(t, err)
	assert.Nil(t, result)

	var rangeErr *domainerrors.PageOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, page, rangeErr.Requested)
	assert.Equal(t, 3, rangeErr.Last)
	mocks.storeRepo.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_ListStores_EmptyCatalog(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindPage(ctx, 0, 4).Return([]*entity.Store{}, nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	page, err := catalog.ListStores(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Stores)
	assert.Equal(t, 0, page.Pages)
}

func TestCatalogService_ListStores_CountError(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	mocks.storeRepo.EXPECT().FindPage(ctx, 0, 4).Return(testStores(4), nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(int64(0), dbErr)

	_, err := catalog.ListStores(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestCatalogService_ListByTag(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	tags := []entity.TagCount{{Tag: "Wifi", Count: 3}, {Tag: "Open Late", Count: 1}}

	mocks.storeRepo.EXPECT().ListTags(ctx).Return(tags, nil)
	mocks.storeRepo.EXPECT().FindByTag(ctx, "Wifi").Return(testStores(3), nil)

	listing, err := catalog.ListByTag(ctx, "  Wifi ")
	require.NoError(t, err)
	assert.Equal(t, "Wifi", listing.Tag)
	assert.Equal(t, tags, listing.Tags)
	assert.Len(t, listing.Stores, 3)
}

func TestCatalogService_SearchStores_BlankQuery(t *testing.T) {
	catalog, _ := newTestCatalogService(t)

	results, err := catalog.SearchStores(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCatalogService_SearchStores_OrdersByScore(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	stores := testStores(3)

	mocks.storeRepo.EXPECT().TextSearch(ctx, "coffee", 5).Return([]entity.ScoredStore{
		{Store: stores[0], Score: 0.5},
		{Store: stores[1], Score: 1.5},
		{Store: stores[2], Score: 0.5},
	}, nil)

	results, err := catalog.SearchStores(ctx, " coffee ")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, stores[1], results[0].Store)
	// equal scores keep repository order
	assert.Equal(t, stores[0], results[1].Store)
	assert.Equal(t, stores[2], results[2].Store)
}

func TestCatalogService_NearbyStores_AnnotatesDistance(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	origin := orb.Point{-79.3832, 43.6532}
	store := &entity.Store{ID: uuid.New(), Location: entity.Location{Point: orb.Point{-79.3800, 43.6532}}}

	mocks.storeRepo.EXPECT().NearPoint(ctx, origin, float64(10000), 10).Return([]*entity.Store{store}, nil)

	results, err := catalog.NearbyStores(ctx, origin.Lon(), origin.Lat())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, store, results[0].Store)
	assert.InDelta(t, 258, results[0].DistanceMeters, 5)
}

func TestCatalogService_NearbyStoresWithin_ClampsRadius(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().NearPoint(ctx, orb.Point{10, 10}, float64(50000), 10).Return([]*entity.Store{}, nil)

	results, err := catalog.NearbyStoresWithin(ctx, 10, 10, 1_000_000)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCatalogService_NearbyStoresWithin_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		lng    float64
		lat    float64
		radius float64
	}{
		{name: "longitude too large", lng: 181, lat: 0, radius: 100},
		{name: "latitude too small", lng: 0, lat: -91, radius: 100},
		{name: "zero radius", lng: 0, lat: 0, radius: 0},
		{name: "negative radius", lng: 0, lat: 0, radius: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, _ := newTestCatalogService(t)

			_, err := catalog.NearbyStoresWithin(context.Background(), tt.lng, tt.lat, tt.radius)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_TopStores(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	ranked := []*entity.RatedStore{{Store: testStores(1)[0], AverageRating: 4.5, ReviewCount: 2}}

	mocks.reviewRepo.EXPECT().TopStores(ctx, 2, 10).Return(ranked, nil)

	result, err := catalog.TopStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, ranked, result)
}

func TestCatalogService_GetStore_NotFound(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	storeID := uuid.New()

	mocks.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	store, err := catalog.GetStore(ctx, storeID)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestCatalogService_GetStoreBySlug(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	store := testStores(1)[0]
	reviews := []*entity.Review{{ID: uuid.New(), StoreID: store.ID, Rating: 5}}

	mocks.storeRepo.EXPECT().FindBySlug(ctx, "ramen-shop").Return(store, nil)
	mocks.reviewRepo.EXPECT().ListByStore(ctx, store.ID).Return(reviews, nil)

	detail, err := catalog.GetStoreBySlug(ctx, "ramen-shop")
	require.NoError(t, err)
	assert.Equal(t, store, detail.Store)
	assert.Equal(t, reviews, detail.Reviews)
}

func TestCatalogService_GetStoreBySlug_Malformed(t *testing.T) {
	catalog, _ := newTestCatalogService(t)

	for _, storeSlug := range []string{"Ramen Shop", "../etc", "ramen--shop", ""} {
		detail, err := catalog.GetStoreBySlug(context.Background(), storeSlug)
		require.Error(t, err, storeSlug)
		assert.Nil(t, detail)
		assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound), storeSlug)
	}
}

func TestCatalogService_GetStoreForEdit_NotOwner(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	store := &entity.Store{ID: uuid.New(), AuthorID: uuid.New()}

	mocks.storeRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)

	_, err := catalog.GetStoreForEdit(ctx, store.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotStoreOwner))
}

func TestCatalogService_ConfirmOwner(t *testing.T) {
	catalog, _ := newTestCatalogService(t)
	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), AuthorID: ownerID}

	assert.NoError(t, catalog.ConfirmOwner(store, ownerID))
	assert.Error(t, catalog.ConfirmOwner(store, uuid.New()))
	assert.Error(t, catalog.ConfirmOwner(store, uuid.Nil))
	assert.Error(t, catalog.ConfirmOwner(nil, ownerID))
}

func TestCatalogService_CreateStore_FirstOfItsName(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	authorID := uuid.New()

	expectTx(t, mocks.txManager, mocks.storeRepo).Once()
	mocks.storeRepo.EXPECT().
		CountSlugs(ctx, `^ramen-shop(-[0-9]*)?$`, mock.AnythingOfType("uuid.UUID")).
		Return(int64(0), nil)
	mocks.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == service.EventStoreCreated && event.Slug == "ramen-shop" &&
				event.UserID == authorID.String() && event.EventID != ""
		})).
		Return(nil).Once()

	store, err := catalog.CreateStore(ctx, validCreateInput("  Ramen Shop "), authorID)
	require.NoError(t, err)
	assert.Equal(t, "Ramen Shop", store.Name)
	assert.Equal(t, "ramen-shop", store.Slug)
	assert.Equal(t, "Hand-pulled noodles", store.Description)
	assert.Equal(t, []string{"Open Late", "Family Friendly"}, store.Tags)
	assert.Equal(t, authorID, store.AuthorID)
	assert.NotEqual(t, uuid.Nil, store.ID)
	assert.InDelta(t, -79.3832, store.Location.Lng(), 1e-9)
	assert.InDelta(t, 43.6532, store.Location.Lat(), 1e-9)
}

func TestCatalogService_CreateStore_SuffixesExistingSlugs(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	expectTx(t, mocks.txManager, mocks.storeRepo).Once()
	mocks.storeRepo.EXPECT().
		CountSlugs(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).
		Return(int64(2), nil)
	mocks.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)
	// A failed publish never fails the committed write
	expectPublish(mocks.publisher, service.EventStoreCreated).Return(errors.New("broker down")).Once()

	store, err := catalog.CreateStore(ctx, validCreateInput("Ramen Shop"), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "ramen-shop-3", store.Slug)
}

func TestCatalogService_CreateStore_RetriesSlugConflictOnce(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	expectTx(t, mocks.txManager, mocks.storeRepo).Times(2)
	mocks.storeRepo.EXPECT().
		CountSlugs(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).
		Return(int64(1), nil).
		Once()
	mocks.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(repository.ErrSlugTaken).
		Once()
	mocks.storeRepo.EXPECT().
		ListSlugs(ctx, `^ramen-shop(-[0-9]*)?$`, mock.AnythingOfType("uuid.UUID")).
		Return([]string{"ramen-shop", "ramen-shop-2"}, nil).
		Once()
	mocks.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil).
		Once()
	expectPublish(mocks.publisher, service.EventStoreCreated).Return(nil).Once()

	store, err := catalog.CreateStore(ctx, validCreateInput("Ramen Shop"), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "ramen-shop-3", store.Slug)
}

func TestCatalogService_CreateStore_SecondConflictSurfaces(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()

	expectTx(t, mocks.txManager, mocks.storeRepo).Times(2)
	mocks.storeRepo.EXPECT().
		CountSlugs(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).
		Return(int64(0), nil)
	mocks.storeRepo.EXPECT().
		ListSlugs(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).
		Return([]string{"ramen-shop"}, nil)
	mocks.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(repository.ErrSlugTaken).
		Times(2)

	store, err := catalog.CreateStore(ctx, validCreateInput("Ramen Shop"), uuid.New())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugConflict))
}

func TestCatalogService_CreateStore_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    func() *usecase.CreateStoreInput
		authorID uuid.UUID
	}{
		{
			name:     "nil input",
			input:    func() *usecase.CreateStoreInput { return nil },
			authorID: uuid.New(),
		},
		{
			name:     "missing author",
			input:    func() *usecase.CreateStoreInput { return validCreateInput("Ramen Shop") },
			authorID: uuid.Nil,
		},
		{
			name:     "blank name",
			input:    func() *usecase.CreateStoreInput { return validCreateInput("   ") },
			authorID: uuid.New(),
		},
		{
			name: "missing location",
			input: func() *usecase.CreateStoreInput {
				input := validCreateInput("Ramen Shop")
				input.Location = nil

				return input
			},
			authorID: uuid.New(),
		},
		{
			name: "missing address",
			input: func() *usecase.CreateStoreInput {
				input := validCreateInput("Ramen Shop")
				input.Location.Address = " "

				return input
			},
			authorID: uuid.New(),
		},
		{
			name: "latitude out of range",
			input: func() *usecase.CreateStoreInput {
				input := validCreateInput("Ramen Shop")
				input.Location.Latitude = coord(120)

				return input
			},
			authorID: uuid.New(),
		},
		{
			name: "missing coordinates",
			input: func() *usecase.CreateStoreInput {
				input := validCreateInput("Ramen Shop")
				input.Location.Longitude = nil
				input.Location.Latitude = nil

				return input
			},
			authorID: uuid.New(),
		},
		{
			name: "missing latitude",
			input: func() *usecase.CreateStoreInput {
				input := validCreateInput("Ramen Shop")
				input.Location.Latitude = nil

				return input
			},
			authorID: uuid.New(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, _ := newTestCatalogService(t)

			store, err := catalog.CreateStore(context.Background(), tt.input(), tt.authorID)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_UpdateStore_KeepsSlugWhenNameUnchanged(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Store{
		ID:       uuid.New(),
		Name:     "Ramen Shop",
		Slug:     "ramen-shop",
		Location: entity.Location{Point: orb.Point{1, 1}, Address: "Somewhere"},
		AuthorID: ownerID,
	}
	description := "Now with gyoza"

	mocks.storeRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	expectTx(t, mocks.txManager, mocks.storeRepo).Once()
	mocks.storeRepo.EXPECT().Update(ctx, existing).Return(nil)
	expectPublish(mocks.publisher, service.EventStoreUpdated).Return(nil).Once()

	name := " Ramen Shop "
	store, err := catalog.UpdateStore(ctx, existing.ID, &usecase.UpdateStoreInput{
		Name:        &name,
		Description: &description,
	}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "ramen-shop", store.Slug)
	assert.Equal(t, "Now with gyoza", store.Description)
}

func TestCatalogService_UpdateStore_RenameRegeneratesSlug(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Store{
		ID:       uuid.New(),
		Name:     "Ramen Shop",
		Slug:     "ramen-shop",
		Location: entity.Location{Point: orb.Point{1, 1}, Address: "Somewhere"},
		AuthorID: ownerID,
	}

	mocks.storeRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	expectTx(t, mocks.txManager, mocks.storeRepo).Once()
	mocks.storeRepo.EXPECT().
		CountSlugs(ctx, `^udon-bar(-[0-9]*)?$`, existing.ID).
		Return(int64(0), nil)
	mocks.storeRepo.EXPECT().Update(ctx, existing).Return(nil)
	expectPublish(mocks.publisher, service.EventStoreUpdated).Return(nil).Once()

	name := "Udon Bar"
	store, err := catalog.UpdateStore(ctx, existing.ID, &usecase.UpdateStoreInput{Name: &name}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "udon-bar", store.Slug)
	assert.Equal(t, ownerID, store.AuthorID)
}

func TestCatalogService_UpdateStore_NotOwner(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	existing := &entity.Store{ID: uuid.New(), Name: "Ramen Shop", AuthorID: uuid.New()}

	mocks.storeRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	name := "Hijacked"
	_, err := catalog.UpdateStore(ctx, existing.ID, &usecase.UpdateStoreInput{Name: &name}, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotStoreOwner))
	assert.Equal(t, "Ramen Shop", existing.Name)
}

func TestCatalogService_UpdateStore_NotFound(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	storeID := uuid.New()

	mocks.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	_, err := catalog.UpdateStore(ctx, storeID, &usecase.UpdateStoreInput{}, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestCatalogService_UpdateStore_LocationWithoutCoordinates(t *testing.T) {
	catalog, _ := newTestCatalogService(t)

	_, err := catalog.UpdateStore(context.Background(), uuid.New(), &usecase.UpdateStoreInput{
		Location: &usecase.LocationInput{Address: "Tokyo"},
	}, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_UpdateStore_MovesStore(t *testing.T) {
	catalog, mocks := newTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Store{
		ID:       uuid.New(),
		Name:     "Ramen Shop",
		Slug:     "ramen-shop",
		Location: entity.Location{Point: orb.Point{1, 1}, Address: "Somewhere"},
		AuthorID: ownerID,
	}

	mocks.storeRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	expectTx(t, mocks.txManager, mocks.storeRepo).Once()
	mocks.storeRepo.EXPECT().Update(ctx, existing).Return(nil)
	expectPublish(mocks.publisher, service.EventStoreUpdated).Return(nil).Once()

	store, err := catalog.UpdateStore(ctx, existing.ID, &usecase.UpdateStoreInput{
		Location: &usecase.LocationInput{Longitude: coord(139.7), Latitude: coord(0), Address: " Tokyo "},
	}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{139.7, 0}, store.Location.Point)
	assert.Equal(t, "Tokyo", store.Location.Address)
}
