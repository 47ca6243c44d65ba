package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_ToggleHeart_AddsStore(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()
	otherID := uuid.New()

	mockPublisher.EXPECT().
		PublishCatalogEvent(ctx, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == service.EventHeartToggled && event.Hearted &&
				event.StoreID == storeID.String() && event.UserID == userID.String()
		})).
		Return(nil).
		Once()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txStoreRepo := mockRepo.NewMockStoreRepository(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().StoreRepo().Return(txStoreRepo)
			mockFactory.EXPECT().FavoriteRepo().Return(txFavoriteRepo)

			txStoreRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
			txFavoriteRepo.EXPECT().Toggle(ctx, userID, storeID).Return([]uuid.UUID{otherID, storeID}, nil)

			return fn(mockFactory)
		})

	hearts, err := favorites.ToggleHeart(ctx, userID, storeID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{otherID, storeID}, hearts)
}

func TestFavoriteService_ToggleHeart_UnknownStore(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txStoreRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().StoreRepo().Return(txStoreRepo)
			txStoreRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

			return fn(mockFactory)
		})

	hearts, err := favorites.ToggleHeart(ctx, userID, storeID)
	require.Error(t, err)
	assert.Nil(t, hearts)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestFavoriteService_ToggleHeart_RequiresUser(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	_, err := favorites.ToggleHeart(context.Background(), uuid.Nil, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestFavoriteService_ToggleHeart_StorageError(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	ctx := context.Background()
	txErr := errors.New("deadlock detected")

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	_, err := favorites.ToggleHeart(ctx, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, txErr))
}

func TestFavoriteService_Hearts(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	ctx := context.Background()
	userID := uuid.New()
	hearted := []uuid.UUID{uuid.New()}

	mockFavoriteRepo.EXPECT().ListStoreIDs(ctx, userID).Return(hearted, nil)

	hearts, err := favorites.Hearts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, hearted, hearts)
}

func TestFavoriteService_ListHearted(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	ctx := context.Background()
	userID := uuid.New()
	stores := testStores(2)
	hearted := []uuid.UUID{stores[0].ID, stores[1].ID}

	mockFavoriteRepo.EXPECT().ListStoreIDs(ctx, userID).Return(hearted, nil)
	mockStoreRepo.EXPECT().FindByIDs(ctx, hearted).Return(stores, nil)

	result, err := favorites.ListHearted(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stores, result)
}

func TestFavoriteService_ListHearted_NoHearts(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favorites := NewFavoriteService(mockTxManager, mockStoreRepo, mockFavoriteRepo, newTestPublisher(t), slog.Default())

	ctx := context.Background()
	userID := uuid.New()

	mockFavoriteRepo.EXPECT().ListStoreIDs(ctx, userID).Return([]uuid.UUID{}, nil)

	result, err := favorites.ListHearted(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, result)
}
