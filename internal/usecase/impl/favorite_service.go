package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	storeRepo    repository.StoreRepository
	favoriteRepo repository.FavoriteRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	favoriteRepo repository.FavoriteRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    txManager,
		storeRepo:    storeRepo,
		favoriteRepo: favoriteRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleHeart flips the store in the user's heart set atomically.
func (srv *favoriteService) ToggleHeart(ctx context.Context, userID, storeID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var hearts []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.StoreRepo().FindByID(ctx, storeID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "cannot heart unknown store")
			}

			return errors.Wrap(err, "failed to find store")
		}

		var err error
		hearts, err = repoFactory.FavoriteRepo().Toggle(ctx, userID, storeID)
		if err != nil {
			return translateStoreError(err, "failed to toggle heart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Heart toggled",
		slog.Any("user_id", userID),
		slog.Any("store_id", storeID),
		slog.Int("hearts", len(hearts)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:    service.EventHeartToggled,
		StoreID: storeID.String(),
		UserID:  userID.String(),
		Hearted: slices.Contains(hearts, storeID),
	})

	return hearts, nil
}

// Hearts returns the ids of the stores the user has hearted.
func (srv *favoriteService) Hearts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	hearts, err := srv.favoriteRepo.ListStoreIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hearts")
	}

	return hearts, nil
}

// ListHearted resolves the user's hearts to stores. Stores deleted since
// being hearted are skipped.
func (srv *favoriteService) ListHearted(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error) {
	hearts, err := srv.Hearts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(hearts) == 0 {
		return []*entity.Store{}, nil
	}

	stores, err := srv.storeRepo.FindByIDs(ctx, hearts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find hearted stores")
	}

	return stores, nil
}
