// Package persistence selects and wires the storage driver backing the catalog.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the repository implementations of the configured driver
type Repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	Stores    repository.StoreRepository
	Reviews   repository.ReviewRepository
	Favorites repository.FavoriteRepository
}

// NewRepositories connects the driver named by storage.driver and builds its repositories
func NewRepositories(params Params) (Repositories, error) {
	logger := params.Logger
	driver := params.Config.Storage.Driver

	switch driver {
	case config.StorageDriverPostgres:
		logger.Info("Using PostgreSQL storage")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager: postgres.NewTransactionManager(db),
			Stores:    postgres.NewStoreRepository(db),
			Reviews:   postgres.NewReviewRepository(db),
			Favorites: postgres.NewFavoriteRepository(db),
		}, nil

	case config.StorageDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB storage", slog.String("database", db.Name()))

		return Repositories{
			TxManager: mongo.NewTransactionManager(db),
			Stores:    mongo.NewStoreRepository(db),
			Reviews:   mongo.NewReviewRepository(db),
			Favorites: mongo.NewFavoriteRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
