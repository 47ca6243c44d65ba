// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager runs catalog units of work on the primary.
type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) StoreRepo() repository.StoreRepository {
	return NewStoreRepository(f.tx)
}

func (f *txRepositories) FavoriteRepo() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a transaction pinned to the primary. A replica never
// sees the read-then-write sequences of slug generation or heart toggling.
// fn's own error is returned untouched so callers can classify it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Transaction(func(tx *gorm.DB) error {
			fnErr = fn(&txRepositories{tx: tx})

			return fnErr
		})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		// Begin or commit failed
		return domainerrors.NewDatabaseExecuteError(err, "catalog transaction failed")
	}
}
