package mongo

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	mongod "go.mongodb.org/mongo-driver/v2/mongo"
)

// sessionTransactionManager implements the domain's TransactionManager interface
// with MongoDB sessions. Transactions need a replica set or sharded cluster.
type sessionTransactionManager struct {
	db *mongod.Database
}

// sessionRepositoryFactory hands out repositories bound to one session.
type sessionRepositoryFactory struct {
	db      *mongod.Database
	session *mongod.Session
}

// StoreRepo creates a new store repository instance bound to the session.
func (f *sessionRepositoryFactory) StoreRepo() repository.StoreRepository {
	return newStoreRepository(f.db, f.session)
}

// FavoriteRepo creates a new favorite repository instance bound to the session.
func (f *sessionRepositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	return newFavoriteRepository(f.db, f.session)
}

// NewTransactionManager is the constructor for sessionTransactionManager.
func NewTransactionManager(db *mongod.Database) repository.TransactionManager {
	return &sessionTransactionManager{db: db}
}

// Execute runs fn inside a MongoDB transaction. The driver retries the whole
// callback on transient transaction errors, so fn must not have side effects
// outside the database.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}
	defer session.EndSession(ctx)

	factory := &sessionRepositoryFactory{db: tm.db, session: session}

	_, err = session.WithTransaction(ctx, func(_ context.Context) (any, error) {
		return nil, fn(factory)
	})

	return err
}
