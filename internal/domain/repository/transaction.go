package repository

import "context"

// TransactionManager runs a catalog unit of work atomically. Store writes use
// it to keep slug generation and the insert together, heart toggles to keep
// the existence check and the flip together.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn's error
	// is returned as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction
type RepositoryFactory interface {
	StoreRepo() StoreRepository
	FavoriteRepo() FavoriteRepository
}
