package repository

import "context"

// TransactionManager lets a use case group writes atomically without
// knowing about the database driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories that all share the caller's transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRentRepository() RentRepository
	NewServiceProfileRepository() ServiceProfileRepository
	NewOwnerLinkRepository() OwnerLinkRepository
}
