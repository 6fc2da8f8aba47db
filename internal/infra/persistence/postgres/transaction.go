package postgres

import (
	"context"

	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. An error or panic from fn rolls back;
// fn's error is returned unchanged. A failed begin or commit is reported as
// TRANSACTION_FAILED.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Join(domainerrors.ErrTransactionFailed, errors.WithStack(err))
	}

	return err
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewRentRepository() repository.RentRepository {
	return NewRentRepository(r.tx)
}

func (r txRepositories) NewServiceProfileRepository() repository.ServiceProfileRepository {
	return NewServiceProfileRepository(r.tx)
}

func (r txRepositories) NewOwnerLinkRepository() repository.OwnerLinkRepository {
	return NewOwnerLinkRepository(r.tx)
}
