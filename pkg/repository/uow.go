package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs the given function in a transaction boundary, providing a UnitOfWork for repository access.
// Repositories obtained from the inner UnitOfWork share its database transaction, which is what
// pairs the reconciled flag flip with the ledger effect: both commit or neither does.
// Outside Do, repositories run against the plain connection.
//
// Example usage:
//
//	err := uow.Do(ctx, func(uow UnitOfWork) error {
//		store, err := uow.TransactionStore()
//		...
//	})
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	// Type-safe repository access methods (convenience methods)
	TransactionStore() (TransactionStore, error)
	LedgerEffect() (LedgerEffect, error)
}
