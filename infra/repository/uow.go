package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/payrecon/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
//
// Repositories obtained inside Do share its *gorm.DB transaction, which is
// what makes the reconciled flag flip and the ledger effect commit or roll
// back together. Outside Do they run on the plain connection.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.TransactionStore)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionStore(db) },
			reflect.TypeOf((*repository.LedgerEffect)(nil)).Elem():     func(db *gorm.DB) any { return NewLedger(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Nested calls join the outer transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns a repository bound to the current transaction, or to
// the base connection outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// TransactionStore returns the transaction store for this unit of work.
func (u *UoW) TransactionStore() (repository.TransactionStore, error) {
	repo, err := u.GetRepository(reflect.TypeOf((*repository.TransactionStore)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repo.(repository.TransactionStore), nil
}

// LedgerEffect returns the ledger effect for this unit of work.
func (u *UoW) LedgerEffect() (repository.LedgerEffect, error) {
	repo, err := u.GetRepository(reflect.TypeOf((*repository.LedgerEffect)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repo.(repository.LedgerEffect), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
