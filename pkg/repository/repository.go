package repository

import (
	"context"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/google/uuid"
)

// TransactionStore defines persistence for reconcilable transactions.
//
// TryMarkReconciled is the only path that may set IsReconciled. It must be
// a single conditional write enforced by the storage layer, so concurrent
// callers in any number of processes observe exactly one winner.
type TransactionStore interface {
	// Create inserts a new Pending transaction. A duplicate reference
	// returns domain.ErrAlreadyExists.
	Create(ctx context.Context, tx *transaction.Transaction) error

	// FindByReference returns domain.ErrNotFound for an unknown reference.
	FindByReference(ctx context.Context, reference string) (*transaction.Transaction, error)

	// FindByPublicID returns domain.ErrNotFound for an unknown id.
	FindByPublicID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)

	// TryMarkReconciled flips IsReconciled false->true for an unflagged row.
	// It reports true iff this call performed the transition.
	TryMarkReconciled(ctx context.Context, reference string) (bool, error)

	// Flag marks an unreconciled row for manual review and appends note.
	// It reports true iff a row was changed.
	Flag(ctx context.Context, reference, note string) (bool, error)

	// ListPending lists unreconciled, unflagged rows created before olderThan, oldest first.
	ListPending(ctx context.Context, olderThan time.Time, limit int) ([]*transaction.Transaction, error)
}

// LedgerEffect applies the balance-affecting side effect of a settled transaction.
// Callers guarantee at most one call per transaction; implementations still
// reject a second apply for the same reference.
type LedgerEffect interface {
	Apply(ctx context.Context, tx *transaction.Transaction) error
}
