// Package memstore is an in-memory TransactionStore, LedgerEffect and
// UnitOfWork for service tests. Do serializes units of work and rolls back
// the whole store when fn fails.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/google/uuid"
)

// Store holds transactions and ledger applications.
type Store struct {
	mu      sync.Mutex
	txs     map[string]transaction.Transaction
	applied map[string]int

	// ApplyErr, when set, fails every ledger apply.
	ApplyErr error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		txs:     make(map[string]transaction.Transaction),
		applied: make(map[string]int),
	}
}

// Seed inserts transactions directly.
func (s *Store) Seed(txs ...*transaction.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		s.txs[tx.PaymentReferenceID] = *tx
	}
}

// Get returns a copy of the stored row, or nil.
func (s *Store) Get(reference string) *transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[reference]
	if !ok {
		return nil
	}
	return &tx
}

// Applied returns how many ledger effects were committed for reference.
func (s *Store) Applied(reference string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied[reference]
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs)
}

// UnitOfWork returns a unit of work over s.
func (s *Store) UnitOfWork() repository.UnitOfWork {
	return &uow{s: s}
}

type uow struct {
	s    *Store
	inTx bool
}

func (u *uow) Do(_ context.Context, fn func(repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	txs := make(map[string]transaction.Transaction, len(u.s.txs))
	for k, v := range u.s.txs {
		txs[k] = v
	}
	applied := make(map[string]int, len(u.s.applied))
	for k, v := range u.s.applied {
		applied[k] = v
	}
	if err := fn(&uow{s: u.s, inTx: true}); err != nil {
		u.s.txs, u.s.applied = txs, applied
		return err
	}
	return nil
}

func (u *uow) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.TransactionStore)(nil)).Elem():
		return u.TransactionStore()
	case reflect.TypeOf((*repository.LedgerEffect)(nil)).Elem():
		return u.LedgerEffect()
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

func (u *uow) TransactionStore() (repository.TransactionStore, error) { return (*txStore)(u), nil }
func (u *uow) LedgerEffect() (repository.LedgerEffect, error)         { return (*ledger)(u), nil }

func (u *uow) lock() func() {
	if u.inTx {
		return func() {}
	}
	u.s.mu.Lock()
	return u.s.mu.Unlock
}

type txStore uow

func (t *txStore) u() *uow { return (*uow)(t) }

func (t *txStore) Create(_ context.Context, tx *transaction.Transaction) error {
	defer t.u().lock()()
	if _, ok := t.s.txs[tx.PaymentReferenceID]; ok {
		return domain.ErrAlreadyExists
	}
	t.s.txs[tx.PaymentReferenceID] = *tx
	return nil
}

func (t *txStore) FindByReference(_ context.Context, reference string) (*transaction.Transaction, error) {
	defer t.u().lock()()
	tx, ok := t.s.txs[reference]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tx, nil
}

func (t *txStore) FindByPublicID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	defer t.u().lock()()
	for _, tx := range t.s.txs {
		if tx.PublicID == id {
			return &tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (t *txStore) TryMarkReconciled(_ context.Context, reference string) (bool, error) {
	defer t.u().lock()()
	tx, ok := t.s.txs[reference]
	if !ok || tx.IsReconciled || tx.IsFlagged {
		return false, nil
	}
	now := time.Now().UTC()
	tx.IsReconciled = true
	tx.ReconciledAt = &now
	tx.ModifiedAt = now
	t.s.txs[reference] = tx
	return true, nil
}

func (t *txStore) Flag(_ context.Context, reference, note string) (bool, error) {
	defer t.u().lock()()
	tx, ok := t.s.txs[reference]
	if !ok || tx.IsReconciled {
		return false, nil
	}
	tx.IsFlagged = true
	tx.Notes = transaction.AppendNote(tx.Notes, note)
	tx.ModifiedAt = time.Now().UTC()
	t.s.txs[reference] = tx
	return true, nil
}

func (t *txStore) ListPending(_ context.Context, olderThan time.Time, limit int) ([]*transaction.Transaction, error) {
	defer t.u().lock()()
	out := make([]*transaction.Transaction, 0)
	for _, tx := range t.s.txs {
		if tx.IsReconciled || tx.IsFlagged || !tx.CreatedAt.Before(olderThan) {
			continue
		}
		tx := tx
		out = append(out, &tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type ledger uow

func (l *ledger) Apply(_ context.Context, tx *transaction.Transaction) error {
	u := (*uow)(l)
	defer u.lock()()
	if l.s.ApplyErr != nil {
		return l.s.ApplyErr
	}
	if l.s.applied[tx.PaymentReferenceID] > 0 {
		return errors.Join(domain.ErrAlreadyExists, fmt.Errorf("ledger effect for %q", tx.PaymentReferenceID))
	}
	l.s.applied[tx.PaymentReferenceID]++
	return nil
}
