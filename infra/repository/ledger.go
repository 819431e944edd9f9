package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledger struct {
	db *gorm.DB
}

// NewLedger creates the ledger effect. Use it inside UnitOfWork.Do so the
// entry, the balance change and the reconciled flag commit together.
func NewLedger(db *gorm.DB) repository.LedgerEffect {
	return &ledger{db: db}
}

// Apply records the entry and adjusts the owning account balance.
// A second apply for the same reference fails with domain.ErrAlreadyExists.
func (l *ledger) Apply(ctx context.Context, tx *transaction.Transaction) error {
	delta := tx.SignedAmount()
	entry := &LedgerEntry{
		PaymentReferenceID: tx.PaymentReferenceID,
		TransactionID:      tx.PublicID,
		AccountNumber:      tx.LedgerAccount(),
		Amount:             delta.Amount(),
		Currency:           delta.Currency().String(),
	}
	db := l.db.WithContext(ctx)
	if err := WrapError(func() error { return db.Create(entry).Error }); err != nil {
		return fmt.Errorf("ledger entry for %q: %w", tx.PaymentReferenceID, err)
	}

	if entry.AccountNumber == "" {
		return nil
	}
	account := &Account{
		AccountNumber: entry.AccountNumber,
		Currency:      entry.Currency,
		Balance:       delta.Decimal(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_number"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance":    gorm.Expr("accounts.balance + ?", delta.Decimal()),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(account).Error
	if err != nil {
		return fmt.Errorf("adjust balance of %s: %w", entry.AccountNumber, MapGormErrorToDomain(err))
	}
	return nil
}
