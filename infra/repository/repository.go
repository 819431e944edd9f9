package repository

import (
	"context"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a gorm-backed transaction store.
func NewTransactionStore(db *gorm.DB) repository.TransactionStore {
	return &transactionStore{db: db}
}

// Create inserts a Pending transaction.
func (r *transactionStore) Create(ctx context.Context, tx *transaction.Transaction) error {
	row := toModel(tx)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

// FindByReference implements repository.TransactionStore.
func (r *transactionStore) FindByReference(ctx context.Context, reference string) (*transaction.Transaction, error) {
	var row Transaction
	err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("payment_reference_id = ?", reference).
			First(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomain(&row)
}

// FindByPublicID implements repository.TransactionStore.
func (r *transactionStore) FindByPublicID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	var row Transaction
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Where("public_id = ?", id).First(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomain(&row)
}

// TryMarkReconciled is one conditional UPDATE. The WHERE clause carries the
// whole precondition, so the database decides the single winner.
func (r *transactionStore) TryMarkReconciled(ctx context.Context, reference string) (bool, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("payment_reference_id = ? AND is_reconciled = ? AND is_flagged = ?", reference, false, false).
		Updates(map[string]any{
			"is_reconciled": true,
			"reconciled_at": now,
			"modified_at":   now,
		})
	if result.Error != nil {
		return false, MapGormErrorToDomain(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Flag marks an unreconciled row for review and appends note.
func (r *transactionStore) Flag(ctx context.Context, reference, note string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("payment_reference_id = ? AND is_reconciled = ?", reference, false).
		Updates(map[string]any{
			"is_flagged":  true,
			"notes":       gorm.Expr("CASE WHEN notes = '' THEN ? ELSE notes || ? END", note, "\n"+note),
			"modified_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, MapGormErrorToDomain(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListPending returns unreconciled, unflagged rows created before olderThan, oldest first.
func (r *transactionStore) ListPending(
	ctx context.Context,
	olderThan time.Time,
	limit int,
) ([]*transaction.Transaction, error) {
	var rows []Transaction
	q := r.db.WithContext(ctx).
		Where("is_reconciled = ? AND is_flagged = ? AND created_at < ?", false, false, olderThan).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
