package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of transaction.Transaction.
// payment_reference_id is unique; is_reconciled is only written by the
// conditional update in TryMarkReconciled.
type Transaction struct {
	ID                 uint      `gorm:"primaryKey"`
	PublicID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PaymentReferenceID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Amount             int64     `gorm:"not null"`
	Currency           string    `gorm:"type:varchar(3);not null"`
	Type               string    `gorm:"type:varchar(16);not null"`
	Channel            string    `gorm:"type:varchar(64)"`
	PaymentService     string    `gorm:"type:varchar(64);not null"`
	PayerID            string    `gorm:"type:varchar(128)"`
	Purpose            string    `gorm:"type:varchar(255)"`

	SenderAccountNumber    string `gorm:"type:varchar(32)"`
	SenderName             string `gorm:"type:varchar(255)"`
	SenderBankName         string `gorm:"type:varchar(255)"`
	RecipientAccountNumber string `gorm:"type:varchar(32)"`
	RecipientName          string `gorm:"type:varchar(255)"`
	RecipientBankName      string `gorm:"type:varchar(255)"`

	IsReconciled bool   `gorm:"not null;index:idx_transactions_pending,priority:1"`
	IsFlagged    bool   `gorm:"not null;index:idx_transactions_pending,priority:2"`
	Notes        string `gorm:"type:text;not null"`
	ReconciledAt *time.Time

	CreatedAt  time.Time `gorm:"not null;index:idx_transactions_pending,priority:3"`
	CreatedBy  string    `gorm:"type:varchar(128)"`
	ModifiedAt time.Time `gorm:"not null"`
	ModifiedBy string    `gorm:"type:varchar(128)"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// Account holds a running balance in major units.
type Account struct {
	ID            uint            `gorm:"primaryKey"`
	AccountNumber string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// LedgerEntry records one applied ledger effect. payment_reference_id is
// unique so a second apply for the same settlement fails.
type LedgerEntry struct {
	ID                 uint      `gorm:"primaryKey"`
	PaymentReferenceID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	TransactionID      uuid.UUID `gorm:"type:uuid;not null"`
	AccountNumber      string    `gorm:"type:varchar(32)"`
	// Amount is signed, in minor units.
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the LedgerEntry model.
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// Models lists every table, for AutoMigrate in tests and development.
func Models() []any {
	return []any{&Transaction{}, &Account{}, &LedgerEntry{}}
}
