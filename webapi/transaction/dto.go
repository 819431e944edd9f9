package transaction

import (
	"time"

	"github.com/amirasaad/payrecon/pkg/domain/transaction"
)

// PartyDTO is one side of a transfer.
type PartyDTO struct {
	AccountNumber string `json:"account_number,omitempty"`
	Name          string `json:"name,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
}

// TransactionDTO is the API view of a transaction.
type TransactionDTO struct {
	ID             string     `json:"id"`
	Reference      string     `json:"reference"`
	Gateway        string     `json:"gateway"`
	Type           string     `json:"type"`
	Amount         int64      `json:"amount"`
	Currency       string     `json:"currency"`
	Channel        string     `json:"channel,omitempty"`
	PayerID        string     `json:"payer_id,omitempty"`
	Purpose        string     `json:"purpose,omitempty"`
	Sender         PartyDTO   `json:"sender"`
	Recipient      PartyDTO   `json:"recipient"`
	State          string     `json:"state"`
	IsReconciled   bool       `json:"is_reconciled"`
	IsFlagged      bool       `json:"is_flagged"`
	Notes          string     `json:"notes,omitempty"`
	ReconciledAt   *time.Time `json:"reconciled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastModifiedAt time.Time  `json:"modified_at"`
}

// ReconcileDTO is the result of an operator-triggered verification.
type ReconcileDTO struct {
	Outcome     string          `json:"outcome"`
	Reason      string          `json:"reason,omitempty"`
	Transaction *TransactionDTO `json:"transaction,omitempty"`
}

// ToDTO maps a domain transaction.
func ToDTO(tx *transaction.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:             tx.PublicID.String(),
		Reference:      tx.PaymentReferenceID,
		Gateway:        tx.PaymentService,
		Type:           string(tx.Type),
		Amount:         int64(tx.Amount.Amount()),
		Currency:       tx.Amount.Currency().String(),
		Channel:        tx.Channel,
		PayerID:        tx.PayerID,
		Purpose:        tx.Purpose,
		Sender:         PartyDTO(tx.Sender),
		Recipient:      PartyDTO(tx.Recipient),
		State:          string(tx.State()),
		IsReconciled:   tx.IsReconciled,
		IsFlagged:      tx.IsFlagged,
		Notes:          tx.Notes,
		ReconciledAt:   tx.ReconciledAt,
		CreatedAt:      tx.CreatedAt,
		LastModifiedAt: tx.ModifiedAt,
	}
}
