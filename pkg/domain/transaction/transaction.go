// Package transaction defines the unit of reconciliation.
//
// A Transaction is created Pending by payment initiation and is only ever
// moved forward: to Reconciled by the reconciler, or to Flagged when the
// gateway's verified data disagrees with what was recorded. Rows are never
// deleted so settlement history stays auditable.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/google/uuid"
)

// Type is the direction of the ledger effect.
type Type string

const (
	// TypeCredit moves funds into the recipient account.
	TypeCredit Type = "credit"
	// TypeDebit moves funds out of the sender account.
	TypeDebit Type = "debit"
)

// IsValid reports whether t is a known transaction type.
func (t Type) IsValid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Generated payment references carry one of these prefixes.
const (
	ChargeReferencePrefix   = "chg_"
	TransferReferencePrefix = "trf_"
)

// IsTransferReference reports whether ref belongs to an outbound transfer.
// Every transfer reference carries TransferReferencePrefix.
func IsTransferReference(ref string) bool {
	return strings.HasPrefix(ref, TransferReferencePrefix)
}

// State is derived from the reconciliation flags.
type State string

const (
	StatePending    State = "pending"
	StateReconciled State = "reconciled"
	StateFlagged    State = "flagged"
)

// Party identifies one side of a transfer.
type Party struct {
	AccountNumber string
	Name          string
	BankName      string
}

// Transaction represents a payment awaiting or having completed settlement.
type Transaction struct {
	PublicID           uuid.UUID
	PaymentReferenceID string
	Amount             money.Money
	Type               Type
	Channel            string
	PaymentService     string
	PayerID            string
	Purpose            string
	Sender             Party
	Recipient          Party

	IsReconciled bool
	IsFlagged    bool
	Notes        string
	ReconciledAt *time.Time

	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

// NewParams holds the fields required to record a pending transaction.
type NewParams struct {
	PaymentReferenceID string
	Amount             money.Money
	Type               Type
	Channel            string
	PaymentService     string
	PayerID            string
	Purpose            string
	Sender             Party
	Recipient          Party
	Actor              string
}

// New creates a Pending transaction.
// Invariants enforced:
//   - reference and gateway name are non-empty.
//   - amount is strictly positive.
//   - type is credit or debit.
func New(p NewParams) (*Transaction, error) {
	ref := strings.TrimSpace(p.PaymentReferenceID)
	if ref == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.PaymentService) == "" {
		return nil, fmt.Errorf("%w: payment service is required", domain.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, p.Type)
	}
	now := time.Now().UTC()
	return &Transaction{
		PublicID:           uuid.New(),
		PaymentReferenceID: ref,
		Amount:             p.Amount,
		Type:               p.Type,
		Channel:            p.Channel,
		PaymentService:     p.PaymentService,
		PayerID:            p.PayerID,
		Purpose:            p.Purpose,
		Sender:             p.Sender,
		Recipient:          p.Recipient,
		CreatedAt:          now,
		CreatedBy:          p.Actor,
		ModifiedAt:         now,
		ModifiedBy:         p.Actor,
	}, nil
}

// State returns the lifecycle state. Reconciled wins over Flagged.
func (t *Transaction) State() State {
	switch {
	case t.IsReconciled:
		return StateReconciled
	case t.IsFlagged:
		return StateFlagged
	default:
		return StatePending
	}
}

// LedgerAccount is the account number the ledger effect applies to.
func (t *Transaction) LedgerAccount() string {
	if t.Type == TypeDebit {
		return t.Sender.AccountNumber
	}
	return t.Recipient.AccountNumber
}

// SignedAmount is the balance delta of the ledger effect.
func (t *Transaction) SignedAmount() money.Money {
	if t.Type == TypeDebit {
		return t.Amount.Negate()
	}
	return t.Amount
}

// AppendNote appends note to existing notes, one per line.
func AppendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
