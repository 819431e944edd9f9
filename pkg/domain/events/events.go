package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything that can be emitted on the event bus.
type Event interface {
	Type() string
}

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeTransactionReconciled EventType = "Transaction.Reconciled"
	EventTypeTransactionFlagged    EventType = "Transaction.Flagged"
	EventTypeVerificationExhausted EventType = "Verification.Exhausted"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Source names the path that triggered a reconciliation attempt.
type Source string

const (
	SourceWebhook Source = "webhook"
	SourceSweep   Source = "sweep"
	SourceManual  Source = "manual"
)

// TransactionReconciled is emitted after a settlement commits.
type TransactionReconciled struct {
	ID        uuid.UUID `json:"id"` // event id
	PublicID  uuid.UUID `json:"publicId"`
	Reference string    `json:"reference"`
	Gateway   string    `json:"gateway"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Source    Source    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionFlagged is emitted when settlement is withheld for manual review.
type TransactionFlagged struct {
	ID               uuid.UUID `json:"id"`
	PublicID         uuid.UUID `json:"publicId"`
	Reference        string    `json:"reference"`
	Gateway          string    `json:"gateway"`
	Reason           string    `json:"reason"`
	RecordedAmount   int64     `json:"recordedAmount"`
	RecordedCurrency string    `json:"recordedCurrency"`
	VerifiedAmount   int64     `json:"verifiedAmount"`
	VerifiedCurrency string    `json:"verifiedCurrency"`
	Source           Source    `json:"source"`
	Timestamp        time.Time `json:"timestamp"`
}

// VerificationExhausted is the operational alert raised when the gateway
// stayed unavailable for the whole retry budget. The transaction stays
// Pending for the next sweep.
type VerificationExhausted struct {
	ID        uuid.UUID `json:"id"` // event id
	Reference string    `json:"reference"`
	Gateway   string    `json:"gateway"`
	Error     string    `json:"error"`
	Source    Source    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

func (e TransactionReconciled) Type() string { return EventTypeTransactionReconciled.String() }
func (e TransactionFlagged) Type() string    { return EventTypeTransactionFlagged.String() }
func (e VerificationExhausted) Type() string { return EventTypeVerificationExhausted.String() }

// Factories returns constructors used by serialising buses to decode payloads by type.
func Factories() map[string]func() Event {
	return map[string]func() Event{
		EventTypeTransactionReconciled.String(): func() Event { return &TransactionReconciled{} },
		EventTypeTransactionFlagged.String():    func() Event { return &TransactionFlagged{} },
		EventTypeVerificationExhausted.String(): func() Event { return &VerificationExhausted{} },
	}
}
