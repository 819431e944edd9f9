// Package gateway holds the value objects exchanged with external payment gateways.
package gateway

import (
	"encoding/json"
	"time"

	"github.com/amirasaad/payrecon/pkg/money"
)

// Status is the gateway-reported settlement status of a reference.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

// VerificationResult is the authoritative answer of a gateway verify call.
// It is never persisted; it only drives a reconciliation decision. Only
// Status and Amount are decision-relevant, everything else is carried for audit.
type VerificationResult struct {
	Reference       string
	Status          Status
	Amount          money.Money
	Channel         string
	PaidAt          *time.Time
	GatewayResponse string
	// Metadata holds gateway-specific objects (authorization, customer, log, ...)
	// passed through unchanged.
	Metadata map[string]json.RawMessage
}

// Notification is a parsed and normalised gateway push notification.
// Its amount and status are self-reported and never trusted for settlement.
type Notification struct {
	Gateway   string          `json:"gateway" validate:"required"`
	EventID   string          `json:"eventId,omitempty"`
	Reference string          `json:"reference" validate:"required,max=128"`
	Amount    int64           `json:"amount" validate:"gte=0"`
	Currency  string          `json:"currency" validate:"required,len=3,alpha"`
	Status    Status          `json:"status" validate:"required,oneof=success failed pending"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// Money returns the self-reported amount of the notification.
func (n *Notification) Money() (money.Money, error) {
	return money.New(n.Amount, n.Currency)
}
