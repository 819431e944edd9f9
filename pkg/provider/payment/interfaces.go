package payment

import (
	"context"

	"github.com/amirasaad/payrecon/pkg/domain/gateway"
)

// Verifier asks the gateway for the authoritative state of a reference.
//
// Implementations classify failures using the domain sentinels:
// domain.ErrNotFound for an unknown reference, domain.ErrGatewayRejected
// for auth failures, domain.ErrGatewayUnavailable for transport errors,
// 5xx and rate limiting. Only the last is retried by callers.
type Verifier interface {
	Verify(ctx context.Context, reference string) (*gateway.VerificationResult, error)
}

// Initiator creates outbound charges and transfers.
type Initiator interface {
	InitiatePayment(
		ctx context.Context,
		params *InitiatePaymentParams,
	) (*InitiatePaymentResponse, error)

	// InitiateTransfer sends funds to a recipient held at the gateway.
	InitiateTransfer(
		ctx context.Context,
		params *InitiateTransferParams,
	) (*InitiatePaymentResponse, error)
}

// WebhookParser authenticates and normalizes an inbound notification.
type WebhookParser interface {
	// SignatureHeader names the HTTP header carrying the signature.
	SignatureHeader() string

	// ParseWebhook returns domain.ErrInvalidSignature when the signature does
	// not match, and a domain.ErrValidation wrap when the body is malformed.
	// A nil notification with a nil error means the event is not relevant.
	ParseWebhook(payload []byte, signature string) (*gateway.Notification, error)
}

// Gateway is a payment gateway integration.
type Gateway interface {
	Name() string
	Verifier
	Initiator
	WebhookParser
}
