package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
)

// Reconciliation errors
var (
	// ErrAlreadyReconciled reports that the reference was settled earlier.
	// It is benign and surfaced to gateways as success.
	ErrAlreadyReconciled = errors.New("transaction already reconciled")
	// ErrAmountMismatch is returned when the verified amount or currency
	// differs from the recorded one. Settlement is withheld.
	ErrAmountMismatch = errors.New("verified amount does not match recorded amount")
	// ErrFlagged is returned when a transaction awaits manual review.
	ErrFlagged = errors.New("transaction flagged for manual review")
	// ErrGatewayUnavailable is a transient gateway failure (network, 5xx, throttling).
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayRejected is a permanent gateway refusal such as bad credentials.
	ErrGatewayRejected = errors.New("payment gateway rejected request")
	// ErrInvalidSignature is returned when a webhook signature does not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrUnknownGateway is returned when no gateway is registered under a name.
	ErrUnknownGateway = errors.New("unknown payment gateway")
)
