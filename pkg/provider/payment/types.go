package payment

import (
	"github.com/amirasaad/payrecon/pkg/money"
)

// InitiatePaymentParams holds the parameters for the InitiatePayment method.
type InitiatePaymentParams struct {
	// Reference is generated by us and echoed back by the gateway.
	Reference   string
	Amount      money.Money
	Email       string
	CallbackURL string
	Metadata    map[string]string
}

// InitiateTransferParams holds the parameters for the InitiateTransfer method.
type InitiateTransferParams struct {
	Reference string
	Amount    money.Money
	// Recipient is the gateway-side recipient code.
	Recipient string
	Reason    string
}

// InitiatePaymentResponse is what the gateway returns on creation.
type InitiatePaymentResponse struct {
	// Reference may differ from the requested one when the gateway assigns its own.
	Reference string
	// AuthorizationURL is where the payer completes a charge, empty for transfers.
	AuthorizationURL string
	AccessCode       string
	Channel          string
}
