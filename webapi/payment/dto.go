package payment

import transactionweb "github.com/amirasaad/payrecon/webapi/transaction"

// InitiateResponseDTO is returned after a gateway accepted the request.
type InitiateResponseDTO struct {
	Transaction      *transactionweb.TransactionDTO `json:"transaction"`
	AuthorizationURL string                         `json:"authorization_url,omitempty"`
	AccessCode       string                         `json:"access_code,omitempty"`
}
