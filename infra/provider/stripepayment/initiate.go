package stripepayment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/stripe/stripe-go/v82"
)

// InitiatePayment creates a PaymentIntent. The PaymentIntent id becomes the reference.
func (s *StripePaymentProvider) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	log := s.logger.With(
		"handler", "stripe.InitiatePayment",
		"reference", params.Reference,
		"amount", params.Amount.String(),
	)

	piParams := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(params.Amount.Amount()),
		Currency: stripe.String(strings.ToLower(string(params.Amount.Currency()))),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if params.Email != "" {
		piParams.ReceiptEmail = stripe.String(params.Email)
	}
	piParams.AddMetadata("reference", params.Reference)
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}
	piParams.SetIdempotencyKey(params.Reference)

	pi, err := s.client.V1PaymentIntents.Create(ctx, piParams)
	if err != nil {
		log.Error("failed to create payment intent", "error", err)
		return nil, fmt.Errorf("create payment intent: %w", classifyCreate(err))
	}

	log.Info("payment intent created", "payment_intent_id", pi.ID)
	return &payment.InitiatePaymentResponse{
		Reference:  pi.ID,
		AccessCode: pi.ClientSecret,
	}, nil
}

// InitiateTransfer moves funds to a connected account. Recipient is the account id.
func (s *StripePaymentProvider) InitiateTransfer(
	ctx context.Context,
	params *payment.InitiateTransferParams,
) (*payment.InitiatePaymentResponse, error) {
	log := s.logger.With(
		"handler", "stripe.InitiateTransfer",
		"reference", params.Reference,
		"destination", params.Recipient,
	)

	transferParams := &stripe.TransferCreateParams{
		Amount:        stripe.Int64(params.Amount.Amount()),
		Currency:      stripe.String(strings.ToLower(string(params.Amount.Currency()))),
		Destination:   stripe.String(params.Recipient),
		TransferGroup: stripe.String(params.Reference),
	}
	if params.Reason != "" {
		transferParams.Description = stripe.String(params.Reason)
	}
	transferParams.AddMetadata("reference", params.Reference)
	transferParams.SetIdempotencyKey(params.Reference)

	transfer, err := s.client.V1Transfers.Create(ctx, transferParams)
	if err != nil {
		log.Error("failed to create transfer", "error", err)
		return nil, fmt.Errorf("create transfer: %w", classifyCreate(err))
	}

	log.Info("transfer created", "transfer_id", transfer.ID)
	return &payment.InitiatePaymentResponse{
		Reference: transfer.ID,
		Channel:   "transfer",
	}, nil
}
