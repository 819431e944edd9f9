package paystack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amirasaad/payrecon/pkg/provider/payment"
)

// InitiatePayment starts a hosted checkout for a charge.
func (g *Gateway) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	log := g.logger.With(
		"handler", "paystack.InitiatePayment",
		"reference", params.Reference,
		"amount", params.Amount.String(),
	)

	var data initializeData
	err := g.do(ctx, http.MethodPost, "/transaction/initialize", &initializeRequest{
		Email:       params.Email,
		Amount:      params.Amount.Amount(),
		Currency:    string(params.Amount.Currency()),
		Reference:   params.Reference,
		CallbackURL: params.CallbackURL,
		Metadata:    params.Metadata,
	}, &data)
	if err != nil {
		log.Error("failed to initialize transaction", "error", err)
		return nil, fmt.Errorf("initialize %q: %w", params.Reference, err)
	}

	log.Info("transaction initialized", "access_code", data.AccessCode)
	ref := data.Reference
	if ref == "" {
		ref = params.Reference
	}
	return &payment.InitiatePaymentResponse{
		Reference:        ref,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
	}, nil
}

// InitiateTransfer sends funds from the Paystack balance to a recipient code.
func (g *Gateway) InitiateTransfer(
	ctx context.Context,
	params *payment.InitiateTransferParams,
) (*payment.InitiatePaymentResponse, error) {
	log := g.logger.With(
		"handler", "paystack.InitiateTransfer",
		"reference", params.Reference,
		"recipient", params.Recipient,
	)

	var data transferData
	err := g.do(ctx, http.MethodPost, "/transfer", &transferRequest{
		Source:    "balance",
		Amount:    params.Amount.Amount(),
		Currency:  string(params.Amount.Currency()),
		Recipient: params.Recipient,
		Reference: params.Reference,
		Reason:    params.Reason,
	}, &data)
	if err != nil {
		log.Error("failed to initiate transfer", "error", err)
		return nil, fmt.Errorf("transfer %q: %w", params.Reference, err)
	}

	log.Info("transfer queued", "transfer_code", data.TransferCode, "status", data.Status)
	ref := data.Reference
	if ref == "" {
		ref = params.Reference
	}
	return &payment.InitiatePaymentResponse{
		Reference:  ref,
		AccessCode: data.TransferCode,
	}, nil
}
