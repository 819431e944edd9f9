// Package stripepayment integrates Stripe PaymentIntents and Transfers.
package stripepayment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/stripe/stripe-go/v82"
)

// Name is the registry key and the PaymentService value of Stripe rows.
const Name = "stripe"

// transferIDPrefix marks Stripe transfer object ids.
const transferIDPrefix = "tr_"

// StripePaymentProvider implements payment.Gateway using the Stripe API.
type StripePaymentProvider struct {
	client *stripe.Client
	cfg    *config.Stripe
	logger *slog.Logger
}

var _ payment.Gateway = (*StripePaymentProvider)(nil)

// New creates a Stripe gateway. opts are passed to stripe.NewClient.
func New(cfg *config.Stripe, logger *slog.Logger, opts ...stripe.ClientOption) *StripePaymentProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &StripePaymentProvider{
		client: stripe.NewClient(cfg.ApiKey, opts...),
		cfg:    cfg,
		logger: logger.With("gateway", Name),
	}
}

// Name returns "stripe".
func (s *StripePaymentProvider) Name() string {
	return Name
}

// Verify retrieves the PaymentIntent or Transfer named by reference.
func (s *StripePaymentProvider) Verify(
	ctx context.Context,
	reference string,
) (*gateway.VerificationResult, error) {
	if strings.HasPrefix(reference, transferIDPrefix) {
		return s.verifyTransfer(ctx, reference)
	}

	pi, err := s.client.V1PaymentIntents.Retrieve(ctx, reference, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent %q: %w", reference, classify(err))
	}

	amount, err := money.New(pi.Amount, string(pi.Currency))
	if err != nil {
		return nil, fmt.Errorf("%w: payment intent %q: %v", domain.ErrGatewayRejected, reference, err)
	}

	res := &gateway.VerificationResult{
		Reference: pi.ID,
		Status:    mapPaymentIntentStatus(pi),
		Amount:    amount,
		Metadata:  map[string]json.RawMessage{},
	}
	if len(pi.PaymentMethodTypes) > 0 {
		res.Channel = pi.PaymentMethodTypes[0]
	}
	if pi.Status == stripe.PaymentIntentStatusSucceeded && pi.Created > 0 {
		paid := time.Unix(pi.Created, 0).UTC()
		res.PaidAt = &paid
	}
	if pi.LastPaymentError != nil {
		res.GatewayResponse = pi.LastPaymentError.Msg
	}
	if len(pi.Metadata) > 0 {
		if raw, err := json.Marshal(pi.Metadata); err == nil {
			res.Metadata["metadata"] = raw
		}
	}
	if pi.Customer != nil {
		if raw, err := json.Marshal(map[string]string{"id": pi.Customer.ID}); err == nil {
			res.Metadata["customer"] = raw
		}
	}
	return res, nil
}

func (s *StripePaymentProvider) verifyTransfer(
	ctx context.Context,
	reference string,
) (*gateway.VerificationResult, error) {
	tr, err := s.client.V1Transfers.Retrieve(ctx, reference, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve transfer %q: %w", reference, classify(err))
	}
	amount, err := money.New(tr.Amount, string(tr.Currency))
	if err != nil {
		return nil, fmt.Errorf("%w: transfer %q: %v", domain.ErrGatewayRejected, reference, err)
	}

	status := gateway.StatusSuccess
	if tr.Reversed {
		status = gateway.StatusFailed
	}
	res := &gateway.VerificationResult{
		Reference: tr.ID,
		Status:    status,
		Amount:    amount,
		Channel:   "transfer",
		Metadata:  map[string]json.RawMessage{},
	}
	if tr.Created > 0 {
		paid := time.Unix(tr.Created, 0).UTC()
		res.PaidAt = &paid
	}
	if tr.Destination != nil {
		if raw, err := json.Marshal(map[string]string{"id": tr.Destination.ID}); err == nil {
			res.Metadata["destination"] = raw
		}
	}
	return res, nil
}

// mapPaymentIntentStatus folds PaymentIntent states into success, failed or pending.
// requires_payment_method only counts as failed after an attempt was declined.
func mapPaymentIntentStatus(pi *stripe.PaymentIntent) gateway.Status {
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return gateway.StatusSuccess
	case stripe.PaymentIntentStatusCanceled:
		return gateway.StatusFailed
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		if pi.LastPaymentError != nil {
			return gateway.StatusFailed
		}
		return gateway.StatusPending
	default:
		return gateway.StatusPending
	}
}

// classifyCreate is classify for create calls, where a 400 means Stripe
// rejected the parameters we sent.
func classifyCreate(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) && serr.HTTPStatusCode == http.StatusBadRequest &&
		serr.Code != stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("%w: %s", domain.ErrValidation, serr.Msg)
	}
	return classify(err)
}

// classify maps stripe-go errors onto the gateway error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var serr *stripe.Error
	if !errors.As(err, &serr) {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	switch {
	case serr.HTTPStatusCode == http.StatusTooManyRequests || serr.HTTPStatusCode >= 500:
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, serr.Msg)
	case serr.HTTPStatusCode == http.StatusUnauthorized || serr.HTTPStatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrGatewayRejected, serr.Msg)
	case serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, serr.Msg)
	case serr.HTTPStatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, serr.Msg)
	case serr.HTTPStatusCode == 0:
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, serr.Msg)
	default:
		return fmt.Errorf("%w: %s", domain.ErrGatewayRejected, serr.Msg)
	}
}
