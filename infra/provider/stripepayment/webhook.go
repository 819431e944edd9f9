package stripepayment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// SignatureHeader implements payment.WebhookParser.
func (s *StripePaymentProvider) SignatureHeader() string {
	return "Stripe-Signature"
}

// ParseWebhook verifies the Stripe-Signature header and normalizes
// payment_intent and transfer events. Other event types are ignored.
func (s *StripePaymentProvider) ParseWebhook(
	payload []byte,
	signature string,
) (*gateway.Notification, error) {
	if s.cfg.SigningSecret == "" {
		s.logger.Error("webhook signing secret not configured")
		return nil, domain.ErrInvalidSignature
	}
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		s.cfg.SigningSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		if errors.Is(err, webhook.ErrNotSigned) ||
			errors.Is(err, webhook.ErrInvalidHeader) ||
			errors.Is(err, webhook.ErrNoValidSignature) ||
			errors.Is(err, webhook.ErrTooOld) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		}
		return nil, fmt.Errorf("%w: stripe webhook: %v", domain.ErrValidation, err)
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed", "payment_intent.canceled":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: payment intent: %v", domain.ErrValidation, err)
		}
		return &gateway.Notification{
			Gateway:   Name,
			EventID:   event.ID,
			Reference: pi.ID,
			Amount:    pi.Amount,
			Currency:  strings.ToUpper(string(pi.Currency)),
			Status:    mapPaymentIntentStatus(&pi),
			PaidAt:    unixTime(event.Created),
		}, nil
	case "transfer.created", "transfer.reversed":
		var tr stripe.Transfer
		if err := json.Unmarshal(event.Data.Raw, &tr); err != nil {
			return nil, fmt.Errorf("%w: transfer: %v", domain.ErrValidation, err)
		}
		status := gateway.StatusSuccess
		if tr.Reversed || event.Type == "transfer.reversed" {
			status = gateway.StatusFailed
		}
		return &gateway.Notification{
			Gateway:   Name,
			EventID:   event.ID,
			Reference: tr.ID,
			Amount:    tr.Amount,
			Currency:  strings.ToUpper(string(tr.Currency)),
			Status:    status,
			PaidAt:    unixTime(event.Created),
		}, nil
	default:
		s.logger.Debug("ignoring stripe event", "type", event.Type, "id", event.ID)
		return nil, nil
	}
}

func unixTime(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
