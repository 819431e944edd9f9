package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
)

// SignatureHeaderName carries hex(HMAC-SHA512(secret, body)).
const SignatureHeaderName = "x-paystack-signature"

// SignatureHeader implements payment.WebhookParser.
func (g *Gateway) SignatureHeader() string {
	return SignatureHeaderName
}

// Sign computes the webhook signature of payload.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseWebhook authenticates payload and normalizes charge and transfer events.
func (g *Gateway) ParseWebhook(payload []byte, signature string) (*gateway.Notification, error) {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || g.secretKey == "" {
		return nil, domain.ErrInvalidSignature
	}
	want, _ := hex.DecodeString(Sign(g.secretKey, payload))
	if !hmac.Equal(got, want) {
		return nil, domain.ErrInvalidSignature
	}

	var evt webhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, fmt.Errorf("%w: paystack webhook: %v", domain.ErrValidation, err)
	}

	switch evt.Event {
	case "charge.success", "transfer.success", "transfer.failed", "transfer.reversed":
	default:
		g.logger.Debug("ignoring paystack event", "event", evt.Event)
		return nil, nil
	}

	// Without a data.id there is nothing that identifies this delivery.
	var eventID string
	if evt.Data.ID != 0 {
		eventID = fmt.Sprintf("%s:%d", evt.Event, evt.Data.ID)
	}

	metadata, _ := json.Marshal(map[string]json.RawMessage{
		"authorization": evt.Data.Authorization,
		"customer":      evt.Data.Customer,
	})
	return &gateway.Notification{
		Gateway:   Name,
		EventID:   eventID,
		Reference: evt.Data.Reference,
		Amount:    evt.Data.Amount,
		Currency:  strings.ToUpper(evt.Data.Currency),
		Status:    mapStatus(evt.Data.Status),
		PaidAt:    parseTime(evt.Data.PaidAt, evt.Data.TransferredAt),
		Metadata:  metadata,
	}, nil
}
