package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
)

// Verify fetches the authoritative status of reference.
// Transfer references are checked against the transfer API.
func (g *Gateway) Verify(ctx context.Context, reference string) (*gateway.VerificationResult, error) {
	path := "/transaction/verify/" + escape(reference)
	if transaction.IsTransferReference(reference) {
		path = "/transfer/verify/" + escape(reference)
	}

	var data verifyData
	if err := g.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, fmt.Errorf("verify %q: %w", reference, err)
	}
	return data.toResult()
}

func (d *verifyData) toResult() (*gateway.VerificationResult, error) {
	amount, err := money.New(d.Amount, d.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: verify %q: %v", domain.ErrGatewayRejected, d.Reference, err)
	}

	res := &gateway.VerificationResult{
		Reference:       d.Reference,
		Status:          mapStatus(d.Status),
		Amount:          amount,
		Channel:         d.Channel,
		PaidAt:          parseTime(d.PaidAt, d.TransferredAt),
		GatewayResponse: d.GatewayResponse,
		Metadata:        map[string]json.RawMessage{},
	}
	for k, v := range map[string]json.RawMessage{
		"authorization": d.Authorization,
		"customer":      d.Customer,
		"log":           d.Log,
		"recipient":     d.Recipient,
	} {
		if len(v) > 0 && string(v) != "null" {
			res.Metadata[k] = v
		}
	}
	return res, nil
}

// mapStatus folds Paystack statuses into success, failed or pending.
func mapStatus(s string) gateway.Status {
	switch s {
	case "success":
		return gateway.StatusSuccess
	case "failed", "abandoned", "reversed":
		return gateway.StatusFailed
	default:
		return gateway.StatusPending
	}
}

func parseTime(values ...string) *time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
