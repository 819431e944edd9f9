package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "sk_test_secret"

var _ payment.Gateway = (*Gateway)(nil)

func newTestGateway(t *testing.T, h http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(&config.Paystack{SecretKey: testSecret, BaseURL: srv.URL}, 2*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestVerifySuccess(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref123", r.URL.Path)
		assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"id":               42,
				"status":           "success",
				"reference":        "ref123",
				"amount":           5000,
				"currency":         "NGN",
				"channel":          "card",
				"paid_at":          "2024-05-01T10:00:00Z",
				"gateway_response": "Approved",
				"authorization":    map[string]any{"last4": "4081"},
				"customer":         map[string]any{"email": "a@b.co"},
			},
		})
	})

	res, err := g.Verify(context.Background(), "ref123")
	require.NoError(t, err)
	assert.Equal(t, gateway.StatusSuccess, res.Status)
	assert.True(t, res.Amount.Equals(money.Must(5000, "NGN")))
	assert.Equal(t, "card", res.Channel)
	require.NotNil(t, res.PaidAt)
	assert.Equal(t, 2024, res.PaidAt.Year())
	assert.JSONEq(t, `{"last4":"4081"}`, string(res.Metadata["authorization"]))
	assert.Contains(t, res.Metadata, "customer")
	assert.NotContains(t, res.Metadata, "log")
}

func TestVerifyTransferReferenceUsesTransferAPI(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer/verify/trf_abc", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": true,
			"data": map[string]any{
				"status": "reversed", "reference": "trf_abc", "amount": 1250, "currency": "NGN",
			},
		})
	})

	res, err := g.Verify(context.Background(), "trf_abc")
	require.NoError(t, err)
	assert.Equal(t, gateway.StatusFailed, res.Status)
}

func TestVerifyErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"bad request", http.StatusBadRequest, domain.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, domain.ErrGatewayRejected},
		{"forbidden", http.StatusForbidden, domain.ErrGatewayRejected},
		{"rate limited", http.StatusTooManyRequests, domain.ErrGatewayUnavailable},
		{"server error", http.StatusBadGateway, domain.ErrGatewayUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{"status": false, "message": "nope"})
			})
			_, err := g.Verify(context.Background(), "ref123")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerifyUnreadableBodyIsTransient(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	})
	_, err := g.Verify(context.Background(), "ref123")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestVerifyNetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	g := New(&config.Paystack{SecretKey: testSecret, BaseURL: url}, time.Second, nil)

	_, err := g.Verify(context.Background(), "ref123")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestMapStatus(t *testing.T) {
	for in, want := range map[string]gateway.Status{
		"success":   gateway.StatusSuccess,
		"failed":    gateway.StatusFailed,
		"abandoned": gateway.StatusFailed,
		"reversed":  gateway.StatusFailed,
		"ongoing":   gateway.StatusPending,
		"queued":    gateway.StatusPending,
		"":          gateway.StatusPending,
	} {
		assert.Equal(t, want, mapStatus(in), in)
	}
}

func TestInitiatePayment(t *testing.T) {
	var calls atomic.Int32
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		var body initializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(5000), body.Amount)
		assert.Equal(t, "NGN", body.Currency)
		assert.Equal(t, "chg_1", body.Reference)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": true,
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code":       "abc",
				"reference":         "chg_1",
			},
		})
	})

	resp, err := g.InitiatePayment(context.Background(), &payment.InitiatePaymentParams{
		Reference: "chg_1",
		Amount:    money.Must(5000, "NGN"),
		Email:     "payer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "chg_1", resp.Reference)
	assert.Equal(t, "https://checkout.paystack.com/abc", resp.AuthorizationURL)
	assert.Equal(t, int32(1), calls.Load())
}

func TestInitiateTransfer(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer", r.URL.Path)
		var body transferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "balance", body.Source)
		assert.Equal(t, "RCP_1", body.Recipient)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": true,
			"data":   map[string]any{"reference": "trf_1", "transfer_code": "TRF_x", "status": "pending"},
		})
	})

	resp, err := g.InitiateTransfer(context.Background(), &payment.InitiateTransferParams{
		Reference: "trf_1",
		Amount:    money.Must(1250, "NGN"),
		Recipient: "RCP_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "trf_1", resp.Reference)
	assert.Equal(t, "TRF_x", resp.AccessCode)
}

func TestInitiateBadRequestIsValidation(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, status, map[string]any{"status": false, "message": "Invalid Email Address Passed"})
		})
		_, err := g.InitiatePayment(context.Background(), &payment.InitiatePaymentParams{
			Reference: "chg_1", Amount: money.Must(5000, "NGN"), Email: "nope",
		})
		assert.ErrorIs(t, err, domain.ErrValidation, "charge status %d", status)
		assert.NotErrorIs(t, err, domain.ErrNotFound)

		_, err = g.InitiateTransfer(context.Background(), &payment.InitiateTransferParams{
			Reference: "trf_1", Amount: money.Must(1250, "NGN"), Recipient: "RCP_bad",
		})
		assert.ErrorIs(t, err, domain.ErrValidation, "transfer status %d", status)
	}
}

func TestInitiateRejectedStatusFalse(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": false, "message": "Duplicate Transaction Reference"})
	})
	_, err := g.InitiatePayment(context.Background(), &payment.InitiatePaymentParams{
		Reference: "chg_1", Amount: money.Must(5000, "NGN"), Email: "a@b.co",
	})
	assert.ErrorIs(t, err, domain.ErrGatewayRejected)
}

func TestParseWebhook(t *testing.T) {
	g := New(&config.Paystack{SecretKey: testSecret}, time.Second, nil)
	body := []byte(`{"event":"charge.success","data":{"id":7,"status":"success","reference":"ref123",` +
		`"amount":5000,"currency":"ngn","paid_at":"2024-05-01T10:00:00Z","authorization":{"last4":"4081"}}}`)

	t.Run("valid", func(t *testing.T) {
		n, err := g.ParseWebhook(body, Sign(testSecret, body))
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, Name, n.Gateway)
		assert.Equal(t, "ref123", n.Reference)
		assert.Equal(t, int64(5000), n.Amount)
		assert.Equal(t, "NGN", n.Currency)
		assert.Equal(t, gateway.StatusSuccess, n.Status)
		assert.Equal(t, "charge.success:7", n.EventID)
	})

	t.Run("missing data id has no event id", func(t *testing.T) {
		noID := []byte(`{"event":"charge.success","data":{"status":"success","reference":"ref123",` +
			`"amount":5000,"currency":"NGN"}}`)
		n, err := g.ParseWebhook(noID, Sign(testSecret, noID))
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Empty(t, n.EventID)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := g.ParseWebhook(body, Sign("other", body))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("non hex signature", func(t *testing.T) {
		_, err := g.ParseWebhook(body, "zz")
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		bad := []byte(`{"event":`)
		_, err := g.ParseWebhook(bad, Sign(testSecret, bad))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("irrelevant event", func(t *testing.T) {
		other := []byte(`{"event":"subscription.create","data":{}}`)
		n, err := g.ParseWebhook(other, Sign(testSecret, other))
		assert.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("empty secret never verifies", func(t *testing.T) {
		open := New(&config.Paystack{}, time.Second, nil)
		_, err := open.ParseWebhook(body, Sign("", body))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})
}
