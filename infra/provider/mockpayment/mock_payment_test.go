package mockpayment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateThenSettle(t *testing.T) {
	m := NewMockPaymentProvider("secret")
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	resp, err := m.InitiatePayment(ctx, &payment.InitiatePaymentParams{
		Reference: "chg_1",
		Amount:    money.Must(5000, "NGN"),
	})
	require.NoError(t, err)
	assert.Equal(t, "chg_1", resp.Reference)

	res, err := m.Verify(ctx, "chg_1")
	require.NoError(t, err)
	assert.Equal(t, gateway.StatusPending, res.Status)

	now = now.Add(m.SettleAfter)
	res, err = m.Verify(ctx, "chg_1")
	require.NoError(t, err)
	assert.Equal(t, gateway.StatusSuccess, res.Status)
	assert.True(t, res.Amount.Equals(money.Must(5000, "NGN")))
}

func TestVerifyUnknownAndQueuedFailures(t *testing.T) {
	m := NewMockPaymentProvider("secret")
	ctx := context.Background()

	_, err := m.Verify(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m.SetOutcome("ref123", gateway.StatusFailed, money.Must(5000, "NGN"))
	m.FailNext(domain.ErrGatewayUnavailable)

	_, err = m.Verify(ctx, "ref123")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)

	res, err := m.Verify(ctx, "ref123")
	require.NoError(t, err)
	assert.Equal(t, gateway.StatusFailed, res.Status)
}

func TestParseWebhook(t *testing.T) {
	m := NewMockPaymentProvider("secret")
	body, err := json.Marshal(gateway.Notification{
		Reference: "ref123",
		Amount:    5000,
		Currency:  "NGN",
		Status:    gateway.StatusSuccess,
	})
	require.NoError(t, err)

	n, err := m.ParseWebhook(body, m.Sign(body))
	require.NoError(t, err)
	assert.Equal(t, Name, n.Gateway)
	assert.Equal(t, "ref123", n.Reference)

	_, err = m.ParseWebhook(body, "00")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	bad := []byte("{")
	_, err = m.ParseWebhook(bad, m.Sign(bad))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
