package mockpayment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
)

// Name is the registry key of the mock gateway.
const Name = "mock"

// SignatureHeaderName carries hex(HMAC-SHA256(secret, body)).
const SignatureHeaderName = "X-Mock-Signature"

type mockPayment struct {
	status    gateway.Status
	amount    money.Money
	channel   string
	createdAt time.Time
}

// MockPaymentProvider simulates a payment gateway for tests and local development.
//
// Initiated payments stay pending for SettleAfter and then report success.
// SetOutcome overrides what Verify returns for a reference, and FailNext makes
// the next Verify calls fail with an arbitrary error.
// Webhook bodies are gateway.Notification JSON signed with HMAC-SHA256.
type MockPaymentProvider struct {
	mu          sync.Mutex
	payments    map[string]*mockPayment
	failures    []error
	secret      string
	SettleAfter time.Duration
	now         func() time.Time
}

var _ payment.Gateway = (*MockPaymentProvider)(nil)

// NewMockPaymentProvider creates a new instance of MockPaymentProvider.
func NewMockPaymentProvider(secret string) *MockPaymentProvider {
	return &MockPaymentProvider{
		payments:    make(map[string]*mockPayment),
		secret:      secret,
		SettleAfter: 2 * time.Second,
		now:         time.Now,
	}
}

// Name returns "mock".
func (m *MockPaymentProvider) Name() string {
	return Name
}

// SetOutcome fixes the verify answer for reference.
func (m *MockPaymentProvider) SetOutcome(reference string, status gateway.Status, amount money.Money) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[reference] = &mockPayment{status: status, amount: amount, createdAt: m.now()}
}

// FailNext queues errors returned by the next Verify calls, in order.
func (m *MockPaymentProvider) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, errs...)
}

// Verify reports the simulated state of reference.
func (m *MockPaymentProvider) Verify(
	ctx context.Context,
	reference string,
) (*gateway.VerificationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.failures) > 0 {
		err := m.failures[0]
		m.failures = m.failures[1:]
		return nil, err
	}

	p, ok := m.payments[reference]
	if !ok {
		return nil, fmt.Errorf("%w: mock reference %q", domain.ErrNotFound, reference)
	}
	status := p.status
	if status == gateway.StatusPending && m.now().Sub(p.createdAt) >= m.SettleAfter {
		status = gateway.StatusSuccess
	}
	res := &gateway.VerificationResult{
		Reference: reference,
		Status:    status,
		Amount:    p.amount,
		Channel:   p.channel,
	}
	if status == gateway.StatusSuccess {
		paid := m.now().UTC()
		res.PaidAt = &paid
	}
	return res, nil
}

// InitiatePayment records a pending charge.
func (m *MockPaymentProvider) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	m.record(params.Reference, params.Amount, "card")
	return &payment.InitiatePaymentResponse{
		Reference:        params.Reference,
		AuthorizationURL: "https://mock.local/checkout/" + params.Reference,
		Channel:          "card",
	}, nil
}

// InitiateTransfer records a pending transfer.
func (m *MockPaymentProvider) InitiateTransfer(
	ctx context.Context,
	params *payment.InitiateTransferParams,
) (*payment.InitiatePaymentResponse, error) {
	m.record(params.Reference, params.Amount, "transfer")
	return &payment.InitiatePaymentResponse{
		Reference: params.Reference,
		Channel:   "transfer",
	}, nil
}

func (m *MockPaymentProvider) record(reference string, amount money.Money, channel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[reference] = &mockPayment{
		status:    gateway.StatusPending,
		amount:    amount,
		channel:   channel,
		createdAt: m.now(),
	}
}

// SignatureHeader implements payment.WebhookParser.
func (m *MockPaymentProvider) SignatureHeader() string {
	return SignatureHeaderName
}

// Sign computes the webhook signature of payload.
func (m *MockPaymentProvider) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(m.secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseWebhook accepts a signed gateway.Notification body.
func (m *MockPaymentProvider) ParseWebhook(payload []byte, signature string) (*gateway.Notification, error) {
	got, err := hex.DecodeString(signature)
	if err != nil || m.secret == "" {
		return nil, domain.ErrInvalidSignature
	}
	want, _ := hex.DecodeString(m.Sign(payload))
	if !hmac.Equal(got, want) {
		return nil, domain.ErrInvalidSignature
	}

	var n gateway.Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("%w: mock webhook: %v", domain.ErrValidation, err)
	}
	if n.Gateway == "" {
		n.Gateway = Name
	}
	return &n, nil
}
