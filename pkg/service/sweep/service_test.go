package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/internal/fixtures/memstore"
	"github.com/amirasaad/payrecon/internal/fixtures/mocks"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/pkg/service/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *memstore.Store, ref string, age time.Duration) {
	t.Helper()
	tx, err := transaction.New(transaction.NewParams{
		PaymentReferenceID: ref,
		Amount:             money.Must(5000, "NGN"),
		Type:               transaction.TypeCredit,
		PaymentService:     "paystack",
		Recipient:          transaction.Party{AccountNumber: "0123456789"},
	})
	require.NoError(t, err)
	tx.CreatedAt = time.Now().UTC().Add(-age)
	store.Seed(tx)
}

func result(ref string, status gateway.Status, amount int64) *gateway.VerificationResult {
	return &gateway.VerificationResult{Reference: ref, Status: status, Amount: money.Must(amount, "NGN")}
}

func newSweeper(t *testing.T, store *memstore.Store, opts Options) (*Sweeper, *mocks.Gateway) {
	t.Helper()
	gw := mocks.NewGateway(t)
	gw.EXPECT().Name().Return("paystack").Maybe()
	verifier := verification.New(payment.NewRegistry(gw), verification.Policy{
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
		AttemptTimeout: time.Second,
	}, slog.Default())
	reconciler := reconcile.New(store.UnitOfWork(), verifier, nil, slog.Default())
	return New(store.UnitOfWork(), reconciler, opts, slog.Default()), gw
}

func TestRunOnce(t *testing.T) {
	store := memstore.New()
	seed(t, store, "ok", time.Hour)
	seed(t, store, "short", time.Hour)
	seed(t, store, "waiting", time.Hour)
	seed(t, store, "down", time.Hour)
	seed(t, store, "fresh", time.Minute)

	s, gw := newSweeper(t, store, Options{SLA: 15 * time.Minute, BatchSize: 10, Workers: 3})
	gw.EXPECT().Verify(mock.Anything, "ok").Return(result("ok", gateway.StatusSuccess, 5000), nil).Once()
	gw.EXPECT().Verify(mock.Anything, "short").Return(result("short", gateway.StatusSuccess, 100), nil).Once()
	gw.EXPECT().Verify(mock.Anything, "waiting").Return(result("waiting", gateway.StatusPending, 0), nil).Once()
	gw.EXPECT().Verify(mock.Anything, "down").
		Return(nil, fmt.Errorf("%w: status 500", domain.ErrGatewayUnavailable)).Twice()

	report, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Scanned: 4, Reconciled: 1, Flagged: 1, StillPending: 1, Failed: 1}, report)

	assert.True(t, store.Get("ok").IsReconciled)
	assert.True(t, store.Get("short").IsFlagged)
	assert.Equal(t, transaction.StatePending, store.Get("waiting").State())
	assert.Equal(t, transaction.StatePending, store.Get("down").State())
	assert.Equal(t, transaction.StatePending, store.Get("fresh").State())
}

func TestRunOnce_RespectsBatchSize(t *testing.T) {
	store := memstore.New()
	seed(t, store, "oldest", 3*time.Hour)
	seed(t, store, "older", 2*time.Hour)
	seed(t, store, "old", time.Hour)

	s, gw := newSweeper(t, store, Options{SLA: time.Minute, BatchSize: 2, Workers: 1})
	gw.EXPECT().Verify(mock.Anything, "oldest").Return(result("oldest", gateway.StatusSuccess, 5000), nil).Once()
	gw.EXPECT().Verify(mock.Anything, "older").Return(result("older", gateway.StatusSuccess, 5000), nil).Once()

	report, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 2, report.Reconciled)
	assert.False(t, store.Get("old").IsReconciled)
}

func TestRunOnce_Empty(t *testing.T) {
	s, _ := newSweeper(t, memstore.New(), Options{SLA: time.Minute})
	report, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{}, report)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, _ := newSweeper(t, memstore.New(), Options{SLA: time.Minute, Interval: 5 * time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweep runner did not stop")
	}
}

func TestRun_RejectsZeroInterval(t *testing.T) {
	s, _ := newSweeper(t, memstore.New(), Options{SLA: time.Minute})
	assert.ErrorIs(t, s.Run(context.Background()), domain.ErrValidation)
}
