// Package webhook ingests gateway push notifications.
//
// A notification is only a trigger. Its self-reported amount and status are
// never used for settlement; the reconciler acts on a fresh verify call.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/payrecon/pkg/cache"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/go-playground/validator/v10"
)

// DefaultTimeout bounds one delivery. Gateways typically give up on a
// webhook after roughly 30 seconds.
const DefaultTimeout = 30 * time.Second

// DefaultDeliveryTTL is how long a processed event id is remembered.
const DefaultDeliveryTTL = 24 * time.Hour

var (
	// ErrIgnored reports a delivery that carries no settlement-relevant event.
	// It is acknowledged without processing.
	ErrIgnored = errors.New("webhook event ignored")
	// ErrDuplicate reports a redelivery of an event that already reached a
	// final outcome. It is acknowledged without processing.
	ErrDuplicate = errors.New("webhook event already processed")
)

// Reconciler verifies and settles one transaction.
type Reconciler interface {
	VerifyAndReconcile(
		ctx context.Context,
		tx *transaction.Transaction,
		src events.Source,
	) (*reconcile.Result, error)
}

// Ingestor turns signed gateway deliveries into reconciliation attempts.
type Ingestor struct {
	gateways   *payment.Registry
	uow        repository.UnitOfWork
	reconciler Reconciler
	validate   *validator.Validate
	timeout    time.Duration
	logger     *slog.Logger

	deliveries  cache.DeliveryCache
	deliveryTTL time.Duration
}

// New creates an ingestor. A zero timeout uses DefaultTimeout.
func New(
	gateways *payment.Registry,
	uow repository.UnitOfWork,
	reconciler Reconciler,
	timeout time.Duration,
	logger *slog.Logger,
) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ingestor{
		gateways:   gateways,
		uow:        uow,
		reconciler: reconciler,
		validate:   validator.New(),
		timeout:    timeout,
		logger:     logger.With("service", "webhook"),
	}
}

// WithDeliveryCache makes Ingest skip redeliveries of events that already
// reached a final outcome. A zero ttl uses DefaultDeliveryTTL.
func (i *Ingestor) WithDeliveryCache(c cache.DeliveryCache, ttl time.Duration) *Ingestor {
	if ttl <= 0 {
		ttl = DefaultDeliveryTTL
	}
	i.deliveries = c
	i.deliveryTTL = ttl
	return i
}

// Ingest authenticates and parses a raw delivery for gatewayName and processes it.
//
// Errors:
//   - domain.ErrUnknownGateway: no gateway registered under gatewayName
//   - domain.ErrInvalidSignature: signature check failed, nothing processed
//   - domain.ErrValidation: malformed body, acknowledge without retry
//   - ErrIgnored: event type not relevant to settlement
//   - ErrDuplicate: the event id already reached a final outcome
//
// plus everything Handle returns.
func (i *Ingestor) Ingest(
	ctx context.Context,
	gatewayName string,
	payload []byte,
	signature string,
) (*reconcile.Result, error) {
	logger := i.logger.With("gateway", gatewayName)
	gw, err := i.gateways.Get(gatewayName)
	if err != nil {
		return nil, err
	}

	n, err := gw.ParseWebhook(payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			logger.Warn("rejected webhook with invalid signature")
		default:
			logger.Warn("malformed webhook payload", "error", err)
			if !errors.Is(err, domain.ErrValidation) {
				err = fmt.Errorf("%w: %v", domain.ErrValidation, err)
			}
		}
		return nil, err
	}
	if n == nil {
		logger.Debug("ignoring irrelevant webhook event")
		return nil, ErrIgnored
	}
	if n.Gateway == "" {
		n.Gateway = gatewayName
	}

	key := ""
	if i.deliveries != nil && n.EventID != "" {
		key = cache.DeliveryKey(n.Gateway, n.EventID)
		outcome, seen, err := i.deliveries.Get(ctx, key)
		if err != nil {
			logger.Warn("delivery cache unavailable", "error", err)
		} else if seen {
			logger.Info("duplicate delivery", "event_id", n.EventID, "outcome", outcome)
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, outcome)
		}
	}

	res, err := i.Handle(ctx, n)
	if err == nil && key != "" && res.Outcome != reconcile.OutcomePending {
		if cerr := i.deliveries.Set(ctx, key, string(res.Outcome), i.deliveryTTL); cerr != nil {
			logger.Warn("failed to remember delivery", "error", cerr)
		}
	}
	return res, err
}

// Handle processes an authenticated notification.
//
// Errors:
//   - domain.ErrValidation: notification failed structural validation
//   - domain.ErrNotFound: no transaction has the reference
//   - domain.ErrGatewayUnavailable: verification exhausted its retries; the
//     transaction stays Pending for the sweep
//
// An already reconciled transaction returns OutcomeAlreadyReconciled without
// calling the gateway or writing to storage.
func (i *Ingestor) Handle(ctx context.Context, n *gateway.Notification) (*reconcile.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	if n == nil {
		return nil, fmt.Errorf("%w: empty notification", domain.ErrValidation)
	}
	if err := i.validate.Struct(n); err != nil {
		i.logger.Warn("webhook notification failed validation", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	logger := i.logger.With(
		"gateway", n.Gateway,
		"reference", n.Reference,
		"event_id", n.EventID,
	)

	store, err := i.uow.TransactionStore()
	if err != nil {
		return nil, err
	}
	tx, err := store.FindByReference(ctx, n.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("webhook for unknown reference")
			return nil, fmt.Errorf("reference %q: %w", n.Reference, domain.ErrNotFound)
		}
		logger.Error("failed to load transaction", "error", err)
		return nil, err
	}

	if tx.PaymentService != n.Gateway {
		logger.Warn("webhook gateway does not own reference", "owner", tx.PaymentService)
		return nil, fmt.Errorf("%w: reference %q belongs to %q",
			domain.ErrValidation, n.Reference, tx.PaymentService)
	}

	if tx.IsReconciled {
		logger.Info("duplicate delivery for reconciled transaction")
		return reconcile.AlreadyReconciled(tx), nil
	}

	if reported, err := n.Money(); err == nil && !reported.Equals(tx.Amount) {
		// Not acted upon: the verify call decides.
		logger.Info("webhook reports a different amount than recorded",
			"reported", reported.String(), "recorded", tx.Amount.String())
	}

	res, err := i.reconciler.VerifyAndReconcile(ctx, tx, events.SourceWebhook)
	if err != nil {
		return nil, err
	}
	logger.Info("webhook processed", "outcome", res.Outcome)
	return res, nil
}
