// Package reconcile settles transactions against verified gateway results.
//
// Settlement is a single conditional write (false->true on IsReconciled) paired
// with the ledger effect inside one unit of work. Whoever wins the write applies
// the ledger effect; every other attempt observes AlreadyReconciled.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/eventbus"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/google/uuid"
)

// ReferenceVerifier returns the authoritative gateway state of a reference.
type ReferenceVerifier interface {
	Verify(ctx context.Context, gatewayName, reference string) (*gateway.VerificationResult, error)
}

// Service is the reconciliation state machine.
type Service struct {
	uow      repository.UnitOfWork
	verifier ReferenceVerifier
	bus      eventbus.Bus
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a reconciliation service. bus may be nil.
func New(
	uow repository.UnitOfWork,
	verifier ReferenceVerifier,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:      uow,
		verifier: verifier,
		bus:      bus,
		logger:   logger.With("service", "reconcile"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ReconcileReference looks up reference, verifies it and applies the result.
func (s *Service) ReconcileReference(
	ctx context.Context,
	reference string,
	src events.Source,
) (*Result, error) {
	store, err := s.uow.TransactionStore()
	if err != nil {
		return nil, err
	}
	tx, err := store.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.VerifyAndReconcile(ctx, tx, src)
}

// VerifyAndReconcile verifies tx with its gateway and applies the result.
//
// Settled and flagged transactions short-circuit without a gateway call.
// When verification stays unavailable for the whole retry budget a
// VerificationExhausted alert is emitted and the transaction stays Pending.
func (s *Service) VerifyAndReconcile(
	ctx context.Context,
	tx *transaction.Transaction,
	src events.Source,
) (*Result, error) {
	if tx.IsReconciled {
		return AlreadyReconciled(tx), nil
	}
	if tx.IsFlagged {
		return flagged(tx, "awaiting manual review", domain.ErrFlagged), nil
	}

	res, err := s.verifier.Verify(ctx, tx.PaymentService, tx.PaymentReferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			s.alertExhausted(ctx, tx, err, src)
		}
		return nil, fmt.Errorf("verify %s: %w", tx.PaymentReferenceID, err)
	}
	return s.Reconcile(ctx, tx, res, src)
}

// Reconcile applies a verification result to tx.
//
// Only res.Status, res.Amount and its currency drive the decision. Amounts
// must match exactly; any difference flags the transaction.
func (s *Service) Reconcile(
	ctx context.Context,
	tx *transaction.Transaction,
	res *gateway.VerificationResult,
	src events.Source,
) (*Result, error) {
	if tx == nil || res == nil {
		return nil, fmt.Errorf("%w: transaction and verification result are required", domain.ErrValidation)
	}
	logger := s.logger.With(
		"reference", tx.PaymentReferenceID,
		"gateway", tx.PaymentService,
		"source", src,
	)

	if tx.IsReconciled {
		logger.Debug("already reconciled")
		return AlreadyReconciled(tx), nil
	}
	if tx.IsFlagged {
		logger.Info("transaction awaits manual review, skipping")
		return flagged(tx, "awaiting manual review", domain.ErrFlagged), nil
	}
	if res.Reference != "" && res.Reference != tx.PaymentReferenceID {
		return nil, fmt.Errorf("%w: verification for %q applied to %q",
			domain.ErrValidation, res.Reference, tx.PaymentReferenceID)
	}

	switch res.Status {
	case gateway.StatusPending:
		logger.Info("gateway still processing, leaving pending")
		return pending(tx, "gateway reports pending"), nil

	case gateway.StatusFailed:
		note := "gateway reported failed"
		if res.GatewayResponse != "" {
			note += ": " + res.GatewayResponse
		}
		return s.flag(ctx, logger, tx, res, note, domain.ErrFlagged, src)

	case gateway.StatusSuccess:
		if !res.Amount.Equals(tx.Amount) {
			note := fmt.Sprintf("amount mismatch: recorded %s, verified %s", tx.Amount, res.Amount)
			return s.flag(ctx, logger, tx, res, note, domain.ErrAmountMismatch, src)
		}
		return s.settle(ctx, logger, tx, src)

	default:
		return nil, fmt.Errorf("%w: unknown verification status %q", domain.ErrValidation, res.Status)
	}
}

func (s *Service) settle(
	ctx context.Context,
	logger *slog.Logger,
	tx *transaction.Transaction,
	src events.Source,
) (*Result, error) {
	won := false
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		store, err := uow.TransactionStore()
		if err != nil {
			return err
		}
		ok, err := store.TryMarkReconciled(ctx, tx.PaymentReferenceID)
		if err != nil {
			return fmt.Errorf("mark reconciled: %w", err)
		}
		if !ok {
			return nil
		}
		ledger, err := uow.LedgerEffect()
		if err != nil {
			return err
		}
		if err := ledger.Apply(ctx, tx); err != nil {
			return fmt.Errorf("apply ledger effect: %w", err)
		}
		won = true
		return nil
	})
	if err != nil {
		logger.Error("settlement failed, transaction left pending", "error", err)
		return nil, err
	}

	if !won {
		return s.observeLostRace(ctx, logger, tx)
	}

	settled := *tx
	now := s.now()
	settled.IsReconciled = true
	settled.ReconciledAt = &now
	settled.ModifiedAt = now
	logger.Info("transaction reconciled", "amount", tx.Amount.String())

	s.emit(ctx, events.TransactionReconciled{
		ID:        uuid.New(),
		PublicID:  tx.PublicID,
		Reference: tx.PaymentReferenceID,
		Gateway:   tx.PaymentService,
		Amount:    tx.Amount.Amount(),
		Currency:  tx.Amount.Currency().String(),
		Source:    src,
		Timestamp: now,
	})
	return reconciled(&settled), nil
}

// observeLostRace re-reads the row after a conditional write matched nothing.
func (s *Service) observeLostRace(
	ctx context.Context,
	logger *slog.Logger,
	tx *transaction.Transaction,
) (*Result, error) {
	store, err := s.uow.TransactionStore()
	if err != nil {
		return nil, err
	}
	current, err := store.FindByReference(ctx, tx.PaymentReferenceID)
	if err != nil {
		return nil, err
	}
	switch {
	case current.IsReconciled:
		logger.Info("lost settlement race, already reconciled")
		return AlreadyReconciled(current), nil
	case current.IsFlagged:
		logger.Info("transaction was flagged concurrently")
		return flagged(current, current.Notes, domain.ErrFlagged), nil
	default:
		return nil, fmt.Errorf("conditional settlement of %q matched no row", tx.PaymentReferenceID)
	}
}

func (s *Service) flag(
	ctx context.Context,
	logger *slog.Logger,
	tx *transaction.Transaction,
	res *gateway.VerificationResult,
	note string,
	cause error,
	src events.Source,
) (*Result, error) {
	store, err := s.uow.TransactionStore()
	if err != nil {
		return nil, err
	}
	changed, err := store.Flag(ctx, tx.PaymentReferenceID, note)
	if err != nil {
		logger.Error("failed to flag transaction", "error", err)
		return nil, fmt.Errorf("flag: %w", err)
	}
	if !changed {
		return s.observeLostRace(ctx, logger, tx)
	}

	out := *tx
	out.IsFlagged = true
	out.Notes = transaction.AppendNote(tx.Notes, note)
	out.ModifiedAt = s.now()
	logger.Warn("transaction flagged for manual review", "reason", note)

	s.emit(ctx, events.TransactionFlagged{
		ID:               uuid.New(),
		PublicID:         tx.PublicID,
		Reference:        tx.PaymentReferenceID,
		Gateway:          tx.PaymentService,
		Reason:           note,
		RecordedAmount:   tx.Amount.Amount(),
		RecordedCurrency: tx.Amount.Currency().String(),
		VerifiedAmount:   res.Amount.Amount(),
		VerifiedCurrency: res.Amount.Currency().String(),
		Source:           src,
		Timestamp:        out.ModifiedAt,
	})
	return flagged(&out, note, cause), nil
}

func (s *Service) alertExhausted(
	ctx context.Context,
	tx *transaction.Transaction,
	err error,
	src events.Source,
) {
	s.logger.Error("verification exhausted, transaction stays pending",
		"reference", tx.PaymentReferenceID,
		"gateway", tx.PaymentService,
		"source", src,
		"error", err,
	)
	s.emit(ctx, events.VerificationExhausted{
		ID:        uuid.New(),
		Reference: tx.PaymentReferenceID,
		Gateway:   tx.PaymentService,
		Error:     err.Error(),
		Source:    src,
		Timestamp: s.now(),
	})
}

// emit publishes e. Failures are logged; the state change has already committed.
func (s *Service) emit(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(context.WithoutCancel(ctx), e); err != nil {
		s.logger.Error("failed to emit event", "event_type", e.Type(), "error", err)
	}
}
