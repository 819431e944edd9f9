// Package alert turns reconciliation events into operator-facing log records.
package alert

import (
	"context"
	"log/slog"

	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/eventbus"
)

// Register subscribes every alert handler on bus.
func Register(bus eventbus.Bus, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	bus.Register(events.EventTypeTransactionReconciled, HandleReconciled(logger))
	bus.Register(events.EventTypeTransactionFlagged, HandleFlagged(logger))
	bus.Register(events.EventTypeVerificationExhausted, HandleExhausted(logger))
}

// HandleReconciled records a completed settlement.
func HandleReconciled(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "alert.HandleReconciled", "event_type", e.Type())
		var ev *events.TransactionReconciled
		switch v := e.(type) {
		case *events.TransactionReconciled:
			ev = v
		case events.TransactionReconciled:
			ev = &v
		default:
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log.InfoContext(ctx, "transaction reconciled",
			"reference", ev.Reference,
			"gateway", ev.Gateway,
			"amount", ev.Amount,
			"currency", ev.Currency,
			"source", ev.Source,
		)
		return nil
	}
}

// HandleFlagged warns that a transaction needs manual review.
func HandleFlagged(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "alert.HandleFlagged", "event_type", e.Type())
		var ev *events.TransactionFlagged
		switch v := e.(type) {
		case *events.TransactionFlagged:
			ev = v
		case events.TransactionFlagged:
			ev = &v
		default:
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log.WarnContext(ctx, "transaction flagged for manual review",
			"reference", ev.Reference,
			"gateway", ev.Gateway,
			"reason", ev.Reason,
			"recorded", ev.RecordedAmount,
			"recorded_currency", ev.RecordedCurrency,
			"verified", ev.VerifiedAmount,
			"verified_currency", ev.VerifiedCurrency,
			"source", ev.Source,
		)
		return nil
	}
}

// HandleExhausted reports a gateway that stayed unavailable for the whole retry budget.
func HandleExhausted(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "alert.HandleExhausted", "event_type", e.Type())
		var ev *events.VerificationExhausted
		switch v := e.(type) {
		case *events.VerificationExhausted:
			ev = v
		case events.VerificationExhausted:
			ev = &v
		default:
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log.ErrorContext(ctx, "verification retries exhausted",
			"reference", ev.Reference,
			"gateway", ev.Gateway,
			"error", ev.Error,
			"source", ev.Source,
		)
		return nil
	}
}
