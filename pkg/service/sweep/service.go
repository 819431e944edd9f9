// Package sweep reconciles Pending transactions that never received a timely webhook.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/pkg/service/webhook"
	"golang.org/x/sync/errgroup"
)

// Options configures a Sweeper.
type Options struct {
	// SLA is how long a transaction may stay Pending before the sweep checks it.
	SLA       time.Duration
	Interval  time.Duration
	BatchSize int
	Workers   int
}

// OptionsFromConfig maps the reconciliation config section.
func OptionsFromConfig(cfg *config.Reconciliation) Options {
	return Options{
		SLA:       cfg.SweepSLA,
		Interval:  cfg.SweepInterval,
		BatchSize: cfg.SweepBatchSize,
		Workers:   cfg.SweepWorkers,
	}
}

// Report summarizes one pass.
type Report struct {
	Scanned      int
	Reconciled   int
	Already      int
	Flagged      int
	StillPending int
	Failed       int
}

func (r *Report) add(o reconcile.Outcome) {
	switch o {
	case reconcile.OutcomeReconciled:
		r.Reconciled++
	case reconcile.OutcomeAlreadyReconciled:
		r.Already++
	case reconcile.OutcomeFlagged:
		r.Flagged++
	case reconcile.OutcomePending:
		r.StillPending++
	}
}

// Sweeper periodically feeds overdue Pending transactions through verification and reconciliation.
type Sweeper struct {
	uow        repository.UnitOfWork
	reconciler webhook.Reconciler
	opts       Options
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a sweeper.
func New(
	uow repository.UnitOfWork,
	reconciler webhook.Reconciler,
	opts Options,
	logger *slog.Logger,
) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 100
	}
	return &Sweeper{
		uow:        uow,
		reconciler: reconciler,
		opts:       opts,
		logger:     logger.With("service", "sweep"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RunOnce processes one batch of overdue Pending transactions.
// Per-transaction failures are counted, not returned; the transaction stays
// Pending for the next pass.
func (s *Sweeper) RunOnce(ctx context.Context) (Report, error) {
	var report Report
	store, err := s.uow.TransactionStore()
	if err != nil {
		return report, err
	}
	cutoff := s.now().Add(-s.opts.SLA)
	txs, err := store.ListPending(ctx, cutoff, s.opts.BatchSize)
	if err != nil {
		return report, fmt.Errorf("list pending: %w", err)
	}
	report.Scanned = len(txs)
	if len(txs) == 0 {
		s.logger.Debug("no overdue pending transactions", "cutoff", cutoff)
		return report, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for _, tx := range txs {
		g.Go(func() error {
			res, err := s.reconciler.VerifyAndReconcile(gctx, tx, events.SourceSweep)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				if !errors.Is(err, domain.ErrGatewayUnavailable) {
					s.logger.Warn("sweep could not reconcile transaction",
						"reference", tx.PaymentReferenceID, "error", err)
				}
				return nil
			}
			report.add(res.Outcome)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("sweep pass complete",
		"scanned", report.Scanned,
		"reconciled", report.Reconciled,
		"already_reconciled", report.Already,
		"flagged", report.Flagged,
		"still_pending", report.StillPending,
		"failed", report.Failed,
	)
	return report, ctx.Err()
}

// Run calls RunOnce every Interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.opts.Interval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", domain.ErrValidation)
	}
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	s.logger.Info("sweep runner started", "interval", s.opts.Interval, "sla", s.opts.SLA)
	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("sweep pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			s.logger.Info("sweep runner stopped")
			return nil
		case <-ticker.C:
		}
	}
}
