package reconcile

import (
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
)

// Outcome is the decision taken for one reconciliation attempt.
type Outcome string

const (
	// OutcomeReconciled means this attempt won the settlement and applied the ledger effect.
	OutcomeReconciled Outcome = "reconciled"
	// OutcomeAlreadyReconciled means an earlier or concurrent attempt settled the reference.
	OutcomeAlreadyReconciled Outcome = "already_reconciled"
	// OutcomeFlagged means settlement is withheld until manual review.
	OutcomeFlagged Outcome = "flagged"
	// OutcomePending means the gateway is still processing; nothing changed.
	OutcomePending Outcome = "pending"
)

// Result describes what a reconciliation attempt did.
type Result struct {
	Outcome     Outcome
	Transaction *transaction.Transaction
	Reason      string

	cause error
}

// Err maps the outcome onto the error taxonomy. Reconciled and Pending map to nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	return r.cause
}

func reconciled(tx *transaction.Transaction) *Result {
	return &Result{Outcome: OutcomeReconciled, Transaction: tx}
}

// AlreadyReconciled is the benign no-op result for a settled transaction.
func AlreadyReconciled(tx *transaction.Transaction) *Result {
	return &Result{
		Outcome:     OutcomeAlreadyReconciled,
		Transaction: tx,
		Reason:      "already reconciled",
		cause:       domain.ErrAlreadyReconciled,
	}
}

func flagged(tx *transaction.Transaction, reason string, cause error) *Result {
	return &Result{Outcome: OutcomeFlagged, Transaction: tx, Reason: reason, cause: cause}
}

func pending(tx *transaction.Transaction, reason string) *Result {
	return &Result{Outcome: OutcomePending, Transaction: tx, Reason: reason}
}
