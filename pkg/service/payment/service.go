// Package payment creates outbound charges and transfers and records them as Pending.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
	provider "github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Kind selects the outbound call.
type Kind string

const (
	// KindCharge collects funds from a payer and credits the recipient account.
	KindCharge Kind = "charge"
	// KindTransfer sends funds out and debits the sender account.
	KindTransfer Kind = "transfer"
)

// InitiateRequest is the input of Initiate.
type InitiateRequest struct {
	Kind      Kind   `json:"kind" validate:"required,oneof=charge transfer"`
	Gateway   string `json:"gateway" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Currency  string `json:"currency" validate:"required,len=3,alpha"`
	Channel   string `json:"channel"`
	PayerID   string `json:"payerId" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Purpose   string `json:"purpose" validate:"max=255"`
	Reference string `json:"reference" validate:"omitempty,max=128"`
	// Recipient is the gateway-side recipient code, required for transfers.
	Recipient   string            `json:"recipient" validate:"required_if=Kind transfer"`
	CallbackURL string            `json:"callbackUrl" validate:"omitempty,url"`
	Sender      transaction.Party `json:"sender"`
	Receiver    transaction.Party `json:"receiver"`
	Metadata    map[string]string `json:"metadata"`
	Actor       string            `json:"-"`
}

// InitiateResponse pairs the recorded transaction with the gateway's answer.
type InitiateResponse struct {
	Transaction *transaction.Transaction
	Gateway     *provider.InitiatePaymentResponse
}

// Service is the payment request initiator.
type Service struct {
	gateways *provider.Registry
	uow      repository.UnitOfWork
	validate *validator.Validate
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a payment initiation service.
func New(
	gateways *provider.Registry,
	uow repository.UnitOfWork,
	timeout time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateways: gateways,
		uow:      uow,
		validate: validator.New(),
		timeout:  timeout,
		logger:   logger.With("service", "payment"),
	}
}

// Initiate calls the gateway and, only when the call succeeds, records a
// Pending transaction keyed by the reference the gateway echoed back.
// A failed or timed out gateway call leaves no row behind.
func (s *Service) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	amount, err := money.New(req.Amount, req.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	gw, err := s.gateways.Get(req.Gateway)
	if err != nil {
		return nil, err
	}

	reference, err := referenceFor(req.Kind, req.Reference)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("gateway", gw.Name(), "reference", reference, "kind", req.Kind)

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	txType := transaction.TypeCredit
	var resp *provider.InitiatePaymentResponse
	switch req.Kind {
	case KindTransfer:
		txType = transaction.TypeDebit
		resp, err = gw.InitiateTransfer(callCtx, &provider.InitiateTransferParams{
			Reference: reference,
			Amount:    amount,
			Recipient: req.Recipient,
			Reason:    req.Purpose,
		})
	default:
		resp, err = gw.InitiatePayment(callCtx, &provider.InitiatePaymentParams{
			Reference:   reference,
			Amount:      amount,
			Email:       req.Email,
			CallbackURL: req.CallbackURL,
			Metadata:    req.Metadata,
		})
	}
	if err != nil {
		logger.Error("gateway initiation failed, nothing recorded", "error", err)
		return nil, fmt.Errorf("initiate with %s: %w", gw.Name(), err)
	}
	if resp != nil && resp.Reference != "" {
		reference = resp.Reference
	}

	channel := req.Channel
	if resp != nil && resp.Channel != "" {
		channel = resp.Channel
	}
	tx, err := transaction.New(transaction.NewParams{
		PaymentReferenceID: reference,
		Amount:             amount,
		Type:               txType,
		Channel:            channel,
		PaymentService:     gw.Name(),
		PayerID:            req.PayerID,
		Purpose:            req.Purpose,
		Sender:             req.Sender,
		Recipient:          req.Receiver,
		Actor:              req.Actor,
	})
	if err != nil {
		return nil, err
	}

	store, err := s.uow.TransactionStore()
	if err != nil {
		return nil, err
	}
	// The gateway call already happened; do not let a cancelled caller orphan it.
	if err := store.Create(context.WithoutCancel(ctx), tx); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Warn("reference already recorded")
		} else {
			logger.Error("failed to record pending transaction", "error", err)
		}
		return nil, fmt.Errorf("record transaction %q: %w", reference, err)
	}

	logger.Info("payment initiated", "amount", amount.String())
	return &InitiateResponse{Transaction: tx, Gateway: resp}, nil
}

// referenceFor normalizes a caller supplied reference. Verification routes
// transfers by TransferReferencePrefix, so a transfer reference always carries
// it and a charge reference never does.
func referenceFor(kind Kind, requested string) (string, error) {
	ref := strings.TrimSpace(requested)
	if ref == "" {
		return NewReference(kind), nil
	}
	isTransfer := transaction.IsTransferReference(ref)
	switch {
	case kind == KindTransfer && !isTransfer:
		return transaction.TransferReferencePrefix + ref, nil
	case kind != KindTransfer && isTransfer:
		return "", fmt.Errorf("%w: charge reference %q must not start with %q",
			domain.ErrValidation, ref, transaction.TransferReferencePrefix)
	}
	return ref, nil
}

// NewReference generates a unique payment reference.
func NewReference(kind Kind) string {
	prefix := transaction.ChargeReferencePrefix
	if kind == KindTransfer {
		prefix = transaction.TransferReferencePrefix
	}
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
