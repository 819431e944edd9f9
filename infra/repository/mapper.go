package repository

import (
	"fmt"

	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
)

func toModel(tx *transaction.Transaction) *Transaction {
	return &Transaction{
		PublicID:               tx.PublicID,
		PaymentReferenceID:     tx.PaymentReferenceID,
		Amount:                 tx.Amount.Amount(),
		Currency:               tx.Amount.Currency().String(),
		Type:                   string(tx.Type),
		Channel:                tx.Channel,
		PaymentService:         tx.PaymentService,
		PayerID:                tx.PayerID,
		Purpose:                tx.Purpose,
		SenderAccountNumber:    tx.Sender.AccountNumber,
		SenderName:             tx.Sender.Name,
		SenderBankName:         tx.Sender.BankName,
		RecipientAccountNumber: tx.Recipient.AccountNumber,
		RecipientName:          tx.Recipient.Name,
		RecipientBankName:      tx.Recipient.BankName,
		IsReconciled:           tx.IsReconciled,
		IsFlagged:              tx.IsFlagged,
		Notes:                  tx.Notes,
		ReconciledAt:           tx.ReconciledAt,
		CreatedAt:              tx.CreatedAt,
		CreatedBy:              tx.CreatedBy,
		ModifiedAt:             tx.ModifiedAt,
		ModifiedBy:             tx.ModifiedBy,
	}
}

func toDomain(m *Transaction) (*transaction.Transaction, error) {
	amount, err := money.New(m.Amount, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("transaction %q: %w", m.PaymentReferenceID, err)
	}
	return &transaction.Transaction{
		PublicID:           m.PublicID,
		PaymentReferenceID: m.PaymentReferenceID,
		Amount:             amount,
		Type:               transaction.Type(m.Type),
		Channel:            m.Channel,
		PaymentService:     m.PaymentService,
		PayerID:            m.PayerID,
		Purpose:            m.Purpose,
		Sender: transaction.Party{
			AccountNumber: m.SenderAccountNumber,
			Name:          m.SenderName,
			BankName:      m.SenderBankName,
		},
		Recipient: transaction.Party{
			AccountNumber: m.RecipientAccountNumber,
			Name:          m.RecipientName,
			BankName:      m.RecipientBankName,
		},
		IsReconciled: m.IsReconciled,
		IsFlagged:    m.IsFlagged,
		Notes:        m.Notes,
		ReconciledAt: m.ReconciledAt,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
		ModifiedAt:   m.ModifiedAt,
		ModifiedBy:   m.ModifiedBy,
	}, nil
}
