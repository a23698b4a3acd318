package mapping

import (
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		ExchangeRate:   d.ExchangeRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
// Transactions are attached by the caller.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		ExchangeRate:   m.ExchangeRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalEntryID:  d.JournalEntryID,
		LedgerID:        string(d.LedgerID),
		AccountID:       d.AccountID,
		SupplierID:      d.SupplierID,
		CustomerID:      d.CustomerID,
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		JournalEntryID:  m.JournalEntryID,
		LedgerID:        domain.Ledger(m.LedgerID),
		AccountID:       m.AccountID,
		SupplierID:      m.SupplierID,
		CustomerID:      m.CustomerID,
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactions converts a slice of model Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
