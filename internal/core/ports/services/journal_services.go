package services

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntry retrieves a journal entry with its transactions.
	GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListTransactions retrieves a page of transactions posted to one account, supplier or customer.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
}
