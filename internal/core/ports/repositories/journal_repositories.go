package repositories

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves a journal entry along with its transactions.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByJournalEntryIDs retrieves transactions for multiple journal entries, grouped by entry id.
	FindTransactionsByJournalEntryIDs(ctx context.Context, journalEntryIDs []string) (map[string][]domain.Transaction, error)

	// ListTransactions retrieves a page of transactions posted to one account, supplier or customer.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, ledger domain.Ledger, targetID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	TransactionReader
}
