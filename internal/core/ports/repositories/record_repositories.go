package repositories

import (
	"context"
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

// RecordReader defines read operations for purchase and sale records
type RecordReader interface {
	// FindRecordByID retrieves a record. With relations it also loads the line items,
	// the journal entry with its transactions, and every linked payment together
	// with that payment's journal entry and transactions.
	FindRecordByID(ctx context.Context, recordID string, withRelations bool) (*domain.Record, error)

	// ListRecordsByCounterparty lists records of one kind, newest first, optionally
	// narrowed to a single supplier or customer. It returns the records, a token for
	// the next page, and an error.
	ListRecordsByCounterparty(ctx context.Context, kind domain.RecordKind, counterpartyID string, limit int, nextToken *string) ([]domain.Record, *string, error)
}

// RecordWriter defines write operations for purchase and sale records
type RecordWriter interface {
	// CreateRecordWithJournal inserts the record, its journal entry, the journal's
	// transaction rows and the line items in a single database transaction.
	CreateRecordWithJournal(ctx context.Context, record domain.Record) error

	// UpdateRecordStatus sets the settlement status of a record.
	UpdateRecordStatus(ctx context.Context, recordID string, status domain.RecordStatus, updatedAt time.Time) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}

// RecordRepositoryWithTx extends RecordRepositoryFacade with transaction capabilities
type RecordRepositoryWithTx interface {
	RecordRepositoryFacade
	TransactionManager
}
