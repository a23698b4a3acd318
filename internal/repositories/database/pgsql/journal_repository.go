package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	"github.com/woodybriggs/ledger/internal/models"
	"github.com/woodybriggs/ledger/internal/utils/mapping"
	"github.com/woodybriggs/ledger/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const transactionColumns = `transaction_id, journal_entry_id, ledger_id, account_id, supplier_id, customer_id,
	debit_amount, credit_amount, transaction_date, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.JournalEntryID,
		&m.LedgerID,
		&m.AccountID,
		&m.SupplierID,
		&m.CustomerID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// insertJournalEntry writes the entry header and queues its transaction rows on batch.
func insertJournalEntry(ctx context.Context, q querier, batch *pgx.Batch, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	_, err := q.Exec(ctx, `
		INSERT INTO journal_entries (journal_entry_id, exchange_rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`, m.JournalEntryID, m.ExchangeRate, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return translateWriteError("failed to insert journal entry "+m.JournalEntryID, err)
	}

	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, txn := range entry.Transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("%w: transaction %s: %v", apperrors.ErrValidation, txn.TransactionID, err)
		}
		mt := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
			mt.TransactionID,
			mt.JournalEntryID,
			mt.LedgerID,
			mt.AccountID,
			mt.SupplierID,
			mt.CustomerID,
			mt.DebitAmount,
			mt.CreditAmount,
			mt.TransactionDate,
			mt.CreatedAt,
			mt.LastUpdatedAt,
		)
	}
	return nil
}

// findJournalEntriesByIDs loads entries with their transactions, keyed by entry id.
func (r *PgxJournalRepository) findJournalEntriesByIDs(ctx context.Context, journalEntryIDs []string) (map[string]*domain.JournalEntry, error) {
	entries := make(map[string]*domain.JournalEntry, len(journalEntryIDs))
	if len(journalEntryIDs) == 0 {
		return entries, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT journal_entry_id, exchange_rate, created_at, last_updated_at
		FROM journal_entries
		WHERE journal_entry_id = ANY($1);
	`, journalEntryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.JournalEntryID, &m.ExchangeRate, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entry := mapping.ToDomainJournalEntry(m)
		entries[entry.JournalEntryID] = &entry
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	txns, err := r.FindTransactionsByJournalEntryIDs(ctx, journalEntryIDs)
	if err != nil {
		return nil, err
	}
	for id, entry := range entries {
		entry.Transactions = txns[id]
	}
	return entries, nil
}

// FindJournalEntryByID retrieves a journal entry along with its transactions.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	entries, err := r.findJournalEntriesByIDs(ctx, []string{journalEntryID})
	if err != nil {
		return nil, err
	}
	entry, ok := entries[journalEntryID]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
	}
	return entry, nil
}

// FindTransactionsByJournalEntryIDs retrieves transactions for multiple journal entries, grouped by entry id.
// Rows within an entry come back nominal first, then supplier, then customer.
func (r *PgxJournalRepository) FindTransactionsByJournalEntryIDs(ctx context.Context, journalEntryIDs []string) (map[string][]domain.Transaction, error) {
	result := make(map[string][]domain.Transaction, len(journalEntryIDs))
	if len(journalEntryIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id,
		         CASE ledger_id WHEN 'nominal' THEN 0 WHEN 'supplier' THEN 1 ELSE 2 END,
		         created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalEntryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions by journal entry IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		result[m.JournalEntryID] = append(result[m.JournalEntryID], mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return result, nil
}

// ListTransactions retrieves a page of transactions posted to one account, supplier or customer,
// newest first.
func (r *PgxJournalRepository) ListTransactions(ctx context.Context, ledger domain.Ledger, targetID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	var targetColumn string
	switch ledger {
	case domain.NominalLedger:
		targetColumn = "account_id"
	case domain.SupplierLedger:
		targetColumn = "supplier_id"
	case domain.CustomerLedger:
		targetColumn = "customer_id"
	default:
		return nil, nil, fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, ledger)
	}

	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ledger_id = $1 AND ` + targetColumn + ` = $2`
	args := []any{string(ledger), targetID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (transaction_date, created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for "+targetID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for "+targetID, err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for "+targetID, err)
	}

	var nextTokenVal *string
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		modelTxns = modelTxns[:limit]
	}

	return mapping.ToDomainTransactions(modelTxns), nextTokenVal, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
