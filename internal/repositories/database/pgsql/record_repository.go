package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	"github.com/woodybriggs/ledger/internal/models"
	"github.com/woodybriggs/ledger/internal/utils/mapping"
	"github.com/woodybriggs/ledger/internal/utils/pagination"
)

type PgxRecordRepository struct {
	BaseRepository
	journalRepo *PgxJournalRepository
}

// newPgxRecordRepository creates a new repository for purchase and sale records.
func newPgxRecordRepository(pool *pgxpool.Pool, journalRepo *PgxJournalRepository) *PgxRecordRepository {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
		journalRepo:    journalRepo,
	}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryWithTx
var _ portsrepo.RecordRepositoryWithTx = (*PgxRecordRepository)(nil)

const recordColumns = `record_id, kind, record_type, status, reference, transaction_date, due_date, denomination,
	exchange_rate, gross_amount, supplier_id, customer_id, invoice_id, journal_entry_id, created_at, last_updated_at`

func scanRecord(row pgx.Row) (models.Record, error) {
	var m models.Record
	err := row.Scan(
		&m.RecordID,
		&m.Kind,
		&m.RecordType,
		&m.Status,
		&m.Reference,
		&m.TransactionDate,
		&m.DueDate,
		&m.Denomination,
		&m.ExchangeRate,
		&m.GrossAmount,
		&m.SupplierID,
		&m.CustomerID,
		&m.InvoiceID,
		&m.JournalEntryID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// CreateRecordWithJournal inserts the journal entry, the record, every transaction
// row and every line item inside one database transaction. Nothing is left behind
// if any statement fails.
func (r *PgxRecordRepository) CreateRecordWithJournal(ctx context.Context, record domain.Record) error {
	if record.JournalEntry == nil {
		return fmt.Errorf("%w: record %s has no journal entry", apperrors.ErrValidation, record.RecordID)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}

	// 1. Journal entry header, transaction rows queued on the batch
	if err := insertJournalEntry(ctx, tx, batch, *record.JournalEntry); err != nil {
		return err
	}

	// 2. The record itself, pointing at its journal entry
	m := mapping.ToModelRecord(record)
	_, err = tx.Exec(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`,
		m.RecordID,
		m.Kind,
		m.RecordType,
		m.Status,
		m.Reference,
		m.TransactionDate,
		m.DueDate,
		m.Denomination,
		m.ExchangeRate,
		m.GrossAmount,
		m.SupplierID,
		m.CustomerID,
		m.InvoiceID,
		m.JournalEntryID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError("failed to insert record "+m.RecordID, err)
	}

	// 3. Line items
	lineItemQuery := `
		INSERT INTO line_items (line_item_id, record_id, position, description, nominal_account_id, net_amount, vat_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, li := range record.LineItems {
		ml := mapping.ToModelLineItem(li, i)
		batch.Queue(lineItemQuery, ml.LineItemID, ml.RecordID, ml.Position, ml.Description, ml.NominalAccountID, ml.NetAmount, ml.VatAmount)
	}

	// 4. Send the batch and close it to surface the first failing statement
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateWriteError("failed to execute transaction batch for record "+m.RecordID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateRecordStatus sets the settlement status of a record.
func (r *PgxRecordRepository) UpdateRecordStatus(ctx context.Context, recordID string, status domain.RecordStatus, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE records SET status = $1, last_updated_at = $2
		WHERE record_id = $3;
	`, string(status), updatedAt, recordID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update status of record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: record %s", apperrors.ErrNotFound, recordID)
	}
	return nil
}

// FindRecordByID retrieves a record, optionally with its line items, journal entry and payments.
func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string, withRelations bool) (*domain.Record, error) {
	m, err := scanRecord(r.Pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM records WHERE record_id = $1;`, recordID))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: record %s", apperrors.ErrNotFound, recordID)
		}
		return nil, apperrors.NewAppError(500, "failed to find record "+recordID, err)
	}

	record := mapping.ToDomainRecord(m)
	if !withRelations {
		return &record, nil
	}
	if err := r.loadRelations(ctx, &record, m.JournalEntryID); err != nil {
		return nil, err
	}
	return &record, nil
}

// loadRelations attaches line items, payments, and the journal entries of the
// record and of every payment, using one query per table.
func (r *PgxRecordRepository) loadRelations(ctx context.Context, record *domain.Record, journalEntryID *string) error {
	lineItems, err := r.findLineItems(ctx, record.RecordID)
	if err != nil {
		return err
	}
	record.LineItems = lineItems

	payments, paymentEntryIDs, err := r.findPayments(ctx, record.RecordID)
	if err != nil {
		return err
	}

	entryIDs := make([]string, 0, len(payments)+1)
	if journalEntryID != nil {
		entryIDs = append(entryIDs, *journalEntryID)
	}
	for _, id := range paymentEntryIDs {
		if id != nil {
			entryIDs = append(entryIDs, *id)
		}
	}

	entries, err := r.journalRepo.findJournalEntriesByIDs(ctx, entryIDs)
	if err != nil {
		return err
	}

	if journalEntryID != nil {
		record.JournalEntry = entries[*journalEntryID]
	}
	for i := range payments {
		if paymentEntryIDs[i] != nil {
			payments[i].JournalEntry = entries[*paymentEntryIDs[i]]
		}
	}
	record.Payments = payments
	return nil
}

func (r *PgxRecordRepository) findLineItems(ctx context.Context, recordID string) ([]domain.LineItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT line_item_id, record_id, position, description, nominal_account_id, net_amount, vat_amount
		FROM line_items
		WHERE record_id = $1
		ORDER BY position;
	`, recordID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for record "+recordID, err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(&m.LineItemID, &m.RecordID, &m.Position, &m.Description, &m.NominalAccountID, &m.NetAmount, &m.VatAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row", err)
		}
		items = append(items, mapping.ToDomainLineItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows", err)
	}
	return items, nil
}

// findPayments returns the payments made against an invoice, oldest first, with
// the journal entry id of each at the same index.
func (r *PgxRecordRepository) findPayments(ctx context.Context, invoiceID string) ([]domain.Record, []*string, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE invoice_id = $1
		ORDER BY transaction_date, created_at;
	`, invoiceID)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for invoice "+invoiceID, err)
	}
	defer rows.Close()

	var payments []domain.Record
	var entryIDs []*string
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainRecord(m))
		entryIDs = append(entryIDs, m.JournalEntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, entryIDs, nil
}

// ListRecordsByCounterparty lists records of one kind, newest first, optionally
// narrowed to a single supplier or customer.
func (r *PgxRecordRepository) ListRecordsByCounterparty(ctx context.Context, kind domain.RecordKind, counterpartyID string, limit int, nextToken *string) ([]domain.Record, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + recordColumns + ` FROM records WHERE kind = $1`
	args := []any{string(kind)}

	if counterpartyID != "" {
		column := "supplier_id"
		if kind == domain.SaleRecord {
			column = "customer_id"
		}
		args = append(args, counterpartyID)
		query += ` AND ` + column + ` = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (transaction_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query records", err)
	}
	defer rows.Close()

	modelRecords := make([]models.Record, 0, fetchLimit)
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan record row", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating record rows", err)
	}

	var nextTokenVal *string
	if len(modelRecords) > limit {
		last := modelRecords[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		modelRecords = modelRecords[:limit]
	}

	records := make([]domain.Record, len(modelRecords))
	for i, m := range modelRecords {
		records[i] = mapping.ToDomainRecord(m)
	}
	return records, nextTokenVal, nil
}
