package models

import "github.com/shopspring/decimal"

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID string           `db:"journal_entry_id"`
	ExchangeRate   *decimal.Decimal `db:"exchange_rate"`
	AuditFields
}
