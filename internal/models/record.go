package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record represents a row of the records table.
type Record struct {
	RecordID        string          `db:"record_id"`
	Kind            string          `db:"kind"`
	RecordType      string          `db:"record_type"`
	Status          string          `db:"status"`
	Reference       string          `db:"reference"`
	TransactionDate time.Time       `db:"transaction_date"`
	DueDate         *time.Time      `db:"due_date"` // Nullable, invoices only
	Denomination    string          `db:"denomination"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	GrossAmount     decimal.Decimal `db:"gross_amount"`
	SupplierID      *string         `db:"supplier_id"`
	CustomerID      *string         `db:"customer_id"`
	InvoiceID       *string         `db:"invoice_id"` // Nullable, payments only
	JournalEntryID  *string         `db:"journal_entry_id"`
	AuditFields
}

// LineItem represents a row of the line_items table.
type LineItem struct {
	LineItemID       string          `db:"line_item_id"`
	RecordID         string          `db:"record_id"`
	Position         int             `db:"position"`
	Description      string          `db:"description"`
	NominalAccountID string          `db:"nominal_account_id"`
	NetAmount        decimal.Decimal `db:"net_amount"`
	VatAmount        decimal.Decimal `db:"vat_amount"`
}
