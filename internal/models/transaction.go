package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table. Exactly one of
// AccountID, SupplierID and CustomerID is set, enforced by a CHECK constraint.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalEntryID  string          `db:"journal_entry_id"`
	LedgerID        string          `db:"ledger_id"`
	AccountID       *string         `db:"account_id"`
	SupplierID      *string         `db:"supplier_id"`
	CustomerID      *string         `db:"customer_id"`
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
