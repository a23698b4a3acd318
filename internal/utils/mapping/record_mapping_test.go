package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func TestToModelRecord_CounterpartyColumn(t *testing.T) {
	purchase := domain.Record{RecordID: "r1", Kind: domain.PurchaseRecord, CounterpartyID: "cloudflare",
		JournalEntry: &domain.JournalEntry{JournalEntryID: "je1"}}
	m := ToModelRecord(purchase)
	require.NotNil(t, m.SupplierID)
	assert.Equal(t, "cloudflare", *m.SupplierID)
	assert.Nil(t, m.CustomerID)
	require.NotNil(t, m.JournalEntryID)
	assert.Equal(t, "je1", *m.JournalEntryID)

	sale := domain.Record{RecordID: "r2", Kind: domain.SaleRecord, CounterpartyID: "acme"}
	m = ToModelRecord(sale)
	require.NotNil(t, m.CustomerID)
	assert.Nil(t, m.SupplierID)
	assert.Nil(t, m.JournalEntryID)

	back := ToDomainRecord(m)
	assert.Equal(t, "acme", back.CounterpartyID)
	assert.Equal(t, domain.SaleRecord, back.Kind)
}

func TestToDomainTransaction(t *testing.T) {
	account := "web-hosting"
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d := domain.Transaction{
		TransactionID:   "t1",
		JournalEntryID:  "je1",
		LedgerID:        domain.NominalLedger,
		AccountID:       &account,
		DebitAmount:     decimal.NewFromInt(5),
		CreditAmount:    decimal.Zero,
		TransactionDate: ts,
	}
	assert.Equal(t, d, ToDomainTransaction(ToModelTransaction(d)))
}
