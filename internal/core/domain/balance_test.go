package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func supplierRow(amountType domain.AmountType, amount string, supplierID string) domain.Transaction {
	txn := domain.Transaction{LedgerID: domain.SupplierLedger, SupplierID: stringPtr(supplierID)}
	if amountType == domain.Debit {
		txn.DebitAmount = d(amount)
	} else {
		txn.CreditAmount = d(amount)
	}
	return txn
}

func nominalRow(amountType domain.AmountType, amount string, accountID string) domain.Transaction {
	txn := domain.Transaction{LedgerID: domain.NominalLedger, AccountID: stringPtr(accountID)}
	if amountType == domain.Debit {
		txn.DebitAmount = d(amount)
	} else {
		txn.CreditAmount = d(amount)
	}
	return txn
}

func purchaseInvoice(gross string, payments ...string) *domain.Record {
	rec := &domain.Record{
		Kind:           domain.PurchaseRecord,
		RecordType:     domain.PurchaseInvoice,
		Status:         domain.StatusOutstanding,
		CounterpartyID: "cloudflare",
		GrossAmount:    d(gross),
		JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
			nominalRow(domain.Credit, gross, domain.AccountsPayableID),
			nominalRow(domain.Debit, gross, "web-hosting"),
			supplierRow(domain.Credit, gross, "cloudflare"),
		}},
	}
	for _, amount := range payments {
		rec.Payments = append(rec.Payments, domain.Record{
			Kind:       domain.PurchaseRecord,
			RecordType: domain.PurchaseInvoicePayment,
			JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
				nominalRow(domain.Debit, amount, domain.AccountsPayableID),
				nominalRow(domain.Credit, amount, "bank"),
				supplierRow(domain.Debit, amount, "cloudflare"),
			}},
		})
	}
	return rec
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name     string
		record   *domain.Record
		expected string
	}{
		{"no payments equals gross", purchaseInvoice("100"), "100"},
		{"partial payment", purchaseInvoice("100", "40"), "60"},
		{"two payments settle", purchaseInvoice("100", "40", "60"), "0"},
		{"overpayment goes negative", purchaseInvoice("100", "120"), "-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, domain.RemainingBalance(tt.record).Equal(d(tt.expected)),
				"got %s", domain.RemainingBalance(tt.record).String())
		})
	}
}

func TestRemainingBalance_SaleUsesCustomerLedger(t *testing.T) {
	rec := &domain.Record{
		Kind: domain.SaleRecord,
		JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
			{LedgerID: domain.CustomerLedger, CustomerID: stringPtr("acme"), CreditAmount: d("50")},
			supplierRow(domain.Credit, "999", "ignored"),
		}},
		Payments: []domain.Record{{
			JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
				{LedgerID: domain.CustomerLedger, CustomerID: stringPtr("acme"), DebitAmount: d("20")},
			}},
		}},
	}
	assert.True(t, domain.RemainingBalance(rec).Equal(d("30")))
}

func TestRemainingBalance_MissingJournalEntry(t *testing.T) {
	rec := &domain.Record{Kind: domain.PurchaseRecord}
	assert.True(t, domain.RemainingBalance(rec).IsZero())
}

func TestStatusForBalance(t *testing.T) {
	assert.Equal(t, domain.StatusPartiallyPaid, domain.StatusForBalance(decimal.NewFromInt(1)))
	assert.Equal(t, domain.StatusPaid, domain.StatusForBalance(decimal.Zero))
	assert.Equal(t, domain.StatusOverpaid, domain.StatusForBalance(decimal.NewFromInt(-1)))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, domain.StatusPaid, domain.InitialStatus(domain.InstantExpense))
	assert.Equal(t, domain.StatusPaid, domain.InitialStatus(domain.InstantSale))
	assert.Equal(t, domain.StatusOutstanding, domain.InitialStatus(domain.PurchaseInvoice))
	assert.Equal(t, domain.StatusOutstanding, domain.InitialStatus(domain.SalesInvoice))
	assert.Equal(t, domain.StatusNone, domain.InitialStatus(domain.PurchaseInvoicePayment))
}

func TestReconcileCounterpartyLedger(t *testing.T) {
	t.Run("outstanding invoice reconciles", func(t *testing.T) {
		assert.NoError(t, domain.ReconcileCounterpartyLedger(purchaseInvoice("100", "40")))
	})

	t.Run("paid invoice nets to zero", func(t *testing.T) {
		rec := purchaseInvoice("100", "40", "60")
		rec.Status = domain.StatusPaid
		assert.NoError(t, domain.ReconcileCounterpartyLedger(rec))
	})

	t.Run("paid invoice with balance left fails", func(t *testing.T) {
		rec := purchaseInvoice("100", "40")
		rec.Status = domain.StatusPaid
		assert.ErrorIs(t, domain.ReconcileCounterpartyLedger(rec), domain.ErrLedgerImbalance)
	})

	t.Run("payment crediting the supplier fails", func(t *testing.T) {
		rec := purchaseInvoice("100", "40")
		rec.Payments[0].JournalEntry.Transactions[2] = supplierRow(domain.Credit, "40", "cloudflare")
		assert.ErrorIs(t, domain.ReconcileCounterpartyLedger(rec), domain.ErrLedgerImbalance)
	})

	t.Run("row for another supplier fails", func(t *testing.T) {
		rec := purchaseInvoice("100", "40")
		rec.Payments[0].JournalEntry.Transactions[2] = supplierRow(domain.Debit, "40", "someone-else")
		assert.ErrorIs(t, domain.ReconcileCounterpartyLedger(rec), domain.ErrLedgerImbalance)
	})

	t.Run("gross mismatch fails", func(t *testing.T) {
		rec := purchaseInvoice("100")
		rec.GrossAmount = d("90")
		assert.ErrorIs(t, domain.ReconcileCounterpartyLedger(rec), domain.ErrLedgerImbalance)
	})
}

func TestControlAccountBalance(t *testing.T) {
	rec := purchaseInvoice("100", "40")
	assert.True(t, domain.ControlAccountBalance(rec, domain.AccountsPayableID).Equal(d("60")))
	assert.True(t, domain.ControlAccountBalance(rec, "unrelated").IsZero())

	sale := &domain.Record{
		Kind: domain.SaleRecord,
		JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
			nominalRow(domain.Debit, "80", domain.AccountsReceivableID),
		}},
		Payments: []domain.Record{{JournalEntry: &domain.JournalEntry{Transactions: []domain.Transaction{
			nominalRow(domain.Credit, "30", domain.AccountsReceivableID),
		}}}},
	}
	assert.True(t, domain.ControlAccountBalance(sale, domain.AccountsReceivableID).Equal(d("50")))
}
