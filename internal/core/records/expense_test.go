package records_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/records"
)

var txDate = time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sumSide(lines []domain.TransactionLine, side domain.AmountType) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.AmountType() == side {
			total = total.Add(l.Amount())
		}
	}
	return total
}

func findLine(t *testing.T, lines []domain.TransactionLine, targetID string) domain.TransactionLine {
	t.Helper()
	for _, l := range lines {
		if l.TargetID() == targetID {
			return l
		}
	}
	t.Fatalf("no line for %s", targetID)
	return domain.TransactionLine{}
}

func cloudflareArgs(rate string) records.ExpenseArgs {
	return records.ExpenseArgs{
		Date:               txDate,
		Supplier:           domain.Counterparty{ID: "cloudflare", Denomination: "USD"},
		PaymentAccountID:   "director-loan",
		VatInputsAccountID: "vat-inputs",
		ExchangeRate:       d(rate),
		Reference:          "INV-001",
	}
}

func TestInstantExpense_CloudflareScenario(t *testing.T) {
	model, err := records.NewInstantExpense(cloudflareArgs("1.2"))
	require.NoError(t, err)

	err = model.AddLineItem(domain.LineItem{NominalAccountID: "web-hosting", NetAmount: d("5"), VatAmount: d("1")})
	require.NoError(t, err)

	nominal := model.Journal().Transactions(domain.NominalLedger)
	supplier := model.Journal().Transactions(domain.SupplierLedger)
	assert.Len(t, nominal, 3)
	require.Len(t, supplier, 1)
	assert.Empty(t, model.Journal().Transactions(domain.CustomerLedger))

	assert.Equal(t, domain.Credit, supplier[0].AmountType())
	assert.True(t, supplier[0].Amount().Equal(d("6")), "supplier leg is not converted")
	assert.Equal(t, "cloudflare", supplier[0].TargetID())

	hosting := findLine(t, nominal, "web-hosting")
	assert.Equal(t, domain.Debit, hosting.AmountType())
	assert.True(t, hosting.Amount().Equal(d("5").Div(d("1.2"))))

	vat := findLine(t, nominal, "vat-inputs")
	assert.Equal(t, domain.Debit, vat.AmountType())
	assert.True(t, vat.Amount().Equal(d("1").Div(d("1.2"))))

	loan := findLine(t, nominal, "director-loan")
	assert.Equal(t, domain.Credit, loan.AmountType())
	assert.True(t, loan.Amount().Equal(d("6").Div(d("1.2"))))

	assert.True(t, sumSide(nominal, domain.Debit).Equal(sumSide(nominal, domain.Credit)))
	assert.Equal(t, domain.StatusPaid, model.Status())
	assert.True(t, model.LineItemsGross().Equal(d("6")))
}

func TestExpense_LineCountDependsOnVat(t *testing.T) {
	model, err := records.NewInstantExpense(cloudflareArgs("1"))
	require.NoError(t, err)

	require.NoError(t, model.AddLineItem(domain.LineItem{NominalAccountID: "web-hosting", NetAmount: d("10"), VatAmount: decimal.Zero}))
	assert.Equal(t, 3, model.Journal().Len())

	require.NoError(t, model.AddLineItem(domain.LineItem{NominalAccountID: "web-hosting", NetAmount: d("10"), VatAmount: d("2")}))
	assert.Equal(t, 7, model.Journal().Len())
}

func TestExpense_NominalStaysBalancedWithRecurringDecimals(t *testing.T) {
	model, err := records.NewInstantExpense(cloudflareArgs("3"))
	require.NoError(t, err)

	require.NoError(t, model.AddLineItems(
		domain.LineItem{NominalAccountID: "web-hosting", NetAmount: d("1"), VatAmount: d("1")},
		domain.LineItem{NominalAccountID: "software", NetAmount: d("0.7"), VatAmount: d("0.14")},
		domain.LineItem{NominalAccountID: "travel", NetAmount: d("100"), VatAmount: d("0")},
	))

	nominal := model.Journal().Transactions(domain.NominalLedger)
	assert.True(t, sumSide(nominal, domain.Debit).Equal(sumSide(nominal, domain.Credit)))
	assert.True(t, model.LineItemsGross().Equal(d("102.84")))
	assert.True(t, model.LineItemsGross().Equal(model.LineItemsGross()))
	assert.Len(t, model.LineItems(), 3)
}

func TestExpense_AddLineItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
	}{
		{"missing nominal account", domain.LineItem{NetAmount: d("1")}},
		{"negative net", domain.LineItem{NominalAccountID: "a", NetAmount: d("-1"), VatAmount: d("2")}},
		{"negative vat", domain.LineItem{NominalAccountID: "a", NetAmount: d("1"), VatAmount: d("-1")}},
		{"zero gross", domain.LineItem{NominalAccountID: "a"}},
		{"net beyond stored scale", domain.LineItem{NominalAccountID: "a", NetAmount: d("1.00000000000000001")}},
		{"vat beyond stored scale", domain.LineItem{NominalAccountID: "a", NetAmount: d("1"), VatAmount: d("0.12345678901234567")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := records.NewInstantExpense(cloudflareArgs("1"))
			require.NoError(t, err)
			err = model.AddLineItem(tt.item)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, 0, model.Journal().Len())
			assert.Empty(t, model.LineItems())
		})
	}
}

func TestNewExpense_Validation(t *testing.T) {
	noSupplier := cloudflareArgs("1")
	noSupplier.Supplier.ID = ""
	noDenomination := cloudflareArgs("1")
	noDenomination.Supplier.Denomination = ""
	noVat := cloudflareArgs("1")
	noVat.VatInputsAccountID = ""
	noDate := cloudflareArgs("1")
	noDate.Date = time.Time{}

	for name, args := range map[string]records.ExpenseArgs{
		"zero rate":       cloudflareArgs("0"),
		"negative rate":   cloudflareArgs("-1.2"),
		"rate too fine":   cloudflareArgs("1.00000000000000001"),
		"no supplier":     noSupplier,
		"no denomination": noDenomination,
		"no vat account":  noVat,
		"no date":         noDate,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := records.NewInstantExpense(args)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	_, err := records.NewPurchaseInvoice(cloudflareArgs("1"), txDate.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "due date before transaction date")
}

func TestPurchaseInvoice_BuildAndSave(t *testing.T) {
	due := txDate.AddDate(0, 1, 0)
	args := cloudflareArgs("1.25")
	args.PaymentAccountID = domain.AccountsPayableID
	model, err := records.NewPurchaseInvoice(args, due)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutstanding, model.Status())

	_, err = model.Build()
	assert.ErrorIs(t, err, apperrors.ErrValidation, "empty records cannot be built")

	require.NoError(t, model.AddLineItem(domain.LineItem{Description: "Pro plan", NominalAccountID: "web-hosting", NetAmount: d("100"), VatAmount: d("20")}))

	store := new(MockRecordRepository)
	store.On("CreateRecordWithJournal", mock.Anything, mock.AnythingOfType("domain.Record")).Return(nil).Once()

	record, err := model.Save(context.Background(), store)
	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.NotEmpty(t, record.RecordID)
	assert.Equal(t, domain.PurchaseRecord, record.Kind)
	assert.Equal(t, domain.PurchaseInvoice, record.RecordType)
	assert.Equal(t, domain.StatusOutstanding, record.Status)
	assert.Equal(t, "USD", record.Denomination)
	assert.Equal(t, "cloudflare", record.CounterpartyID)
	assert.Equal(t, "INV-001", record.Reference)
	require.NotNil(t, record.DueDate)
	assert.Equal(t, due, *record.DueDate)
	assert.True(t, record.GrossAmount.Equal(d("120")))
	assert.True(t, record.ExchangeRate.Equal(d("1.25")))

	require.Len(t, record.LineItems, 1)
	assert.Equal(t, record.RecordID, record.LineItems[0].RecordID)
	assert.NotEmpty(t, record.LineItems[0].LineItemID)

	require.NotNil(t, record.JournalEntry)
	require.Len(t, record.JournalEntry.Transactions, 5)
	for _, txn := range record.JournalEntry.Transactions {
		assert.Equal(t, record.JournalEntry.JournalEntryID, txn.JournalEntryID)
		assert.NotEmpty(t, txn.TransactionID)
		assert.NoError(t, txn.Validate())
	}
	assert.Equal(t, domain.SupplierLedger, record.JournalEntry.Transactions[4].LedgerID)

	assert.True(t, domain.RemainingBalance(record).Equal(record.GrossAmount), "balance after creation equals gross")
	assert.True(t, domain.ControlAccountBalance(record, domain.AccountsPayableID).Equal(d("96")))
}

func TestExpense_SavePropagatesPersistenceError(t *testing.T) {
	model, err := records.NewInstantExpense(cloudflareArgs("1"))
	require.NoError(t, err)
	require.NoError(t, model.AddLineItem(domain.LineItem{NominalAccountID: "web-hosting", NetAmount: d("1")}))

	store := new(MockRecordRepository)
	store.On("CreateRecordWithJournal", mock.Anything, mock.Anything).Return(apperrors.NewPersistenceError("insert failed", errors.New("boom")))

	record, err := model.Save(context.Background(), store)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}
