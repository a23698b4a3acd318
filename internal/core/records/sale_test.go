package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/records"
)

func acmeArgs(rate string) records.SaleArgs {
	return records.SaleArgs{
		Date:                txDate,
		Customer:            domain.Counterparty{ID: "acme", Denomination: "EUR"},
		ReceiptAccountID:    "bank",
		VatOutputsAccountID: "vat-outputs",
		ExchangeRate:        d(rate),
	}
}

func TestInstantSale_MirrorsExpense(t *testing.T) {
	model, err := records.NewInstantSale(acmeArgs("1.15"))
	require.NoError(t, err)
	require.NoError(t, model.AddLineItem(domain.LineItem{NominalAccountID: "consulting", NetAmount: d("100"), VatAmount: d("20")}))

	assert.Equal(t, domain.StatusPaid, model.Status())
	assert.Empty(t, model.Journal().Transactions(domain.SupplierLedger))

	customer := model.Journal().Transactions(domain.CustomerLedger)
	require.Len(t, customer, 1)
	assert.Equal(t, domain.Credit, customer[0].AmountType())
	assert.True(t, customer[0].Amount().Equal(d("120")))

	nominal := model.Journal().Transactions(domain.NominalLedger)
	require.Len(t, nominal, 3)
	assert.Equal(t, domain.Debit, findLine(t, nominal, "bank").AmountType())
	assert.Equal(t, domain.Credit, findLine(t, nominal, "consulting").AmountType())
	assert.Equal(t, domain.Credit, findLine(t, nominal, "vat-outputs").AmountType())
	assert.True(t, findLine(t, nominal, "consulting").Amount().Equal(d("100").Div(d("1.15"))))
	assert.True(t, sumSide(nominal, domain.Debit).Equal(sumSide(nominal, domain.Credit)))
}

func TestSalesInvoice_Build(t *testing.T) {
	args := acmeArgs("1")
	args.ReceiptAccountID = domain.AccountsReceivableID
	model, err := records.NewSalesInvoice(args, txDate.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.NoError(t, model.AddLineItem(domain.LineItem{NominalAccountID: "consulting", NetAmount: d("50")}))

	record, err := model.Build()
	require.NoError(t, err)
	assert.Equal(t, domain.SaleRecord, record.Kind)
	assert.Equal(t, domain.SalesInvoice, record.RecordType)
	assert.Equal(t, domain.StatusOutstanding, record.Status)
	assert.True(t, domain.RemainingBalance(record).Equal(d("50")))
	assert.True(t, domain.ControlAccountBalance(record, domain.AccountsReceivableID).Equal(d("50")))
	assert.NoError(t, domain.ReconcileCounterpartyLedger(record))
}
