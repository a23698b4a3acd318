package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestTransactionLine_DebitCredit(t *testing.T) {
	debit := domain.NewNominalLine(domain.Debit, d("4.5"), testDate, "a")
	assert.True(t, debit.Debit().Equal(d("4.5")))
	assert.True(t, debit.Credit().IsZero())

	credit := domain.NewSupplierLine(domain.Credit, d("4.5"), testDate, "s")
	assert.True(t, credit.Credit().Equal(d("4.5")))
	assert.True(t, credit.Debit().IsZero())
	assert.Equal(t, domain.SupplierLedger, credit.Ledger())
}

func TestNewCounterpartyLine(t *testing.T) {
	line, err := domain.NewCounterpartyLine(domain.CustomerLedger, domain.Debit, d("1"), testDate, "acme")
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerLedger, line.Ledger())
	assert.Equal(t, "acme", line.TargetID())

	_, err = domain.NewCounterpartyLine(domain.NominalLedger, domain.Debit, d("1"), testDate, "acme")
	assert.Error(t, err)
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		wantErr     bool
	}{
		{
			name: "nominal row with account",
			transaction: domain.Transaction{
				LedgerID:    domain.NominalLedger,
				AccountID:   stringPtr("a"),
				DebitAmount: decimal.NewFromInt(10),
			},
		},
		{
			name: "supplier row with supplier",
			transaction: domain.Transaction{
				LedgerID:     domain.SupplierLedger,
				SupplierID:   stringPtr("s"),
				CreditAmount: decimal.NewFromInt(10),
			},
		},
		{
			name: "nominal row pointing at supplier",
			transaction: domain.Transaction{
				LedgerID:    domain.NominalLedger,
				SupplierID:  stringPtr("s"),
				DebitAmount: decimal.NewFromInt(10),
			},
			wantErr: true,
		},
		{
			name: "two targets",
			transaction: domain.Transaction{
				LedgerID:   domain.CustomerLedger,
				CustomerID: stringPtr("c"),
				AccountID:  stringPtr("a"),
			},
			wantErr: true,
		},
		{
			name: "no target",
			transaction: domain.Transaction{
				LedgerID: domain.CustomerLedger,
			},
			wantErr: true,
		},
		{
			name: "both sides set",
			transaction: domain.Transaction{
				LedgerID:     domain.NominalLedger,
				AccountID:    stringPtr("a"),
				DebitAmount:  decimal.NewFromInt(1),
				CreditAmount: decimal.NewFromInt(1),
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			transaction: domain.Transaction{
				LedgerID:    domain.NominalLedger,
				AccountID:   stringPtr("a"),
				DebitAmount: decimal.NewFromInt(-1),
			},
			wantErr: true,
		},
		{
			name: "unknown ledger",
			transaction: domain.Transaction{
				LedgerID:  domain.Ledger("general"),
				AccountID: stringPtr("a"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_TargetIDAndAmount(t *testing.T) {
	txn := domain.Transaction{LedgerID: domain.CustomerLedger, CustomerID: stringPtr("acme"), CreditAmount: d("3")}
	assert.Equal(t, "acme", txn.TargetID())
	assert.Equal(t, domain.Credit, txn.AmountType())
	assert.True(t, txn.Amount().Equal(d("3")))
}
