package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignedNet(t *testing.T) {
	tests := []struct {
		name        string
		debit       string
		credit      string
		accountType domain.AccountType
		want        string
	}{
		{"debit to asset", "100", "0", domain.Asset, "100"},
		{"credit to asset", "0", "40", domain.Asset, "-40"},
		{"mixed expense", "100", "30", domain.Expense, "70"},
		{"debit to liability", "100", "0", domain.Liability, "-100"},
		{"credit to liability", "0", "40", domain.Liability, "40"},
		{"credit to income", "0", "40", domain.Income, "40"},
		{"debit to equity", "100", "0", domain.Equity, "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignedNet(d(tt.debit), d(tt.credit), tt.accountType)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSignedNet_UnknownType(t *testing.T) {
	_, err := SignedNet(decimal.Zero, decimal.Zero, domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestSumLedger(t *testing.T) {
	txns := []domain.Transaction{
		{LedgerID: domain.NominalLedger, DebitAmount: d("10"), CreditAmount: decimal.Zero},
		{LedgerID: domain.NominalLedger, DebitAmount: decimal.Zero, CreditAmount: d("10")},
		{LedgerID: domain.SupplierLedger, DebitAmount: decimal.Zero, CreditAmount: d("12")},
	}

	debit, credit := SumLedger(txns, domain.NominalLedger)
	assert.True(t, d("10").Equal(debit))
	assert.True(t, d("10").Equal(credit))

	debit, credit = SumLedger(txns, domain.SupplierLedger)
	assert.True(t, debit.IsZero())
	assert.True(t, d("12").Equal(credit))
}
