package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

// SignedNet nets a debit and a credit total for an account of the given type.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func SignedNet(debit, credit decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// SumLedger returns the debit and credit totals of the given rows on one ledger.
func SumLedger(transactions []domain.Transaction, ledger domain.Ledger) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		if txn.LedgerID != ledger {
			continue
		}
		debit = debit.Add(txn.DebitAmount)
		credit = credit.Add(txn.CreditAmount)
	}
	return debit, credit
}
