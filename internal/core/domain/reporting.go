package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account's nominal ledger totals over a period.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Net         decimal.Decimal `json:"net"` // Signed by account type
}

// TrialBalance holds the rows for a period along with their grand totals.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	DebitTotal  decimal.Decimal   `json:"debitTotal"`
	CreditTotal decimal.Decimal   `json:"creditTotal"`
}

// Balanced reports whether total debits equal total credits.
func (tb TrialBalance) Balanced() bool {
	return tb.DebitTotal.Equal(tb.CreditTotal)
}
