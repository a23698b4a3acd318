package dto

import (
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/utils"
)

// TrialBalanceParams bounds the period of a trial balance, both dates inclusive.
type TrialBalanceParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string             `json:"accountID"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       string             `json:"debit"`
	Credit      string             `json:"credit"`
	Net         string             `json:"net"`
}

type TrialBalanceTotals struct {
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	From     string                    `json:"from"`
	To       string                    `json:"to"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   TrialBalanceTotals        `json:"totals"`
	Balanced bool                      `json:"balanced"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response.
// Nominal amounts are rendered at the default currency precision.
func ToTrialBalanceResponse(tb *domain.TrialBalance, from, to time.Time) TrialBalanceResponse {
	format := func(row domain.TrialBalanceRow) TrialBalanceRowResponse {
		return TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       utils.FormatWithPrecision(row.DebitTotal, domain.DefaultCurrencyPrecision),
			Credit:      utils.FormatWithPrecision(row.CreditTotal, domain.DefaultCurrencyPrecision),
			Net:         utils.FormatWithPrecision(row.Net, domain.DefaultCurrencyPrecision),
		}
	}

	res := TrialBalanceResponse{
		From:     formatDate(from),
		To:       formatDate(to),
		Rows:     make([]TrialBalanceRowResponse, len(tb.Rows)),
		Balanced: tb.Balanced(),
		Totals: TrialBalanceTotals{
			Debit:  utils.FormatWithPrecision(tb.DebitTotal, domain.DefaultCurrencyPrecision),
			Credit: utils.FormatWithPrecision(tb.CreditTotal, domain.DefaultCurrencyPrecision),
		},
	}
	for i, row := range tb.Rows {
		res.Rows[i] = format(row)
	}
	return res
}
