package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Ids of the accounts seeded by the initial migrations. Deployments may point
// the presets elsewhere through configuration.
const (
	AccountsPayableID    = "accounts-payable"
	AccountsReceivableID = "accounts-receivable"
	VatInputsID          = "vat-inputs"
	VatOutputsID         = "vat-outputs"
	ExchangeGainLossID   = "exchange-gain-loss"
)

// Account is a nominal ledger account.
type Account struct {
	AccountID    string      `json:"accountID"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"`
	Description  string      `json:"description"`
	IsActive     bool        `json:"isActive"`
	AuditFields
}
