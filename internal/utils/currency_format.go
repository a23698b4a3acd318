package utils

import (
	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.345 with GBP (precision 2) returns "12.35"
// Example: amount 12.5 with JPY (precision 0) returns "13"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision formats an amount with the given precision, rounding half away from zero.
// Trailing zeros are kept so every amount of a currency has the same number of decimals.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount using the minor-unit precision of currencyCode.
// Unknown codes use the default precision.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	return FormatWithCurrencyPrecision(amount, domain.CurrencyFor(currencyCode))
}
