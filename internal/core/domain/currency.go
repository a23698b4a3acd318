package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyPrecision is used for currencies missing from the precision table.
const DefaultCurrencyPrecision = 2

// MaxStoredScale is the number of fractional digits kept for amounts and rates
// by the NUMERIC(38, 16) columns.
const MaxStoredScale int32 = 16

// FitsStoredScale reports whether d can be stored without being rounded.
// Trailing zeros do not count.
func FitsStoredScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MaxStoredScale))
}

// Currency describes how amounts in a currency are rendered.
type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	Precision    int    `json:"precision"` // Number of minor units
}

var currencyPrecision = map[string]int{
	"USD": 2, "EUR": 2, "GBP": 2, "CHF": 2, "CAD": 2, "AUD": 2, "NZD": 2,
	"CNY": 2, "INR": 2, "HKD": 2, "SGD": 2, "SEK": 2, "NOK": 2, "DKK": 2,
	"PLN": 2, "CZK": 2, "ZAR": 2, "MXN": 2, "BRL": 2,
	"JPY": 0, "KRW": 0, "VND": 0, "CLP": 0, "ISK": 0,
	"BHD": 3, "KWD": 3, "OMR": 3, "JOD": 3, "TND": 3,
}

// CurrencyPrecision returns the number of minor units for an ISO 4217 code.
func CurrencyPrecision(code string) int {
	if p, ok := currencyPrecision[strings.ToUpper(code)]; ok {
		return p
	}
	return DefaultCurrencyPrecision
}

// CurrencyFor builds a Currency from its code.
func CurrencyFor(code string) Currency {
	code = strings.ToUpper(code)
	return Currency{CurrencyCode: code, Precision: CurrencyPrecision(code)}
}
