package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func TestCurrencyPrecision(t *testing.T) {
	assert.Equal(t, 2, domain.CurrencyPrecision("USD"))
	assert.Equal(t, 2, domain.CurrencyPrecision("gbp"))
	assert.Equal(t, 0, domain.CurrencyPrecision("JPY"))
	assert.Equal(t, 3, domain.CurrencyPrecision("KWD"))
	assert.Equal(t, domain.DefaultCurrencyPrecision, domain.CurrencyPrecision("XYZ"))

	assert.Equal(t, domain.Currency{CurrencyCode: "JPY", Precision: 0}, domain.CurrencyFor("jpy"))
}

func TestFitsStoredScale(t *testing.T) {
	assert.True(t, domain.FitsStoredScale(decimal.RequireFromString("100")))
	assert.True(t, domain.FitsStoredScale(decimal.RequireFromString("0.0000000000000001")))
	assert.True(t, domain.FitsStoredScale(decimal.RequireFromString("1.50000000000000000000")), "trailing zeros are free")
	assert.False(t, domain.FitsStoredScale(decimal.RequireFromString("0.00000000000000001")))
	assert.False(t, domain.FitsStoredScale(decimal.RequireFromString("-12.12345678901234567")))
}
