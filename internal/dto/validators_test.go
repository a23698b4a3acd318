package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

type amounts struct {
	Positive    decimal.Decimal `validate:"dgt=0"`
	NonNegative decimal.Decimal `validate:"dgte=0"`
}

func TestDecimalValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerDecimalValidators(v))

	tests := []struct {
		name        string
		positive    string
		nonNegative string
		wantErr     bool
	}{
		{"both valid", "0.01", "0", false},
		{"zero is not positive", "0", "0", true},
		{"negative is not positive", "-1", "5", true},
		{"negative is not non-negative", "1", "-0.0001", true},
		{"large values", "123456789.123456789", "99", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(amounts{
				Positive:    decimal.RequireFromString(tt.positive),
				NonNegative: decimal.RequireFromString(tt.nonNegative),
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecimalScaleValidator(t *testing.T) {
	type scaled struct {
		Amount decimal.Decimal `validate:"dscale=16"`
	}
	v := validator.New()
	require.NoError(t, registerDecimalValidators(v))

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"integer", "100", false},
		{"sixteen places", "0.1234567890123456", false},
		{"trailing zeros beyond sixteen", "1.25000000000000000000", false},
		{"seventeen places", "0.12345678901234567", true},
		{"negative seventeen places", "-1.00000000000000001", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(scaled{Amount: decimal.RequireFromString(tt.amount)})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayInvoiceRequestValidation(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerDecimalValidators(v))

	req := PayInvoiceRequest{
		PaymentAccountID: "bank",
		Date:             testDate,
		Amount:           decimal.RequireFromString("100"),
		ExchangeRate:     decimal.RequireFromString("1.1"),
	}
	assert.NoError(t, v.Struct(req))

	req.ExchangeRate = decimal.Zero
	assert.Error(t, v.Struct(req))

	req.ExchangeRate = decimal.RequireFromString("1.1")
	req.Amount = decimal.RequireFromString("100.00000000000000001")
	assert.Error(t, v.Struct(req), "Postgres would round this amount")
}
