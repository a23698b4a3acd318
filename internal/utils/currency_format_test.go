package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"GBP rounds half up", "12.345", "GBP", "12.35"},
		{"GBP keeps trailing zeros", "10", "GBP", "10.00"},
		{"negative rounds away from zero", "-12.345", "GBP", "-12.35"},
		{"JPY has no minor unit", "12.5", "JPY", "13"},
		{"KWD has three decimals", "1.23456", "KWD", "1.235"},
		{"lowercase code", "1.005", "usd", "1.01"},
		{"unknown code defaults to two", "3.14159", "XXX", "3.14"},
		{"recurring division", "100", "EUR", "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatAmount(amount, tt.currency))
		})
	}
}

func TestFormatAmount_DivisionResult(t *testing.T) {
	// 100 / 3 carries sixteen fractional digits until it is formatted
	amount := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	assert.Equal(t, "33.33", FormatAmount(amount, "GBP"))
	assert.Equal(t, "33", FormatAmount(amount, "JPY"))
}
