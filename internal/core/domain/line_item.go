package domain

import "github.com/shopspring/decimal"

// LineItem is one priced line of a purchase or sale.
type LineItem struct {
	LineItemID       string          `json:"lineItemID"`
	RecordID         string          `json:"recordID"`
	Description      string          `json:"description"`
	NominalAccountID string          `json:"nominalAccountID"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	VatAmount        decimal.Decimal `json:"vatAmount"`
}

// Gross is net plus VAT.
func (li LineItem) Gross() decimal.Decimal {
	return li.NetAmount.Add(li.VatAmount)
}
