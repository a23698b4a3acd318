package records

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

// SaleArgs are the inputs shared by instant sales and sales invoices.
// For a sales invoice ReceiptAccountID is the accounts receivable control account.
type SaleArgs struct {
	Date                time.Time
	Customer            domain.Counterparty
	ReceiptAccountID    string
	VatOutputsAccountID string
	ExchangeRate        decimal.Decimal
	Reference           string
}

// SaleRecordModel posts sales against a customer. It mirrors ExpenseRecordModel
// with the nominal sides swapped.
type SaleRecordModel struct {
	recordModel
}

func NewInstantSale(args SaleArgs) (*SaleRecordModel, error) {
	return newSale(domain.InstantSale, args, nil)
}

func NewSalesInvoice(args SaleArgs, dueDate time.Time) (*SaleRecordModel, error) {
	return newSale(domain.SalesInvoice, args, &dueDate)
}

func newSale(recordType domain.RecordType, args SaleArgs, dueDate *time.Time) (*SaleRecordModel, error) {
	base, err := newRecordModel(recordType, args.Date, args.Customer, args.ReceiptAccountID, args.VatOutputsAccountID, args.ExchangeRate, args.Reference, dueDate)
	if err != nil {
		return nil, err
	}
	return &SaleRecordModel{recordModel: base}, nil
}
