package records

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

// ExpenseArgs are the inputs shared by instant expenses and purchase invoices.
// For a purchase invoice PaymentAccountID is the accounts payable control account.
type ExpenseArgs struct {
	Date               time.Time
	Supplier           domain.Counterparty
	PaymentAccountID   string
	VatInputsAccountID string
	ExchangeRate       decimal.Decimal
	Reference          string
}

// ExpenseRecordModel posts purchases against a supplier.
type ExpenseRecordModel struct {
	recordModel
}

// NewInstantExpense creates a purchase settled on the spot. It is Paid from creation.
func NewInstantExpense(args ExpenseArgs) (*ExpenseRecordModel, error) {
	return newExpense(domain.InstantExpense, args, nil)
}

// NewPurchaseInvoice creates a purchase owed to the supplier until dueDate.
func NewPurchaseInvoice(args ExpenseArgs, dueDate time.Time) (*ExpenseRecordModel, error) {
	return newExpense(domain.PurchaseInvoice, args, &dueDate)
}

func newExpense(recordType domain.RecordType, args ExpenseArgs, dueDate *time.Time) (*ExpenseRecordModel, error) {
	base, err := newRecordModel(recordType, args.Date, args.Supplier, args.PaymentAccountID, args.VatInputsAccountID, args.ExchangeRate, args.Reference, dueDate)
	if err != nil {
		return nil, err
	}
	return &ExpenseRecordModel{recordModel: base}, nil
}
