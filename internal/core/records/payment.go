package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

// FXResult classifies the realised exchange difference on a payment.
type FXResult string

const (
	FXNone FXResult = "NONE"
	FXGain FXResult = "GAIN"
	FXLoss FXResult = "LOSS"
)

// PaymentArgs are the inputs for settling an invoice. ControlAccountID is the
// accounts payable or receivable account the invoice was posted to.
type PaymentArgs struct {
	Date             time.Time
	Counterparty     domain.Counterparty
	PaymentAccountID string
	ControlAccountID string
	InvoiceID        string
	Reference        string
}

// PaymentOutcome describes a posted payment and its effect on the invoice.
type PaymentOutcome struct {
	Payment          *domain.Record
	Invoice          *domain.Record // reloaded with every payment including this one; nil if that failed
	RemainingBalance decimal.Decimal
	FX               FXResult
	FXAmount         decimal.Decimal // absolute, nominal currency
}

// PaymentCommittedError is returned when the payment record and its journal
// entry were stored but updating the invoice afterwards failed. The payment
// exists and must not be posted again.
type PaymentCommittedError struct {
	PaymentID string
	InvoiceID string
	Err       error
}

func (e *PaymentCommittedError) Error() string {
	return fmt.Sprintf("payment %s for invoice %s was posted but the invoice was not updated: %v", e.PaymentID, e.InvoiceID, e.Err)
}

func (e *PaymentCommittedError) Unwrap() error {
	return e.Err
}

// InvoicePaymentModel settles all or part of a purchase or sales invoice.
type InvoicePaymentModel struct {
	kind    domain.RecordKind
	args    PaymentArgs
	journal *domain.Journal
	posted  bool
}

// NewPurchaseInvoicePayment pays a supplier against a purchase invoice.
func NewPurchaseInvoicePayment(args PaymentArgs) (*InvoicePaymentModel, error) {
	return newPayment(domain.PurchaseRecord, args)
}

// NewSalesInvoiceReceipt receives a customer's payment against a sales invoice.
func NewSalesInvoiceReceipt(args PaymentArgs) (*InvoicePaymentModel, error) {
	return newPayment(domain.SaleRecord, args)
}

func newPayment(kind domain.RecordKind, args PaymentArgs) (*InvoicePaymentModel, error) {
	if args.Date.IsZero() {
		return nil, fmt.Errorf("%w: payment date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(args.InvoiceID) == "" {
		return nil, fmt.Errorf("%w: invoice id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(args.Counterparty.ID) == "" {
		return nil, fmt.Errorf("%w: counterparty id is required", apperrors.ErrValidation)
	}
	if args.PaymentAccountID == "" || args.ControlAccountID == "" {
		return nil, fmt.Errorf("%w: payment and control accounts are required", apperrors.ErrValidation)
	}
	return &InvoicePaymentModel{kind: kind, args: args, journal: domain.NewJournal()}, nil
}

func (m *InvoicePaymentModel) recordType() domain.RecordType {
	if m.kind == domain.SaleRecord {
		return domain.SalesInvoicePayment
	}
	return domain.PurchaseInvoicePayment
}

func (m *InvoicePaymentModel) invoiceType() domain.RecordType {
	if m.kind == domain.SaleRecord {
		return domain.SalesInvoice
	}
	return domain.PurchaseInvoice
}

// Journal exposes the postings made by Pay.
func (m *InvoicePaymentModel) Journal() *domain.Journal {
	return m.journal
}

// Pay posts a payment of amount (counterparty currency) made at rate against the
// invoice, persists it, and moves the invoice to the status its remaining
// balance implies. The difference between the invoice's rate and this one is
// realised against gainLossAccountID.
func (m *InvoicePaymentModel) Pay(ctx context.Context, store portsrepo.RecordRepositoryFacade, amount, rate decimal.Decimal, gainLossAccountID string) (*PaymentOutcome, error) {
	if m.posted {
		return nil, fmt.Errorf("%w: payment has already been posted", apperrors.ErrConflict)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, rate.String())
	}
	if !domain.FitsStoredScale(amount) || !domain.FitsStoredScale(rate) {
		return nil, fmt.Errorf("%w: amount and rate are limited to %d decimal places", apperrors.ErrValidation, domain.MaxStoredScale)
	}
	if strings.TrimSpace(gainLossAccountID) == "" {
		return nil, fmt.Errorf("%w: exchange gain/loss account is required", apperrors.ErrValidation)
	}

	invoice, err := m.loadInvoice(ctx, store)
	if err != nil {
		return nil, err
	}

	nominal := amount.Div(rate)
	equivalent := amount.Div(invoice.ExchangeRate)

	fx, fxAmount, lines := m.postings(amount, nominal, equivalent, gainLossAccountID)
	if err := m.journal.AddTransactions(lines...); err != nil {
		return nil, err
	}

	ts := now()
	reference := m.args.Reference
	if reference == "" {
		reference = invoice.Reference
	}
	invoiceID := invoice.RecordID
	payment := &domain.Record{
		RecordID:        uuid.NewString(),
		Kind:            m.kind,
		RecordType:      m.recordType(),
		Status:          domain.InitialStatus(m.recordType()),
		Reference:       reference,
		TransactionDate: m.args.Date,
		Denomination:    invoice.Denomination,
		ExchangeRate:    rate,
		GrossAmount:     amount,
		CounterpartyID:  invoice.CounterpartyID,
		InvoiceID:       &invoiceID,
		JournalEntry:    buildJournalEntry(m.journal, &rate, ts),
		AuditFields:     domain.NewAuditFields(ts),
	}

	if err := store.CreateRecordWithJournal(ctx, *payment); err != nil {
		return nil, err
	}
	m.posted = true

	outcome := &PaymentOutcome{Payment: payment, FX: fx, FXAmount: fxAmount}
	committed := func(err error) error {
		return &PaymentCommittedError{PaymentID: payment.RecordID, InvoiceID: invoiceID, Err: err}
	}

	// From here on a failure returns the partial outcome with the error.
	invoice, err = store.FindRecordByID(ctx, invoiceID, true)
	if err != nil {
		return outcome, committed(fmt.Errorf("reloading invoice: %w", err))
	}

	balance := domain.RemainingBalance(invoice)
	status := domain.StatusForBalance(balance)
	if err := store.UpdateRecordStatus(ctx, invoiceID, status, ts); err != nil {
		return outcome, committed(fmt.Errorf("updating invoice status: %w", err))
	}
	invoice.Status = status
	invoice.LastUpdatedAt = ts

	outcome.Invoice = invoice
	outcome.RemainingBalance = balance
	return outcome, nil
}

func (m *InvoicePaymentModel) loadInvoice(ctx context.Context, store portsrepo.RecordReader) (*domain.Record, error) {
	invoice, err := store.FindRecordByID(ctx, m.args.InvoiceID, true)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, m.args.InvoiceID)
		}
		return nil, err
	}
	if invoice.RecordType != m.invoiceType() {
		return nil, fmt.Errorf("%w: %s %s is not a %s", apperrors.ErrNotFound, invoice.RecordType, invoice.RecordID, m.invoiceType())
	}
	if invoice.JournalEntry == nil {
		return nil, fmt.Errorf("%w: journal entry for invoice %s", apperrors.ErrNotFound, invoice.RecordID)
	}
	if invoice.CounterpartyID != m.args.Counterparty.ID {
		return nil, fmt.Errorf("%w: invoice %s belongs to a different counterparty", apperrors.ErrValidation, invoice.RecordID)
	}
	if m.args.Counterparty.Denomination != "" && !strings.EqualFold(invoice.Denomination, m.args.Counterparty.Denomination) {
		return nil, fmt.Errorf("%w: payment denomination %s does not match invoice denomination %s",
			apperrors.ErrValidation, m.args.Counterparty.Denomination, invoice.Denomination)
	}
	if !invoice.ExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: invoice %s has no exchange rate", apperrors.ErrInternal, invoice.RecordID)
	}
	return invoice, nil
}

// postings builds the payment's lines. The control account is cleared at the
// invoice's rate, the payment account moves at today's rate, and the gap lands
// on the gain/loss account.
func (m *InvoicePaymentModel) postings(amount, nominal, equivalent decimal.Decimal, gainLossAccountID string) (FXResult, decimal.Decimal, []domain.TransactionLine) {
	date := m.args.Date
	controlSide, paymentSide := domain.Debit, domain.Credit
	diff := equivalent.Sub(nominal)
	if m.kind == domain.SaleRecord {
		controlSide, paymentSide = domain.Credit, domain.Debit
		diff = nominal.Sub(equivalent)
	}

	ledger := m.kind.CounterpartyLedger()
	counterpartyLine, _ := domain.NewCounterpartyLine(ledger, domain.Debit, amount, date, m.args.Counterparty.ID)

	lines := []domain.TransactionLine{
		domain.NewNominalLine(controlSide, equivalent, date, m.args.ControlAccountID),
		domain.NewNominalLine(paymentSide, nominal, date, m.args.PaymentAccountID),
	}

	fx := FXNone
	switch diff.Sign() {
	case 1:
		fx = FXGain
		lines = append(lines, domain.NewNominalLine(domain.Credit, diff, date, gainLossAccountID))
	case -1:
		fx = FXLoss
		lines = append(lines, domain.NewNominalLine(domain.Debit, diff.Abs(), date, gainLossAccountID))
	}

	return fx, diff.Abs(), append(lines, counterpartyLine)
}
