// Package records turns purchase and sale business events into balanced
// journal postings and persists them through the record repository port.
package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// recordModel holds what expenses and sales share. The two differ only in which
// side of the nominal ledger the settlement account sits on.
type recordModel struct {
	recordType          domain.RecordType
	date                time.Time
	dueDate             *time.Time
	counterparty        domain.Counterparty
	settlementAccountID string
	vatAccountID        string
	exchangeRate        decimal.Decimal
	reference           string

	// settlementSide is Credit for expenses (money leaves) and Debit for sales.
	settlementSide domain.AmountType

	lineItems []domain.LineItem
	journal   *domain.Journal
}

func newRecordModel(recordType domain.RecordType, date time.Time, counterparty domain.Counterparty, settlementAccountID, vatAccountID string, rate decimal.Decimal, reference string, dueDate *time.Time) (recordModel, error) {
	if date.IsZero() {
		return recordModel{}, fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(counterparty.ID) == "" {
		return recordModel{}, fmt.Errorf("%w: counterparty id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(counterparty.Denomination) == "" {
		return recordModel{}, fmt.Errorf("%w: counterparty denomination is required", apperrors.ErrValidation)
	}
	if settlementAccountID == "" || vatAccountID == "" {
		return recordModel{}, fmt.Errorf("%w: settlement and VAT accounts are required", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return recordModel{}, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, rate.String())
	}
	if !domain.FitsStoredScale(rate) {
		return recordModel{}, fmt.Errorf("%w: exchange rate has more than %d decimal places", apperrors.ErrValidation, domain.MaxStoredScale)
	}
	if recordType.IsInvoice() {
		if dueDate == nil || dueDate.IsZero() {
			return recordModel{}, fmt.Errorf("%w: invoices require a due date", apperrors.ErrValidation)
		}
		if dueDate.Before(date) {
			return recordModel{}, fmt.Errorf("%w: due date cannot be before the transaction date", apperrors.ErrValidation)
		}
	}

	settlementSide := domain.Credit
	if recordType.Kind() == domain.SaleRecord {
		settlementSide = domain.Debit
	}

	return recordModel{
		recordType:          recordType,
		date:                date,
		dueDate:             dueDate,
		counterparty:        counterparty,
		settlementAccountID: settlementAccountID,
		vatAccountID:        vatAccountID,
		exchangeRate:        rate,
		reference:           reference,
		settlementSide:      settlementSide,
		journal:             domain.NewJournal(),
	}, nil
}

// AddLineItem posts one line item:
//   - the counterparty ledger is credited the gross, in the counterparty's currency
//   - the settlement account takes the nominal gross
//   - the line's nominal account takes net/rate on the opposite side
//   - the VAT account takes vat/rate on that same side, only when there is VAT
//
// The nominal gross is net/rate + vat/rate so the nominal legs balance exactly.
func (m *recordModel) AddLineItem(li domain.LineItem) error {
	if strings.TrimSpace(li.NominalAccountID) == "" {
		return fmt.Errorf("%w: line item nominal account is required", apperrors.ErrValidation)
	}
	if li.NetAmount.IsNegative() || li.VatAmount.IsNegative() {
		return fmt.Errorf("%w: line item amounts must not be negative", apperrors.ErrValidation)
	}
	if !li.Gross().IsPositive() {
		return fmt.Errorf("%w: line item gross must be positive", apperrors.ErrValidation)
	}
	if !domain.FitsStoredScale(li.NetAmount) || !domain.FitsStoredScale(li.VatAmount) {
		return fmt.Errorf("%w: line item amounts have more than %d decimal places", apperrors.ErrValidation, domain.MaxStoredScale)
	}

	ledger := m.recordType.Kind().CounterpartyLedger()
	counterpartyLine, err := domain.NewCounterpartyLine(ledger, domain.Credit, li.Gross(), m.date, m.counterparty.ID)
	if err != nil {
		return err
	}

	nominalNet := li.NetAmount.Div(m.exchangeRate)
	nominalVat := li.VatAmount.Div(m.exchangeRate)
	nominalGross := nominalNet.Add(nominalVat)
	lineSide := m.settlementSide.Opposite()

	lines := []domain.TransactionLine{
		counterpartyLine,
		domain.NewNominalLine(m.settlementSide, nominalGross, m.date, m.settlementAccountID),
		domain.NewNominalLine(lineSide, nominalNet, m.date, li.NominalAccountID),
	}
	if li.VatAmount.IsPositive() {
		lines = append(lines, domain.NewNominalLine(lineSide, nominalVat, m.date, m.vatAccountID))
	}

	if err := m.journal.AddTransactions(lines...); err != nil {
		return err
	}
	m.lineItems = append(m.lineItems, li)
	return nil
}

// AddLineItems adds items in order and stops at the first failure.
func (m *recordModel) AddLineItems(items ...domain.LineItem) error {
	for i, li := range items {
		if err := m.AddLineItem(li); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	return nil
}

// LineItems returns a copy of the stored line items.
func (m *recordModel) LineItems() []domain.LineItem {
	out := make([]domain.LineItem, len(m.lineItems))
	copy(out, m.lineItems)
	return out
}

// LineItemsGross is the sum of net plus VAT over every stored line item.
func (m *recordModel) LineItemsGross() decimal.Decimal {
	total := decimal.Zero
	for _, li := range m.lineItems {
		total = total.Add(li.Gross())
	}
	return total
}

func (m *recordModel) Status() domain.RecordStatus {
	return domain.InitialStatus(m.recordType)
}

func (m *recordModel) RecordType() domain.RecordType {
	return m.recordType
}

func (m *recordModel) Journal() *domain.Journal {
	return m.journal
}

// Build assembles the record that will be persisted, assigning ids and timestamps.
func (m *recordModel) Build() (*domain.Record, error) {
	if len(m.lineItems) == 0 {
		return nil, fmt.Errorf("%w: record has no line items", apperrors.ErrValidation)
	}

	ts := now()
	recordID := uuid.NewString()

	lineItems := m.LineItems()
	for i := range lineItems {
		lineItems[i].LineItemID = uuid.NewString()
		lineItems[i].RecordID = recordID
	}

	rate := m.exchangeRate
	return &domain.Record{
		RecordID:        recordID,
		Kind:            m.recordType.Kind(),
		RecordType:      m.recordType,
		Status:          m.Status(),
		Reference:       m.reference,
		TransactionDate: m.date,
		DueDate:         m.dueDate,
		Denomination:    m.counterparty.Denomination,
		ExchangeRate:    m.exchangeRate,
		GrossAmount:     m.LineItemsGross(),
		CounterpartyID:  m.counterparty.ID,
		LineItems:       lineItems,
		JournalEntry:    buildJournalEntry(m.journal, &rate, ts),
		AuditFields:     domain.NewAuditFields(ts),
	}, nil
}

// Save builds the record and writes it with its journal in one atomic call.
func (m *recordModel) Save(ctx context.Context, store portsrepo.RecordWriter) (*domain.Record, error) {
	record, err := m.Build()
	if err != nil {
		return nil, err
	}
	if err := store.CreateRecordWithJournal(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

func buildJournalEntry(journal *domain.Journal, rate *decimal.Decimal, ts time.Time) *domain.JournalEntry {
	entry := &domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		ExchangeRate:   rate,
		AuditFields:    domain.NewAuditFields(ts),
	}
	entry.Transactions = journal.Serialize()
	for i := range entry.Transactions {
		entry.Transactions[i].TransactionID = uuid.NewString()
		entry.Transactions[i].JournalEntryID = entry.JournalEntryID
		entry.Transactions[i].AuditFields = entry.AuditFields
	}
	return entry
}
