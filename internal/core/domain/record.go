package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind separates the purchase side of the books from the sales side.
type RecordKind string

const (
	PurchaseRecord RecordKind = "PURCHASE"
	SaleRecord     RecordKind = "SALE"
)

// CounterpartyLedger is the subsidiary ledger a record of this kind posts to.
func (k RecordKind) CounterpartyLedger() Ledger {
	if k == SaleRecord {
		return CustomerLedger
	}
	return SupplierLedger
}

// RecordType identifies the business event behind a record.
type RecordType string

const (
	InstantExpense         RecordType = "Instant Expense"
	PurchaseInvoice        RecordType = "Purchase Invoice"
	PurchaseInvoicePayment RecordType = "Purchase Invoice Payment"
	InstantSale            RecordType = "Instant Sale"
	SalesInvoice           RecordType = "Sales Invoice"
	SalesInvoicePayment    RecordType = "Sales Invoice Payment"
)

// Kind reports which side of the books the record type belongs to.
func (t RecordType) Kind() RecordKind {
	switch t {
	case InstantSale, SalesInvoice, SalesInvoicePayment:
		return SaleRecord
	}
	return PurchaseRecord
}

func (t RecordType) IsInvoice() bool {
	return t == PurchaseInvoice || t == SalesInvoice
}

func (t RecordType) IsInstant() bool {
	return t == InstantExpense || t == InstantSale
}

// IsValid reports whether t is a known record type.
func (t RecordType) IsValid() bool {
	switch t {
	case InstantExpense, PurchaseInvoice, PurchaseInvoicePayment, InstantSale, SalesInvoice, SalesInvoicePayment:
		return true
	}
	return false
}

// RecordStatus tracks settlement of a record.
type RecordStatus string

const (
	StatusOutstanding   RecordStatus = "Outstanding"
	StatusPartiallyPaid RecordStatus = "Partially Paid"
	StatusPaid          RecordStatus = "Paid"
	StatusOverpaid      RecordStatus = "Overpaid"
	StatusReconciled    RecordStatus = "Reconciled"
	StatusNone          RecordStatus = "None"
)

// InitialStatus is the status a record of type t is created with.
// Instant records settle immediately, invoices start outstanding and
// payments carry no status of their own.
func InitialStatus(t RecordType) RecordStatus {
	switch {
	case t.IsInstant():
		return StatusPaid
	case t.IsInvoice():
		return StatusOutstanding
	}
	return StatusNone
}

// Counterparty is the minimal view of a supplier or customer needed for posting.
type Counterparty struct {
	ID           string `json:"id"`
	Denomination string `json:"denomination"`
}

// Record is a purchase or sale business event together with its postings.
// ExchangeRate is counterparty currency units per nominal unit: nominal = amount / ExchangeRate.
type Record struct {
	RecordID        string          `json:"recordID"`
	Kind            RecordKind      `json:"kind"`
	RecordType      RecordType      `json:"recordType"`
	Status          RecordStatus    `json:"status"`
	Reference       string          `json:"reference"`
	TransactionDate time.Time       `json:"transactionDate"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Denomination    string          `json:"denomination"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	CounterpartyID  string          `json:"counterpartyID"`
	InvoiceID       *string         `json:"invoiceID,omitempty"`
	LineItems       []LineItem      `json:"lineItems,omitempty"`
	JournalEntry    *JournalEntry   `json:"journalEntry,omitempty"`
	Payments        []Record        `json:"payments,omitempty"`
	AuditFields
}

// Counterparty returns the id and denomination the record was posted against.
func (r *Record) Counterparty() Counterparty {
	return Counterparty{ID: r.CounterpartyID, Denomination: r.Denomination}
}
