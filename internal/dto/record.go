package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/records"
	"github.com/woodybriggs/ledger/internal/utils"
)

// LineItemRequest is one line of a purchase or sale, in the counterparty's currency.
type LineItemRequest struct {
	Description      string          `json:"description"`
	NominalAccountID string          `json:"nominalAccountID" binding:"required"`
	NetAmount        decimal.Decimal `json:"netAmount" binding:"dgte=0,dscale=16" swaggertype:"string" example:"100.00"`
	VatAmount        decimal.Decimal `json:"vatAmount" binding:"dgte=0,dscale=16" swaggertype:"string" example:"20.00"`
}

// CreateInstantRecordRequest creates an instant expense or an instant sale,
// settled immediately through SettlementAccountID (the bank or cash account).
type CreateInstantRecordRequest struct {
	CounterpartyID      string            `json:"counterpartyID" binding:"required"`
	SettlementAccountID string            `json:"settlementAccountID" binding:"required"`
	Date                time.Time         `json:"date" binding:"required"`
	ExchangeRate        decimal.Decimal   `json:"exchangeRate" binding:"dgt=0,dscale=16" swaggertype:"string" example:"1.25"`
	Reference           string            `json:"reference" binding:"max=255"`
	LineItems           []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// CreateInvoiceRequest creates a purchase or sales invoice against the control account.
type CreateInvoiceRequest struct {
	CounterpartyID string            `json:"counterpartyID" binding:"required"`
	Date           time.Time         `json:"date" binding:"required"`
	DueDate        time.Time         `json:"dueDate" binding:"required"`
	ExchangeRate   decimal.Decimal   `json:"exchangeRate" binding:"dgt=0,dscale=16" swaggertype:"string" example:"1.25"`
	Reference      string            `json:"reference" binding:"max=255"`
	LineItems      []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// PayInvoiceRequest settles all or part of an invoice. Amount is in the
// invoice's currency, ExchangeRate is the rate on the payment date.
type PayInvoiceRequest struct {
	PaymentAccountID string          `json:"paymentAccountID" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"dgt=0,dscale=16" swaggertype:"string" example:"50.00"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate" binding:"dgt=0,dscale=16" swaggertype:"string" example:"1.25"`
	Reference        string          `json:"reference" binding:"max=255"`
}

// ListRecordsParams defines query parameters for listing records.
type ListRecordsParams struct {
	CursorParams
	CounterpartyID string `form:"counterpartyID"`
}

// ToDomainLineItems converts request lines to domain line items.
func ToDomainLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, li := range items {
		out[i] = domain.LineItem{
			Description:      li.Description,
			NominalAccountID: li.NominalAccountID,
			NetAmount:        li.NetAmount,
			VatAmount:        li.VatAmount,
		}
	}
	return out
}

type LineItemResponse struct {
	LineItemID       string `json:"lineItemID"`
	Description      string `json:"description"`
	NominalAccountID string `json:"nominalAccountID"`
	NetAmount        string `json:"netAmount"`
	VatAmount        string `json:"vatAmount"`
	GrossAmount      string `json:"grossAmount"`
}

// RecordResponse defines the data returned for a purchase or sale record.
// Amounts are rendered at the precision of the record's denomination.
type RecordResponse struct {
	RecordID        string                `json:"recordID"`
	Kind            domain.RecordKind     `json:"kind"`
	RecordType      domain.RecordType     `json:"recordType"`
	Status          domain.RecordStatus   `json:"status"`
	Reference       string                `json:"reference"`
	TransactionDate time.Time             `json:"transactionDate"`
	DueDate         *time.Time            `json:"dueDate,omitempty"`
	Denomination    string                `json:"denomination"`
	ExchangeRate    string                `json:"exchangeRate"`
	GrossAmount     string                `json:"grossAmount"`
	TotalDue        *string               `json:"totalDue,omitempty"` // Invoices only
	CounterpartyID  string                `json:"counterpartyID"`
	InvoiceID       *string               `json:"invoiceID,omitempty"`
	LineItems       []LineItemResponse    `json:"lineItems,omitempty"`
	JournalEntry    *JournalEntryResponse `json:"journalEntry,omitempty"`
	Payments        []RecordResponse      `json:"payments,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
}

// PaymentResponse describes a posted payment and the invoice it settled.
type PaymentResponse struct {
	Payment          RecordResponse      `json:"payment"`
	InvoiceID        string              `json:"invoiceID"`
	InvoiceStatus    domain.RecordStatus `json:"invoiceStatus"`
	RemainingBalance string              `json:"remainingBalance"`
	FXResult         records.FXResult    `json:"fxResult"`
	FXAmount         string              `json:"fxAmount"` // Nominal currency, full precision
}

// ListRecordsResponse wraps a page of records.
type ListRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToRecordResponse converts a domain.Record. Invoices loaded with their payments
// also carry the amount still due.
func ToRecordResponse(r *domain.Record) RecordResponse {
	res := RecordResponse{
		RecordID:        r.RecordID,
		Kind:            r.Kind,
		RecordType:      r.RecordType,
		Status:          r.Status,
		Reference:       r.Reference,
		TransactionDate: r.TransactionDate,
		DueDate:         r.DueDate,
		Denomination:    r.Denomination,
		ExchangeRate:    r.ExchangeRate.String(),
		GrossAmount:     utils.FormatAmount(r.GrossAmount, r.Denomination),
		CounterpartyID:  r.CounterpartyID,
		InvoiceID:       r.InvoiceID,
		CreatedAt:       r.CreatedAt,
		LastUpdatedAt:   r.LastUpdatedAt,
	}

	for _, li := range r.LineItems {
		res.LineItems = append(res.LineItems, LineItemResponse{
			LineItemID:       li.LineItemID,
			Description:      li.Description,
			NominalAccountID: li.NominalAccountID,
			NetAmount:        utils.FormatAmount(li.NetAmount, r.Denomination),
			VatAmount:        utils.FormatAmount(li.VatAmount, r.Denomination),
			GrossAmount:      utils.FormatAmount(li.Gross(), r.Denomination),
		})
	}

	if r.JournalEntry != nil {
		entry := ToJournalEntryResponse(r.JournalEntry)
		res.JournalEntry = &entry
		if r.RecordType.IsInvoice() {
			due := utils.FormatAmount(domain.RemainingBalance(r), r.Denomination)
			res.TotalDue = &due
		}
	}

	for i := range r.Payments {
		res.Payments = append(res.Payments, ToRecordResponse(&r.Payments[i]))
	}
	return res
}

// ToPaymentResponse converts the outcome of paying an invoice.
func ToPaymentResponse(outcome *records.PaymentOutcome) PaymentResponse {
	return PaymentResponse{
		Payment:          ToRecordResponse(outcome.Payment),
		InvoiceID:        outcome.Invoice.RecordID,
		InvoiceStatus:    outcome.Invoice.Status,
		RemainingBalance: utils.FormatAmount(outcome.RemainingBalance, outcome.Invoice.Denomination),
		FXResult:         outcome.FX,
		FXAmount:         outcome.FXAmount.String(),
	}
}

// ToListRecordsResponse converts a page of records.
func ToListRecordsResponse(recs []domain.Record, nextToken *string) ListRecordsResponse {
	res := make([]RecordResponse, len(recs))
	for i := range recs {
		res[i] = ToRecordResponse(&recs[i])
	}
	return ListRecordsResponse{Records: res, NextToken: nextToken}
}
