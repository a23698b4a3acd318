package services

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/records"
	"github.com/woodybriggs/ledger/internal/dto"
)

// PurchaseRecordReaderSvc defines read operations for purchase records
type PurchaseRecordReaderSvc interface {
	// GetPurchaseRecord retrieves a purchase record with its line items, journal entry and payments.
	GetPurchaseRecord(ctx context.Context, recordID string) (*domain.Record, error)

	// ListPurchaseRecords retrieves a page of purchase records, newest first.
	ListPurchaseRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, *string, error)
}

// PurchaseRecordWriterSvc defines posting operations for purchases
type PurchaseRecordWriterSvc interface {
	// CreateInstantExpense posts an expense paid immediately from a bank or cash account.
	CreateInstantExpense(ctx context.Context, req dto.CreateInstantRecordRequest) (*domain.Record, error)

	// CreatePurchaseInvoice posts a supplier invoice against accounts payable.
	CreatePurchaseInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Record, error)

	// PayPurchaseInvoice posts a payment against a purchase invoice and updates its status.
	PayPurchaseInvoice(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest) (*records.PaymentOutcome, error)
}

// PurchaseRecordSvcFacade combines all purchase-related service interfaces
type PurchaseRecordSvcFacade interface {
	PurchaseRecordReaderSvc
	PurchaseRecordWriterSvc
}

// SaleRecordReaderSvc defines read operations for sale records
type SaleRecordReaderSvc interface {
	GetSaleRecord(ctx context.Context, recordID string) (*domain.Record, error)
	ListSaleRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, *string, error)
}

// SaleRecordWriterSvc defines posting operations for sales
type SaleRecordWriterSvc interface {
	// CreateInstantSale posts a sale received immediately into a bank or cash account.
	CreateInstantSale(ctx context.Context, req dto.CreateInstantRecordRequest) (*domain.Record, error)

	// CreateSalesInvoice posts a customer invoice against accounts receivable.
	CreateSalesInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Record, error)

	// ReceiveSalesInvoicePayment posts a customer's payment against a sales invoice.
	ReceiveSalesInvoicePayment(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest) (*records.PaymentOutcome, error)
}

// SaleRecordSvcFacade combines all sale-related service interfaces
type SaleRecordSvcFacade interface {
	SaleRecordReaderSvc
	SaleRecordWriterSvc
}
