package services

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/core/records"
	"github.com/woodybriggs/ledger/internal/dto"
	"github.com/woodybriggs/ledger/internal/platform/config"
)

// saleRecordService posts sales, sales invoices and the receipts against them.
type saleRecordService struct {
	recordService
}

func NewSaleRecordService(repos portsrepo.RepositoryProvider, presets config.PresetAccounts) portssvc.SaleRecordSvcFacade {
	return &saleRecordService{recordService{
		kind:         domain.SaleRecord,
		recordRepo:   repos.RecordRepo,
		accountRepo:  repos.AccountRepo,
		supplierRepo: repos.SupplierRepo,
		customerRepo: repos.CustomerRepo,
		presets:      presets,
	}}
}

var _ portssvc.SaleRecordSvcFacade = (*saleRecordService)(nil)

func (s *saleRecordService) CreateInstantSale(ctx context.Context, req dto.CreateInstantRecordRequest) (*domain.Record, error) {
	return s.createInstant(ctx, req)
}

func (s *saleRecordService) CreateSalesInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Record, error) {
	return s.createInvoice(ctx, req)
}

func (s *saleRecordService) ReceiveSalesInvoicePayment(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest) (*records.PaymentOutcome, error) {
	return s.pay(ctx, invoiceID, req)
}

func (s *saleRecordService) GetSaleRecord(ctx context.Context, recordID string) (*domain.Record, error) {
	return s.get(ctx, recordID)
}

func (s *saleRecordService) ListSaleRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, *string, error) {
	return s.list(ctx, params)
}
