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

// purchaseRecordService posts expenses, purchase invoices and their payments.
type purchaseRecordService struct {
	recordService
}

// NewPurchaseRecordService creates the purchase side of the posting engine.
func NewPurchaseRecordService(repos portsrepo.RepositoryProvider, presets config.PresetAccounts) portssvc.PurchaseRecordSvcFacade {
	return &purchaseRecordService{recordService{
		kind:         domain.PurchaseRecord,
		recordRepo:   repos.RecordRepo,
		accountRepo:  repos.AccountRepo,
		supplierRepo: repos.SupplierRepo,
		customerRepo: repos.CustomerRepo,
		presets:      presets,
	}}
}

var _ portssvc.PurchaseRecordSvcFacade = (*purchaseRecordService)(nil)

func (s *purchaseRecordService) CreateInstantExpense(ctx context.Context, req dto.CreateInstantRecordRequest) (*domain.Record, error) {
	return s.createInstant(ctx, req)
}

func (s *purchaseRecordService) CreatePurchaseInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Record, error) {
	return s.createInvoice(ctx, req)
}

func (s *purchaseRecordService) PayPurchaseInvoice(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest) (*records.PaymentOutcome, error) {
	return s.pay(ctx, invoiceID, req)
}

func (s *purchaseRecordService) GetPurchaseRecord(ctx context.Context, recordID string) (*domain.Record, error) {
	return s.get(ctx, recordID)
}

func (s *purchaseRecordService) ListPurchaseRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, *string, error) {
	return s.list(ctx, params)
}
