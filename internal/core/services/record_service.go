package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	"github.com/woodybriggs/ledger/internal/core/records"
	"github.com/woodybriggs/ledger/internal/dto"
	"github.com/woodybriggs/ledger/internal/platform/config"
)

// recordPoster is satisfied by both ExpenseRecordModel and SaleRecordModel.
type recordPoster interface {
	AddLineItems(items ...domain.LineItem) error
	Save(ctx context.Context, store portsrepo.RecordWriter) (*domain.Record, error)
}

// recordService holds the behaviour shared by purchases and sales. The kind
// decides which counterparty, control account and VAT account are used.
type recordService struct {
	BaseService
	kind         domain.RecordKind
	recordRepo   portsrepo.RecordRepositoryFacade
	accountRepo  portsrepo.AccountReader
	supplierRepo portsrepo.SupplierReader
	customerRepo portsrepo.CustomerReader
	presets      config.PresetAccounts
}

func (s *recordService) controlAccountID() string {
	if s.kind == domain.SaleRecord {
		return s.presets.AccountsReceivable
	}
	return s.presets.AccountsPayable
}

func (s *recordService) vatAccountID() string {
	if s.kind == domain.SaleRecord {
		return s.presets.VatOutputs
	}
	return s.presets.VatInputs
}

// counterparty loads the supplier or customer a record is raised against.
func (s *recordService) counterparty(ctx context.Context, id string) (domain.Counterparty, error) {
	if s.kind == domain.SaleRecord {
		customer, err := s.customerRepo.FindCustomerByID(ctx, id)
		if err != nil {
			return domain.Counterparty{}, err
		}
		return customer.Counterparty(), nil
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		return domain.Counterparty{}, err
	}
	return supplier.Counterparty(), nil
}

// requireAccounts verifies every id names an active account.
func (s *recordService) requireAccounts(ctx context.Context, ids ...string) error {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, unique)
	if err != nil {
		return err
	}
	for _, id := range unique {
		account, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func lineItemAccounts(items []domain.LineItem) []string {
	ids := make([]string, len(items))
	for i, li := range items {
		ids[i] = li.NominalAccountID
	}
	return ids
}

// logFailure logs expected failures at warn and everything else at error.
func (s *recordService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrConflict) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func (s *recordService) newInstantModel(cp domain.Counterparty, req dto.CreateInstantRecordRequest) (recordPoster, error) {
	if s.kind == domain.SaleRecord {
		return records.NewInstantSale(records.SaleArgs{
			Date:                req.Date,
			Customer:            cp,
			ReceiptAccountID:    req.SettlementAccountID,
			VatOutputsAccountID: s.vatAccountID(),
			ExchangeRate:        req.ExchangeRate,
			Reference:           req.Reference,
		})
	}
	return records.NewInstantExpense(records.ExpenseArgs{
		Date:               req.Date,
		Supplier:           cp,
		PaymentAccountID:   req.SettlementAccountID,
		VatInputsAccountID: s.vatAccountID(),
		ExchangeRate:       req.ExchangeRate,
		Reference:          req.Reference,
	})
}

func (s *recordService) newInvoiceModel(cp domain.Counterparty, req dto.CreateInvoiceRequest) (recordPoster, error) {
	if s.kind == domain.SaleRecord {
		return records.NewSalesInvoice(records.SaleArgs{
			Date:                req.Date,
			Customer:            cp,
			ReceiptAccountID:    s.controlAccountID(),
			VatOutputsAccountID: s.vatAccountID(),
			ExchangeRate:        req.ExchangeRate,
			Reference:           req.Reference,
		}, req.DueDate)
	}
	return records.NewPurchaseInvoice(records.ExpenseArgs{
		Date:               req.Date,
		Supplier:           cp,
		PaymentAccountID:   s.controlAccountID(),
		VatInputsAccountID: s.vatAccountID(),
		ExchangeRate:       req.ExchangeRate,
		Reference:          req.Reference,
	}, req.DueDate)
}

// post adds the line items to a model and saves it.
func (s *recordService) post(ctx context.Context, model recordPoster, items []domain.LineItem) (*domain.Record, error) {
	if err := model.AddLineItems(items...); err != nil {
		return nil, err
	}
	return model.Save(ctx, s.recordRepo)
}

func (s *recordService) createInstant(ctx context.Context, req dto.CreateInstantRecordRequest) (*domain.Record, error) {
	cp, err := s.counterparty(ctx, req.CounterpartyID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to resolve counterparty", slog.String("counterparty_id", req.CounterpartyID))
		return nil, err
	}

	items := dto.ToDomainLineItems(req.LineItems)
	accountIDs := append([]string{req.SettlementAccountID, s.vatAccountID()}, lineItemAccounts(items)...)
	if err := s.requireAccounts(ctx, accountIDs...); err != nil {
		s.logFailure(ctx, err, "Referenced account check failed", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	model, err := s.newInstantModel(cp, req)
	if err != nil {
		s.logFailure(ctx, err, "Invalid instant record", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	record, err := s.post(ctx, model, items)
	if err != nil {
		s.logFailure(ctx, err, "Failed to post instant record", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Instant record posted",
		slog.String("record_id", record.RecordID),
		slog.String("record_type", string(record.RecordType)),
		slog.String("gross_amount", record.GrossAmount.String()),
		slog.String("denomination", record.Denomination))
	return record, nil
}

func (s *recordService) createInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Record, error) {
	cp, err := s.counterparty(ctx, req.CounterpartyID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to resolve counterparty", slog.String("counterparty_id", req.CounterpartyID))
		return nil, err
	}

	items := dto.ToDomainLineItems(req.LineItems)
	accountIDs := append([]string{s.controlAccountID(), s.vatAccountID()}, lineItemAccounts(items)...)
	if err := s.requireAccounts(ctx, accountIDs...); err != nil {
		s.logFailure(ctx, err, "Referenced account check failed", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	model, err := s.newInvoiceModel(cp, req)
	if err != nil {
		s.logFailure(ctx, err, "Invalid invoice", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	record, err := s.post(ctx, model, items)
	if err != nil {
		s.logFailure(ctx, err, "Failed to post invoice", slog.String("counterparty_id", cp.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice posted",
		slog.String("record_id", record.RecordID),
		slog.String("record_type", string(record.RecordType)),
		slog.String("gross_amount", record.GrossAmount.String()),
		slog.String("denomination", record.Denomination))
	return record, nil
}

func (s *recordService) pay(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest) (*records.PaymentOutcome, error) {
	header, err := s.recordRepo.FindRecordByID(ctx, invoiceID, false)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if header.Kind != s.kind {
		err := fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		s.LogWarn(ctx, err, "Record is of another kind", slog.String("kind", string(header.Kind)))
		return nil, err
	}

	cp, err := s.counterparty(ctx, header.CounterpartyID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to resolve counterparty", slog.String("counterparty_id", header.CounterpartyID))
		return nil, err
	}

	gainLossID := s.presets.ExchangeGainLoss
	if err := s.requireAccounts(ctx, req.PaymentAccountID, s.controlAccountID(), gainLossID); err != nil {
		s.logFailure(ctx, err, "Referenced account check failed", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	args := records.PaymentArgs{
		Date:             req.Date,
		Counterparty:     cp,
		PaymentAccountID: req.PaymentAccountID,
		ControlAccountID: s.controlAccountID(),
		InvoiceID:        invoiceID,
		Reference:        req.Reference,
	}
	var model *records.InvoicePaymentModel
	if s.kind == domain.SaleRecord {
		model, err = records.NewSalesInvoiceReceipt(args)
	} else {
		model, err = records.NewPurchaseInvoicePayment(args)
	}
	if err != nil {
		s.logFailure(ctx, err, "Invalid payment", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	outcome, err := model.Pay(ctx, s.recordRepo, req.Amount, req.ExchangeRate, gainLossID)
	if err != nil {
		var committed *records.PaymentCommittedError
		if errors.As(err, &committed) {
			s.LogError(ctx, err, "Payment posted but invoice not updated",
				slog.String("invoice_id", invoiceID),
				slog.String("payment_id", committed.PaymentID))
			return nil, err
		}
		s.logFailure(ctx, err, "Failed to post payment", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	// The payment is already committed; a reconciliation failure needs a human, not a rollback.
	if err := domain.ReconcileCounterpartyLedger(outcome.Invoice); err != nil {
		s.LogError(ctx, err, "Counterparty ledger does not reconcile after payment",
			slog.String("invoice_id", invoiceID),
			slog.String("payment_id", outcome.Payment.RecordID))
	}

	s.LogInfo(ctx, "Payment posted",
		slog.String("invoice_id", invoiceID),
		slog.String("payment_id", outcome.Payment.RecordID),
		slog.String("invoice_status", string(outcome.Invoice.Status)),
		slog.String("remaining_balance", outcome.RemainingBalance.String()),
		slog.String("control_balance", domain.ControlAccountBalance(outcome.Invoice, s.controlAccountID()).String()),
		slog.String("fx_result", string(outcome.FX)),
		slog.String("fx_amount", outcome.FXAmount.String()))
	return outcome, nil
}

func (s *recordService) get(ctx context.Context, recordID string) (*domain.Record, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID, true)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find record", slog.String("record_id", recordID))
		return nil, err
	}
	if record.Kind != s.kind {
		return nil, fmt.Errorf("%w: record %s", apperrors.ErrNotFound, recordID)
	}
	s.LogDebug(ctx, "Record retrieved", slog.String("record_id", recordID))
	return record, nil
}

func (s *recordService) list(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, *string, error) {
	recs, nextToken, err := s.recordRepo.ListRecordsByCounterparty(ctx, s.kind, params.CounterpartyID, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list records",
			slog.String("kind", string(s.kind)),
			slog.String("counterparty_id", params.CounterpartyID))
		return nil, nil, err
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	return recs, nextToken, nil
}
