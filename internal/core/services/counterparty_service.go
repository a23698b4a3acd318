package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/dto"
)

type counterpartyService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCounterpartyService creates the service managing suppliers and customers.
func NewCounterpartyService(suppliers portsrepo.SupplierRepositoryFacade, customers portsrepo.CustomerRepositoryFacade) portssvc.CounterpartySvcFacade {
	return &counterpartyService{supplierRepo: suppliers, customerRepo: customers}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateSupplier(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:   uuid.NewString(),
		Name:         req.Name,
		Denomination: strings.ToUpper(req.Denomination),
		AuditFields:  domain.NewAuditFields(now),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}
	s.LogInfo(ctx, "Supplier created successfully", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *counterpartyService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *counterpartyService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *counterpartyService) CreateCustomer(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		Name:         req.Name,
		Denomination: strings.ToUpper(req.Denomination),
		AuditFields:  domain.NewAuditFields(now),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}
	s.LogInfo(ctx, "Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *counterpartyService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *counterpartyService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}
