package services

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/dto"
)

// SupplierSvc defines operations for suppliers
type SupplierSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// CustomerSvc defines operations for customers
type CustomerSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CounterpartySvcFacade combines supplier and customer operations
type CounterpartySvcFacade interface {
	SupplierSvc
	CustomerSvc
}
