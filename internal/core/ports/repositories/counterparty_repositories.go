package repositories

import (
	"context"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
}

type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
