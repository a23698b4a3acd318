package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	"github.com/woodybriggs/ledger/internal/models"
	"github.com/woodybriggs/ledger/internal/utils/mapping"
)

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) *PgxSupplierRepository {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (supplier_id, name, denomination, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.Pool.Exec(ctx, query, m.SupplierID, m.Name, m.Denomination, m.CreatedAt, m.LastUpdatedAt); err != nil {
		return translateWriteError("failed to save supplier "+m.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT supplier_id, name, denomination, created_at, last_updated_at FROM suppliers WHERE supplier_id = $1;`

	var m models.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(&m.SupplierID, &m.Name, &m.Denomination, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT supplier_id, name, denomination, created_at, last_updated_at
		FROM suppliers
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var m models.Supplier
		if err := rows.Scan(&m.SupplierID, &m.Name, &m.Denomination, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, denomination, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.Pool.Exec(ctx, query, m.CustomerID, m.Name, m.Denomination, m.CreatedAt, m.LastUpdatedAt); err != nil {
		return translateWriteError("failed to save customer "+m.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT customer_id, name, denomination, created_at, last_updated_at FROM customers WHERE customer_id = $1;`

	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(&m.CustomerID, &m.Name, &m.Denomination, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT customer_id, name, denomination, created_at, last_updated_at
		FROM customers
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.Denomination, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
