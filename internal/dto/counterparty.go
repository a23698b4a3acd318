package dto

import (
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

// CreateCounterpartyRequest is used for both suppliers and customers.
type CreateCounterpartyRequest struct {
	Name         string `json:"name" binding:"required"`
	Denomination string `json:"denomination" binding:"required,len=3"` // ISO 4217 code
}

type SupplierResponse struct {
	SupplierID   string    `json:"supplierID"`
	Name         string    `json:"name"`
	Denomination string    `json:"denomination"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CustomerResponse struct {
	CustomerID   string    `json:"customerID"`
	Name         string    `json:"name"`
	Denomination string    `json:"denomination"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.SupplierID,
		Name:         s.Name,
		Denomination: s.Denomination,
		CreatedAt:    s.CreatedAt,
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Denomination: c.Denomination,
		CreatedAt:    c.CreatedAt,
	}
}

func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: res}
}

func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: res}
}
