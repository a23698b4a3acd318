package mapping

import (
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/models"
)

func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:   d.SupplierID,
		Name:         d.Name,
		Denomination: d.Denomination,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:   m.SupplierID,
		Name:         m.Name,
		Denomination: m.Denomination,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:   d.CustomerID,
		Name:         d.Name,
		Denomination: d.Denomination,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		Name:         m.Name,
		Denomination: m.Denomination,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
