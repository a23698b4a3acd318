package domain

// Supplier is a counterparty the business buys from.
type Supplier struct {
	SupplierID   string `json:"supplierID"`
	Name         string `json:"name"`
	Denomination string `json:"denomination"` // ISO currency code the supplier bills in
	AuditFields
}

func (s Supplier) Counterparty() Counterparty {
	return Counterparty{ID: s.SupplierID, Denomination: s.Denomination}
}

// Customer is a counterparty the business sells to.
type Customer struct {
	CustomerID   string `json:"customerID"`
	Name         string `json:"name"`
	Denomination string `json:"denomination"`
	AuditFields
}

func (c Customer) Counterparty() Counterparty {
	return Counterparty{ID: c.CustomerID, Denomination: c.Denomination}
}
