package models

// Supplier represents a row of the suppliers table.
type Supplier struct {
	SupplierID   string `db:"supplier_id"`
	Name         string `db:"name"`
	Denomination string `db:"denomination"`
	AuditFields
}

// Customer represents a row of the customers table.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	Name         string `db:"name"`
	Denomination string `db:"denomination"`
	AuditFields
}
