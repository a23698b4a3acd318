package domain

// Ledger identifies one of the independent transaction partitions.
type Ledger string

const (
	NominalLedger  Ledger = "nominal"
	SupplierLedger Ledger = "supplier"
	CustomerLedger Ledger = "customer"
)

// Ledgers lists every ledger in serialization order.
var Ledgers = []Ledger{NominalLedger, SupplierLedger, CustomerLedger}

// IsValid reports whether l is one of the known ledgers.
func (l Ledger) IsValid() bool {
	switch l {
	case NominalLedger, SupplierLedger, CustomerLedger:
		return true
	}
	return false
}

// IsCounterparty reports whether l is a supplier or customer subsidiary ledger.
func (l Ledger) IsCounterparty() bool {
	return l == SupplierLedger || l == CustomerLedger
}

// AmountType indicates whether a transaction line is a Debit or a Credit.
type AmountType string

const (
	Debit  AmountType = "DEBIT"
	Credit AmountType = "CREDIT"
)

// Opposite returns the other side of the entry.
func (a AmountType) Opposite() AmountType {
	if a == Debit {
		return Credit
	}
	return Debit
}
