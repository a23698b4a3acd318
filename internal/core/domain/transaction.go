package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionLine is a single debit or credit posted to one ledger. The target
// reference is an account, supplier or customer id depending on the ledger.
// Lines are immutable; build them with NewNominalLine, NewSupplierLine or NewCustomerLine.
type TransactionLine struct {
	ledger     Ledger
	amountType AmountType
	amount     decimal.Decimal
	date       time.Time
	targetID   string
}

// NewNominalLine creates a nominal ledger line against an account.
func NewNominalLine(amountType AmountType, amount decimal.Decimal, date time.Time, accountID string) TransactionLine {
	return TransactionLine{ledger: NominalLedger, amountType: amountType, amount: amount, date: date, targetID: accountID}
}

// NewSupplierLine creates a supplier ledger line.
func NewSupplierLine(amountType AmountType, amount decimal.Decimal, date time.Time, supplierID string) TransactionLine {
	return TransactionLine{ledger: SupplierLedger, amountType: amountType, amount: amount, date: date, targetID: supplierID}
}

// NewCustomerLine creates a customer ledger line.
func NewCustomerLine(amountType AmountType, amount decimal.Decimal, date time.Time, customerID string) TransactionLine {
	return TransactionLine{ledger: CustomerLedger, amountType: amountType, amount: amount, date: date, targetID: customerID}
}

// NewCounterpartyLine creates a line on the given counterparty ledger.
func NewCounterpartyLine(ledger Ledger, amountType AmountType, amount decimal.Decimal, date time.Time, counterpartyID string) (TransactionLine, error) {
	switch ledger {
	case SupplierLedger:
		return NewSupplierLine(amountType, amount, date, counterpartyID), nil
	case CustomerLedger:
		return NewCustomerLine(amountType, amount, date, counterpartyID), nil
	}
	return TransactionLine{}, fmt.Errorf("ledger %q is not a counterparty ledger", ledger)
}

func (l TransactionLine) Ledger() Ledger { return l.ledger }
func (l TransactionLine) AmountType() AmountType { return l.amountType }
func (l TransactionLine) Amount() decimal.Decimal { return l.amount }
func (l TransactionLine) Date() time.Time { return l.date }
func (l TransactionLine) TargetID() string { return l.targetID }
func (l TransactionLine) IsZero() bool { return l.ledger == "" }

// Debit returns the amount when the line is a debit, zero otherwise.
func (l TransactionLine) Debit() decimal.Decimal {
	if l.amountType == Debit {
		return l.amount
	}
	return decimal.Zero
}

// Credit returns the amount when the line is a credit, zero otherwise.
func (l TransactionLine) Credit() decimal.Decimal {
	if l.amountType == Credit {
		return l.amount
	}
	return decimal.Zero
}

// Transaction is the persisted form of a TransactionLine.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	JournalEntryID  string          `json:"journalEntryID"`
	LedgerID        Ledger          `json:"ledgerID"`
	AccountID       *string         `json:"accountID,omitempty"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	CustomerID      *string         `json:"customerID,omitempty"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}

// TargetID returns whichever of account, supplier or customer id is set.
func (t Transaction) TargetID() string {
	switch {
	case t.AccountID != nil:
		return *t.AccountID
	case t.SupplierID != nil:
		return *t.SupplierID
	case t.CustomerID != nil:
		return *t.CustomerID
	}
	return ""
}

// Validate checks that the row references exactly the target its ledger requires
// and carries a single non-negative side.
func (t Transaction) Validate() error {
	refs := 0
	for _, p := range []*string{t.AccountID, t.SupplierID, t.CustomerID} {
		if p != nil {
			refs++
		}
	}
	if refs != 1 {
		return fmt.Errorf("transaction must reference exactly one target, got %d", refs)
	}
	switch t.LedgerID {
	case NominalLedger:
		if t.AccountID == nil {
			return fmt.Errorf("nominal transaction must reference an account")
		}
	case SupplierLedger:
		if t.SupplierID == nil {
			return fmt.Errorf("supplier transaction must reference a supplier")
		}
	case CustomerLedger:
		if t.CustomerID == nil {
			return fmt.Errorf("customer transaction must reference a customer")
		}
	default:
		return fmt.Errorf("unknown ledger %q", t.LedgerID)
	}
	if t.DebitAmount.IsNegative() || t.CreditAmount.IsNegative() {
		return fmt.Errorf("transaction amounts must not be negative")
	}
	if !t.DebitAmount.IsZero() && !t.CreditAmount.IsZero() {
		return fmt.Errorf("transaction cannot be both debit and credit")
	}
	return nil
}

// AmountType reports which side of the entry the row sits on.
func (t Transaction) AmountType() AmountType {
	if t.CreditAmount.IsPositive() {
		return Credit
	}
	return Debit
}

// Amount returns the non-zero side of the row.
func (t Transaction) Amount() decimal.Decimal {
	return t.DebitAmount.Add(t.CreditAmount)
}
