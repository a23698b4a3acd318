package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RemainingBalance is the amount still owed on a record, in the counterparty's
// currency: credits posted to the counterparty ledger by the record itself, less
// debits posted to it by every linked payment. Counterparty legs are never
// converted, so the subtraction is currency-consistent.
func RemainingBalance(record *Record) decimal.Decimal {
	ledger := record.Kind.CounterpartyLedger()

	totalCredit := decimal.Zero
	for _, t := range record.JournalEntry.LedgerTransactions(ledger) {
		totalCredit = totalCredit.Add(t.CreditAmount)
	}

	totalDebit := decimal.Zero
	for i := range record.Payments {
		for _, t := range record.Payments[i].JournalEntry.LedgerTransactions(ledger) {
			totalDebit = totalDebit.Add(t.DebitAmount)
		}
	}

	return totalCredit.Sub(totalDebit)
}

// StatusForBalance maps a remaining balance after a payment to the invoice status.
func StatusForBalance(balance decimal.Decimal) RecordStatus {
	switch balance.Sign() {
	case 1:
		return StatusPartiallyPaid
	case 0:
		return StatusPaid
	}
	return StatusOverpaid
}

// ReconcileCounterpartyLedger checks a record's counterparty ledger across its
// whole lifetime. The record may only credit the counterparty, its payments may
// only debit it, every row must point at the record's counterparty, and once the
// record is marked paid the ledger must net to exactly zero.
func ReconcileCounterpartyLedger(record *Record) error {
	ledger := record.Kind.CounterpartyLedger()

	debit, credit := decimal.Zero, decimal.Zero
	check := func(t Transaction, wantSide AmountType, owner string) error {
		if t.TargetID() != record.CounterpartyID {
			return fmt.Errorf("%w: %s row %s targets %q, expected %q", ErrLedgerImbalance, owner, t.TransactionID, t.TargetID(), record.CounterpartyID)
		}
		if t.Amount().IsPositive() && t.AmountType() != wantSide {
			return fmt.Errorf("%w: %s row %s posts %s to the %s ledger", ErrLedgerImbalance, owner, t.TransactionID, t.AmountType(), ledger)
		}
		debit = debit.Add(t.DebitAmount)
		credit = credit.Add(t.CreditAmount)
		return nil
	}

	for _, t := range record.JournalEntry.LedgerTransactions(ledger) {
		if err := check(t, Credit, "record"); err != nil {
			return err
		}
	}
	if !credit.Equal(record.GrossAmount) {
		return &LedgerImbalanceError{Ledger: ledger, DebitTotal: record.GrossAmount, CreditTotal: credit}
	}
	for i := range record.Payments {
		for _, t := range record.Payments[i].JournalEntry.LedgerTransactions(ledger) {
			if err := check(t, Debit, "payment"); err != nil {
				return err
			}
		}
	}

	if record.Status == StatusPaid && !debit.Equal(credit) {
		return &LedgerImbalanceError{Ledger: ledger, DebitTotal: debit, CreditTotal: credit}
	}
	return nil
}

// ControlAccountBalance sums the record's nominal rows against a control account
// (accounts payable for purchases, accounts receivable for sales) across the
// record and its payments, in the nominal currency. The result is positive while
// money is still owed.
func ControlAccountBalance(record *Record, controlAccountID string) decimal.Decimal {
	debit, credit := decimal.Zero, decimal.Zero
	add := func(entry *JournalEntry) {
		for _, t := range entry.LedgerTransactions(NominalLedger) {
			if t.AccountID != nil && *t.AccountID == controlAccountID {
				debit = debit.Add(t.DebitAmount)
				credit = credit.Add(t.CreditAmount)
			}
		}
	}
	add(record.JournalEntry)
	for i := range record.Payments {
		add(record.Payments[i].JournalEntry)
	}
	if record.Kind == SaleRecord {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}
