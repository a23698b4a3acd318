package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrLedgerImbalance is matched by every LedgerImbalanceError.
var ErrLedgerImbalance = errors.New("ledger imbalance")

// LedgerImbalanceError reports a ledger whose debits and credits do not match.
type LedgerImbalanceError struct {
	Ledger      Ledger
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *LedgerImbalanceError) Error() string {
	return fmt.Sprintf("debits and credits do not match for transactions given for %s ledger: debit %s, credit %s",
		e.Ledger, e.DebitTotal.String(), e.CreditTotal.String())
}

func (e *LedgerImbalanceError) Unwrap() error {
	return ErrLedgerImbalance
}

// Journal collects the transaction lines produced by one business event,
// partitioned by ledger. The nominal ledger is kept balanced at all times.
type Journal struct {
	lines map[Ledger][]TransactionLine
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{lines: make(map[Ledger][]TransactionLine, len(Ledgers))}
}

// AddTransactions partitions lines by ledger and places them ahead of the lines
// already held for that ledger. The nominal ledger is validated before anything
// is committed, so a failed call leaves the journal untouched.
func (j *Journal) AddTransactions(lines ...TransactionLine) error {
	if j.lines == nil {
		j.lines = make(map[Ledger][]TransactionLine, len(Ledgers))
	}

	incoming := make(map[Ledger][]TransactionLine, len(Ledgers))
	for _, line := range lines {
		if line.IsZero() || !line.ledger.IsValid() {
			return fmt.Errorf("transaction line has no ledger")
		}
		if line.amount.IsNegative() {
			return fmt.Errorf("transaction amount must not be negative, got %s", line.amount.String())
		}
		incoming[line.ledger] = append(incoming[line.ledger], line)
	}

	candidate := make(map[Ledger][]TransactionLine, len(incoming))
	for ledger, added := range incoming {
		merged := make([]TransactionLine, 0, len(added)+len(j.lines[ledger]))
		merged = append(merged, added...)
		merged = append(merged, j.lines[ledger]...)
		if err := ValidateTransactions(ledger, merged); err != nil {
			return err
		}
		candidate[ledger] = merged
	}

	for ledger, merged := range candidate {
		j.lines[ledger] = merged
	}
	return nil
}

// ValidateTransactions checks that debits equal credits exactly for the nominal
// ledger. Counterparty ledgers settle across a record's lifetime, not per journal,
// so they are not checked here.
func ValidateTransactions(ledger Ledger, lines []TransactionLine) error {
	if ledger != NominalLedger {
		return nil
	}
	debit, credit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit())
		credit = credit.Add(line.Credit())
	}
	if !debit.Equal(credit) {
		return &LedgerImbalanceError{Ledger: ledger, DebitTotal: debit, CreditTotal: credit}
	}
	return nil
}

// Transactions returns a copy of the lines held for a ledger.
func (j *Journal) Transactions(ledger Ledger) []TransactionLine {
	out := make([]TransactionLine, len(j.lines[ledger]))
	copy(out, j.lines[ledger])
	return out
}

// Len is the total number of lines across all ledgers.
func (j *Journal) Len() int {
	n := 0
	for _, lines := range j.lines {
		n += len(lines)
	}
	return n
}

// Serialize turns the journal into transaction rows, nominal first, then supplier, then customer.
// Ids and the parent journal entry id are assigned by the caller.
func (j *Journal) Serialize() []Transaction {
	out := make([]Transaction, 0, j.Len())
	for _, ledger := range Ledgers {
		for _, line := range j.lines[ledger] {
			target := line.targetID
			txn := Transaction{
				LedgerID:        ledger,
				DebitAmount:     line.Debit(),
				CreditAmount:    line.Credit(),
				TransactionDate: line.date,
			}
			switch ledger {
			case NominalLedger:
				txn.AccountID = &target
			case SupplierLedger:
				txn.SupplierID = &target
			case CustomerLedger:
				txn.CustomerID = &target
			}
			out = append(out, txn)
		}
	}
	return out
}

// JournalEntry is the persisted grouping of transactions from one business event.
type JournalEntry struct {
	JournalEntryID string           `json:"journalEntryID"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	Transactions   []Transaction    `json:"transactions"`
	AuditFields
}

// LedgerTransactions filters the entry's rows down to one ledger.
func (e *JournalEntry) LedgerTransactions(ledger Ledger) []Transaction {
	if e == nil {
		return nil
	}
	out := make([]Transaction, 0, len(e.Transactions))
	for _, t := range e.Transactions {
		if t.LedgerID == ledger {
			out = append(out, t)
		}
	}
	return out
}
