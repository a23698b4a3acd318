package dto

import (
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/utils/accounting"
)

// TransactionResponse defines the data returned for a ledger transaction row.
// Amounts are returned at full stored precision.
type TransactionResponse struct {
	TransactionID   string        `json:"transactionID"`
	JournalEntryID  string        `json:"journalEntryID"`
	LedgerID        domain.Ledger `json:"ledgerID"`
	AccountID       *string       `json:"accountID,omitempty"`
	SupplierID      *string       `json:"supplierID,omitempty"`
	CustomerID      *string       `json:"customerID,omitempty"`
	DebitAmount     string        `json:"debitAmount"`
	CreditAmount    string        `json:"creditAmount"`
	TransactionDate time.Time     `json:"transactionDate"`
}

// JournalEntryResponse defines the data returned for a journal entry and its rows.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	ExchangeRate   *string               `json:"exchangeRate,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	NominalDebit   string                `json:"nominalDebit"`
	NominalCredit  string                `json:"nominalCredit"`
	Transactions   []TransactionResponse `json:"transactions"`
}

// ListTransactionsParams selects the rows posted to one account, supplier or customer.
type ListTransactionsParams struct {
	CursorParams
	Ledger   domain.Ledger `form:"ledger" binding:"required,oneof=nominal supplier customer"`
	TargetID string        `form:"targetID" binding:"required"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		JournalEntryID:  txn.JournalEntryID,
		LedgerID:        txn.LedgerID,
		AccountID:       txn.AccountID,
		SupplierID:      txn.SupplierID,
		CustomerID:      txn.CustomerID,
		DebitAmount:     txn.DebitAmount.String(),
		CreditAmount:    txn.CreditAmount.String(),
		TransactionDate: txn.TransactionDate,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	debit, credit := accounting.SumLedger(entry.Transactions, domain.NominalLedger)
	res := JournalEntryResponse{
		JournalEntryID: entry.JournalEntryID,
		CreatedAt:      entry.CreatedAt,
		NominalDebit:   debit.String(),
		NominalCredit:  credit.String(),
		Transactions:   ToTransactionResponses(entry.Transactions),
	}
	if entry.ExchangeRate != nil {
		rate := entry.ExchangeRate.String()
		res.ExchangeRate = &rate
	}
	return res
}

// ToListTransactionsResponse converts a page of transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	return ListTransactionsResponse{
		Transactions: ToTransactionResponses(txns),
		NextToken:    nextToken,
	}
}
