package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/services"
	"github.com/woodybriggs/ledger/internal/dto"
)

func TestJournalService_GetJournalEntry(t *testing.T) {
	repo := new(MockJournalRepository)
	svc := services.NewJournalService(repo)

	bank := "bank"
	entry := &domain.JournalEntry{
		JournalEntryID: "je-1",
		Transactions: []domain.Transaction{
			{TransactionID: "t-1", JournalEntryID: "je-1", LedgerID: domain.NominalLedger, AccountID: &bank, DebitAmount: decimal.NewFromInt(5), CreditAmount: decimal.Zero},
		},
	}
	repo.On("FindJournalEntryByID", mock.Anything, "je-1").Return(entry, nil).Once()
	repo.On("FindJournalEntryByID", mock.Anything, "je-2").Return(nil, apperrors.ErrNotFound).Once()

	got, err := svc.GetJournalEntry(context.Background(), "je-1")
	require.NoError(t, err)
	assert.Len(t, got.Transactions, 1)

	_, err = svc.GetJournalEntry(context.Background(), "je-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestJournalService_ListTransactions(t *testing.T) {
	repo := new(MockJournalRepository)
	svc := services.NewJournalService(repo)

	token := "abc"
	params := dto.ListTransactionsParams{Ledger: domain.SupplierLedger, TargetID: "cloudflare"}
	params.Limit = 5
	params.NextToken = &token

	next := "def"
	repo.On("ListTransactions", mock.Anything, domain.SupplierLedger, "cloudflare", 5, &token).
		Return([]domain.Transaction{{TransactionID: "t-1"}}, &next, nil).Once()

	txns, nextToken, err := svc.ListTransactions(context.Background(), params)

	require.NoError(t, err)
	assert.Len(t, txns, 1)
	require.NotNil(t, nextToken)
	assert.Equal(t, "def", *nextToken)
	repo.AssertExpectations(t)
}

func TestJournalService_ListTransactions_BadToken(t *testing.T) {
	repo := new(MockJournalRepository)
	svc := services.NewJournalService(repo)

	params := dto.ListTransactionsParams{Ledger: domain.NominalLedger, TargetID: "bank"}
	params.Limit = 5
	repo.On("ListTransactions", mock.Anything, domain.NominalLedger, "bank", 5, (*string)(nil)).
		Return(nil, nil, apperrors.ErrValidation).Once()

	_, _, err := svc.ListTransactions(context.Background(), params)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
