package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/dto"
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates the read side over posted journal entries.
func NewJournalService(repo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: repo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", journalEntryID))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Journal entry retrieved",
		slog.String("journal_entry_id", journalEntryID),
		slog.Int("transaction_count", len(entry.Transactions)))
	return entry, nil
}

func (s *journalService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	txns, nextToken, err := s.journalRepo.ListTransactions(ctx, params.Ledger, params.TargetID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions",
				slog.String("ledger", string(params.Ledger)),
				slog.String("target_id", params.TargetID))
		}
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}
