package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report for a period
func (s *reportingService) TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end %s is before its start %s", apperrors.ErrValidation,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalance{
		Rows:        make([]domain.TrialBalanceRow, 0, len(rows)),
		DebitTotal:  decimal.Zero,
		CreditTotal: decimal.Zero,
	}
	for _, row := range rows {
		net, err := accounting.SignedNet(row.DebitTotal, row.CreditTotal, row.AccountType)
		if err != nil {
			s.LogError(ctx, err, "Account has an unknown type", slog.String("account_id", row.AccountID))
			return nil, fmt.Errorf("%w: account %s: %w", apperrors.ErrInternal, row.AccountID, err)
		}
		row.Net = net
		report.Rows = append(report.Rows, row)
		report.DebitTotal = report.DebitTotal.Add(row.DebitTotal)
		report.CreditTotal = report.CreditTotal.Add(row.CreditTotal)
	}

	if !report.Balanced() {
		s.LogError(ctx, domain.ErrLedgerImbalance, "Trial balance does not balance",
			slog.String("debit_total", report.DebitTotal.String()),
			slog.String("credit_total", report.CreditTotal.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}
