package repositories

import (
	"context"
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData retrieves nominal ledger debit and credit totals per account
	// for transactions dated within [from, to]. Net is left for the caller to sign.
	GetTrialBalanceData(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error)
}
