package services

import (
	"context"
	"time"

	"github.com/woodybriggs/ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance over the nominal ledger for a period, both dates inclusive
	TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error)
}
