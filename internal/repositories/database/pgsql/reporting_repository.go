package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

type reportingRepository struct {
	pool *pgxpool.Pool
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{pool: pool}
}

// GetTrialBalanceData sums nominal ledger debits and credits per account for the period.
// Accounts with no activity are included with zero totals.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type,
		       COALESCE(SUM(t.debit_amount), 0)  AS debit_total,
		       COALESCE(SUM(t.credit_amount), 0) AS credit_total
		FROM accounts a
		LEFT JOIN transactions t
		       ON t.account_id = a.account_id
		      AND t.ledger_id = 'nominal'
		      AND t.transaction_date >= $1
		      AND t.transaction_date <= $2
		WHERE a.is_active = TRUE
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.account_type, a.name;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountName, &row.AccountType, &row.DebitTotal, &row.CreditTotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return result, nil
}
