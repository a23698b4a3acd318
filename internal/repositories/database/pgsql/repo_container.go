package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		SupplierRepo:  newPgxSupplierRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		RecordRepo:    newPgxRecordRepository(dbPool, journalRepo),
		JournalRepo:   journalRepo,
		ReportingRepo: newReportingRepository(dbPool),
	}
}
