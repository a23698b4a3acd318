package services

import (
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo),
		Counterparty: NewCounterpartyService(repos.SupplierRepo, repos.CustomerRepo),
		Purchase:     NewPurchaseRecordService(repos, cfg.Presets),
		Sale:         NewSaleRecordService(repos, cfg.Presets),
		Journal:      NewJournalService(repos.JournalRepo),
		Reporting:    NewReportingService(repos.ReportingRepo),
	}
}
