package services

import (
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/CesarBerbel/personal_finance_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories. rateProvider
// may be nil, in which case conversions run cache-only.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider portssvc.RateProviderSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRateSvc = NewExchangeRateService(
		repos.ExchangeRateRepo,
		rateProvider,
		cfg.RateCacheTTL,
		cfg.RateGatewayTimeout,
	)

	container.RegistrySvc = NewRegistryService(repos.RegistryRepo)
	container.AccountSvc = NewAccountService(repos.AccountRepo, repos.RegistryRepo)
	container.CategorySvc = NewCategoryService(repos.CategoryRepo)

	container.TransactionSvc = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		container.ExchangeRateSvc,
	)

	container.RecurringSvc = NewRecurringService(
		repos.RecurringRepo,
		repos.TransactionRepo,
		repos.AccountRepo,
	)

	container.ReportingSvc = NewReportingService(
		repos.AccountRepo,
		repos.TransactionRepo,
		container.ExchangeRateSvc,
	)

	return container
}
