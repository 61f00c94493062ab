package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	RecurringRepo    RecurringRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	RegistryRepo     RegistryRepositoryFacade
}
