package services

// ServiceContainer bundles every service facade for injection into the
// application entrypoints.
type ServiceContainer struct {
	AccountSvc      AccountSvcFacade
	TransactionSvc  TransactionSvcFacade
	RecurringSvc    RecurringSvcFacade
	ReportingSvc    ReportingSvcFacade
	CategorySvc     CategorySvcFacade
	RegistrySvc     RegistrySvcFacade
	ExchangeRateSvc ExchangeRateSvcFacade
}
