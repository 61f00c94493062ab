package pgsql

import (
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	recurringRepo := newPgxRecurringRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	registryRepo := newPgxRegistryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		TransactionRepo:  transactionRepo,
		RecurringRepo:    recurringRepo,
		CategoryRepo:     categoryRepo,
		ExchangeRateRepo: exchangeRateRepo,
		RegistryRepo:     registryRepo,
	}
}
