package repositories

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
)

// RegistryRepositoryFacade persists the registrable lookup entities accounts
// reference: banks, account types, and countries (with their currencies).
type RegistryRepositoryFacade interface {
	SaveBank(ctx context.Context, bank domain.Bank) error
	ListBanks(ctx context.Context) ([]domain.Bank, error)

	SaveAccountType(ctx context.Context, accountType domain.AccountType) error
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	SaveCountry(ctx context.Context, country domain.Country) error
	FindCountryByCode(ctx context.Context, code string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}
