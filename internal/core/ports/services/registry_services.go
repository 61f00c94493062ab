package services

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// RegistrySvcFacade manages the shared reference data accounts link to.
type RegistrySvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)

	CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest) (*domain.AccountType, error)
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)
}
