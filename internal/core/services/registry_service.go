package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/google/uuid"
)

// RegistryService manages the shared lookup entities: banks, account types,
// and countries. These are global, not per-owner.
type RegistryService struct {
	BaseService
	registryRepo portsrepo.RegistryRepositoryFacade
}

func NewRegistryService(registryRepo portsrepo.RegistryRepositoryFacade) *RegistryService {
	return &RegistryService{registryRepo: registryRepo}
}

func (s *RegistryService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	now := time.Now()
	bank := domain.Bank{
		BankID: uuid.NewString(),
		Name:   req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.registryRepo.SaveBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("failed to save bank: %w", err)
	}
	return &bank, nil
}

func (s *RegistryService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.registryRepo.ListBanks(ctx)
}

func (s *RegistryService) CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest) (*domain.AccountType, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	now := time.Now()
	accountType := domain.AccountType{
		AccountTypeID: uuid.NewString(),
		Name:          req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.registryRepo.SaveAccountType(ctx, accountType); err != nil {
		return nil, fmt.Errorf("failed to save account type: %w", err)
	}
	return &accountType, nil
}

func (s *RegistryService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	return s.registryRepo.ListAccountTypes(ctx)
}

func (s *RegistryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	now := time.Now()
	country := domain.Country{
		Code:         strings.ToUpper(req.Code),
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		CurrencyName: req.CurrencyName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.registryRepo.SaveCountry(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to save country: %w", err)
	}
	return &country, nil
}

func (s *RegistryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.registryRepo.ListCountries(ctx)
}

func (s *RegistryService) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	return s.registryRepo.FindCountryByCode(ctx, strings.ToUpper(code))
}
