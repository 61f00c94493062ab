package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// AccountService manages accounts. It never touches Balance directly beyond
// seeding it with InitialBalance; the transaction service owns balance
// mutations from then on.
type AccountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	registryRepo portsrepo.RegistryRepositoryFacade
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, registryRepo portsrepo.RegistryRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: accountRepo, registryRepo: registryRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	country, err := s.registryRepo.FindCountryByCode(ctx, req.CountryCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown country code %q", apperrors.ErrValidation, req.CountryCode)
		}
		return nil, fmt.Errorf("failed to resolve country: %w", err)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		OwnerID:        ownerID,
		BankID:         req.BankID,
		AccountTypeID:  req.AccountTypeID,
		CountryCode:    country.Code,
		CurrencyCode:   country.CurrencyCode,
		InitialBalance: req.InitialBalance,
		Balance:        req.InitialBalance, // Balance starts at the initial balance
		Active:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.OwnerID != ownerID {
		// Not revealing existence of other users' accounts.
		return nil, apperrors.NewNotFoundError("account not found")
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.GetAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	if req.BankID != nil {
		account.BankID = *req.BankID
	}
	if req.AccountTypeID != nil {
		account.AccountTypeID = *req.AccountTypeID
	}
	if req.Active != nil {
		account.Active = *req.Active
		if *req.Active {
			account.DeactivatedAt = nil
		} else if account.DeactivatedAt == nil {
			now := time.Now()
			account.DeactivatedAt = &now
		}
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = ownerID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *AccountService) DeactivateAccount(ctx context.Context, ownerID string, accountID string) error {
	account, err := s.GetAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return err
	}
	if !account.Active {
		return nil // Already inactive; idempotent
	}
	now := time.Now()
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, ownerID, now); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *AccountService) ReactivateAccount(ctx context.Context, ownerID string, accountID string) error {
	account, err := s.GetAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return err
	}
	if account.Active {
		return nil
	}
	if err := s.accountRepo.ReactivateAccount(ctx, accountID, ownerID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to reactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to reactivate account: %w", err)
	}
	s.LogInfo(ctx, "Account reactivated", slog.String("account_id", accountID))
	return nil
}
