package services

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// AccountSvcFacade manages accounts. Balances are only ever mutated through
// the transaction service; here they are read and seeded.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeactivateAccount soft-deletes: the account stops appearing in default
	// listings but its transaction history and balance are preserved.
	DeactivateAccount(ctx context.Context, ownerID string, accountID string) error
	ReactivateAccount(ctx context.Context, ownerID string, accountID string) error
}
