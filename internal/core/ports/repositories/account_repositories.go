package repositories

import (
	"context"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for accounts. InitialBalance is
// immutable: no writer method updates it after SaveAccount.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, deactivatedAt time.Time) error
	ReactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountBalanceUpdater applies ledger deltas to account balances inside a
// caller-owned database transaction. Balance mutations are relative
// (balance = balance + delta) so concurrent completions serialize at the
// storage engine instead of losing updates.
type AccountBalanceUpdater interface {
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository capabilities.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceUpdater
}
