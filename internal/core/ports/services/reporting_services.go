package services

import (
	"context"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// ReportingSvcFacade answers read-only questions by replaying transaction
// history; it never mutates balances.
type ReportingSvcFacade interface {
	// GetBalanceAsOf replays an account's history up to cutoff. In forecast
	// mode, scheduled PENDING/OVERDUE transactions dated by the cutoff count
	// as if they will complete.
	GetBalanceAsOf(ctx context.Context, ownerID string, accountID string, cutoff time.Time, isForecasted bool) (*dto.AccountBalanceResponse, error)

	// GetAccountsOverview returns the replayed balance of every active
	// account the owner has, as of cutoff.
	GetAccountsOverview(ctx context.Context, ownerID string, cutoff time.Time, isForecasted bool) ([]dto.AccountBalanceResponse, error)

	// AuditAccountBalance compares the live cached balance against a full
	// replay and reports any drift.
	AuditAccountBalance(ctx context.Context, ownerID string, accountID string) (*dto.BalanceAuditResponse, error)

	// GetTypeSummary totals one transaction type over [from, until],
	// converted into the preferred currency. Transactions whose currency
	// cannot be converted are skipped.
	GetTypeSummary(ctx context.Context, ownerID string, txnType domain.TransactionType, from, until time.Time, preferredCurrency string) (*dto.TypeSummaryResponse, error)
}
