package repositories

import (
	"context"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindLedgerTransactionsByAccount returns every transaction touching the
	// account as origin or destination, for balance replay.
	FindLedgerTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	FindTransactionsByTypeInRange(ctx context.Context, ownerID string, txType domain.TransactionType, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions. The
// balanceChanges map carries the per-account ledger deltas the write must
// apply; the row write and the balance mutations happen in one database
// transaction so a partial failure leaves both or neither committed.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
	DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
	// SaveTransactionsBulk inserts ledger-inert rows (PENDING installments)
	// without any balance bookkeeping.
	SaveTransactionsBulk(ctx context.Context, txns []domain.Transaction) error
	// MarkTransactionsOverdue relabels PENDING rows due before the given date
	// as OVERDUE and returns the number of rows changed. Balances are never
	// touched.
	MarkTransactionsOverdue(ctx context.Context, before time.Time, now time.Time) (int64, error)
}

// TransactionRepositoryFacade combines all transaction repository capabilities.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
