package services

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// TransactionSvcFacade is the write path of the ledger. Every mutation keeps
// the affected account balances consistent with the transaction rows.
type TransactionSvcFacade interface {
	// CreateTransaction creates an INCOME or EXPENSE transaction. A COMPLETED
	// status applies the balance effect immediately.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// CreateTransfer creates a TRANSFER between two accounts, resolving a
	// conversion rate when their currencies differ.
	CreateTransfer(ctx context.Context, ownerID string, req dto.CreateTransferRequest) (*domain.Transaction, error)

	// GetTransactionByID fetches a single transaction owned by ownerID.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update and adjusts balances
	// according to the resulting ledger transition.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// CompleteTransaction marks a PENDING or OVERDUE transaction COMPLETED,
	// stamping the completion date and applying its balance effect.
	CompleteTransaction(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction, reversing its balance effect
	// first when it was COMPLETED.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error

	// MarkOverdue flips PENDING transactions dated before today to OVERDUE
	// and returns how many rows changed.
	MarkOverdue(ctx context.Context) (int64, error)
}
