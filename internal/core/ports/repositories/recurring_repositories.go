package repositories

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
)

// RecurringRepositoryFacade persists installment-series headers.
type RecurringRepositoryFacade interface {
	SaveRecurringTransaction(ctx context.Context, recurring domain.RecurringTransaction) error
	FindRecurringTransactionByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error)
	ListRecurringTransactions(ctx context.Context, ownerID string) ([]domain.RecurringTransaction, error)
}
