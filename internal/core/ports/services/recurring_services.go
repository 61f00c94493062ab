package services

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// RecurringSvcFacade manages installment series.
type RecurringSvcFacade interface {
	// CreateInstallments creates a series header and one transaction per
	// installment, dates stepped by the series frequency. Returns the header
	// and the created transactions in installment order.
	CreateInstallments(ctx context.Context, ownerID string, req dto.CreateInstallmentsRequest) (*domain.RecurringTransaction, []domain.Transaction, error)

	// GetRecurringByID fetches a series header owned by ownerID.
	GetRecurringByID(ctx context.Context, ownerID string, recurringID string) (*domain.RecurringTransaction, error)

	// ListRecurring lists series headers for the owner.
	ListRecurring(ctx context.Context, ownerID string) ([]domain.RecurringTransaction, error)
}
