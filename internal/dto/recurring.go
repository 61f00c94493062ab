package dto

import (
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstallmentsRequest expands a recurring template into an installment
// series: one RecurringTransaction header plus one Transaction per
// installment index from StartInstallment through TotalInstallments.
type CreateInstallmentsRequest struct {
	TotalInstallments    int                      `json:"totalInstallments" validate:"required,min=2"`
	StartInstallment     int                      `json:"startInstallment" validate:"required,min=1"`
	StartDate            time.Time                `json:"startDate" validate:"required"`
	Frequency            domain.Frequency         `json:"frequency" validate:"required,oneof=DAILY WEEKLY BIWEEKLY MONTHLY SEMESTRAL ANNUALLY"`
	Value                decimal.Decimal          `json:"value" validate:"required"`
	Description          string                   `json:"description" validate:"required,max=255"`
	TransactionType      domain.TransactionType   `json:"transactionType" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	InitialStatus        domain.TransactionStatus `json:"initialStatus" validate:"required,oneof=PENDING COMPLETED OVERDUE"`
	OriginAccountID      *string                  `json:"originAccountID,omitempty"`
	DestinationAccountID *string                  `json:"destinationAccountID,omitempty"`
	CategoryID           *string                  `json:"categoryID,omitempty"`
}
