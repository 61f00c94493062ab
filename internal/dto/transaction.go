package dto

import (
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest creates an INCOME or EXPENSE transaction.
// Transfers carry conversion fields and go through CreateTransferRequest.
type CreateTransactionRequest struct {
	Type                 domain.TransactionType   `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Status               domain.TransactionStatus `json:"status" validate:"required,oneof=PENDING COMPLETED OVERDUE"`
	OriginAccountID      *string                  `json:"originAccountID,omitempty"`
	DestinationAccountID *string                  `json:"destinationAccountID,omitempty"`
	CategoryID           *string                  `json:"categoryID,omitempty"`
	Value                decimal.Decimal          `json:"value" validate:"required"`
	Date                 time.Time                `json:"date" validate:"required"`
	Description          string                   `json:"description" validate:"required,max=255"`
}

// CreateTransferRequest creates a TRANSFER between two accounts. When the
// account currencies differ, a conversion rate is resolved and the converted
// value fixed on the transaction.
type CreateTransferRequest struct {
	OriginAccountID      string                   `json:"originAccountID" validate:"required"`
	DestinationAccountID string                   `json:"destinationAccountID" validate:"required"`
	Status               domain.TransactionStatus `json:"status" validate:"required,oneof=PENDING COMPLETED OVERDUE"`
	Value                decimal.Decimal          `json:"value" validate:"required"`
	Date                 time.Time                `json:"date" validate:"required"`
	Description          string                   `json:"description" validate:"required,max=255"`
}

// UpdateTransactionRequest mutates an existing transaction. Nil fields are
// left unchanged. ExchangeRate/ConvertedValue allow the caller to confirm an
// explicit rate when the gateway was unavailable at completion time.
type UpdateTransactionRequest struct {
	Status               *domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED OVERDUE"`
	OriginAccountID      *string                   `json:"originAccountID,omitempty"`
	DestinationAccountID *string                   `json:"destinationAccountID,omitempty"`
	CategoryID           *string                   `json:"categoryID,omitempty"`
	Value                *decimal.Decimal          `json:"value,omitempty"`
	ExchangeRate         *decimal.Decimal          `json:"exchangeRate,omitempty"`
	Date                 *time.Time                `json:"date,omitempty"`
	Description          *string                   `json:"description,omitempty" validate:"omitempty,max=255"`
}
