package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a persisted ledger row. Origin/destination links are
// nullable: ON DELETE SET NULL severs a leg without losing the row.
type Transaction struct {
	TransactionID        string           `db:"transaction_id"`
	OwnerID              string           `db:"owner_id"`
	TransactionType      string           `db:"transaction_type"`
	Status               string           `db:"status"`
	OriginAccountID      *string          `db:"origin_account_id"`      // Nullable
	DestinationAccountID *string          `db:"destination_account_id"` // Nullable
	CategoryID           *string          `db:"category_id"`            // Nullable
	Value                decimal.Decimal  `db:"value"`
	ExchangeRate         *decimal.Decimal `db:"exchange_rate"`   // Nullable, NUMERIC(18,8)
	ConvertedValue       *decimal.Decimal `db:"converted_value"` // Nullable
	Date                 time.Time        `db:"date"`
	CompletionDate       *time.Time       `db:"completion_date"` // Nullable
	Description          string           `db:"description"`
	RecurringID          *string          `db:"recurring_id"`       // Nullable
	InstallmentNumber    *int             `db:"installment_number"` // Nullable
	AuditFields
}
