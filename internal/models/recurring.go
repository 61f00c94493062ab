package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is the header row of an installment series.
type RecurringTransaction struct {
	RecurringID          string          `db:"recurring_id"`
	OwnerID              string          `db:"owner_id"`
	StartDate            time.Time       `db:"start_date"`
	Frequency            string          `db:"frequency"`
	InstallmentsTotal    int             `db:"installments_total"`
	InstallmentsPaid     int             `db:"installments_paid"`
	Value                decimal.Decimal `db:"value"`
	Description          string          `db:"description"`
	TransactionType      string          `db:"transaction_type"`
	OriginAccountID      *string         `db:"origin_account_id"`      // Nullable
	DestinationAccountID *string         `db:"destination_account_id"` // Nullable
	CategoryID           *string         `db:"category_id"`            // Nullable
	IsActive             bool            `db:"is_active"`
	AuditFields
}
