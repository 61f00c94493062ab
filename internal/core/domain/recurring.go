package domain

import (
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// Frequency is the cadence between installments of a recurring transaction.
type Frequency string

const (
	Daily     Frequency = "DAILY"
	Weekly    Frequency = "WEEKLY"
	Biweekly  Frequency = "BIWEEKLY"
	Monthly   Frequency = "MONTHLY"
	Semestral Frequency = "SEMESTRAL"
	Annually  Frequency = "ANNUALLY"
)

// Valid reports whether f is one of the closed set of frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Biweekly, Monthly, Semestral, Annually:
		return true
	}
	return false
}

// Advance returns the date of the installment following one scheduled at d.
// Month-based frequencies use calendar arithmetic with month-end clamping
// (Jan 31 + 1 month = Feb 28/29), not fixed day counts.
func (f Frequency) Advance(d time.Time) time.Time {
	switch f {
	case Daily:
		return d.AddDate(0, 0, 1)
	case Weekly:
		return d.AddDate(0, 0, 7)
	case Biweekly:
		return d.AddDate(0, 0, 14)
	case Monthly:
		return dates.AddMonths(d, 1)
	case Semestral:
		return dates.AddMonths(d, 6)
	case Annually:
		return dates.AddMonths(d, 12)
	}
	return d
}

// RecurringTransaction is the header of an installment series: the template
// from which the individual installment transactions were generated. It is
// created once; the generated children are never re-derived from it.
type RecurringTransaction struct {
	RecurringID          string          `json:"recurringID"` // Primary Key (UUID)
	OwnerID              string          `json:"ownerID"`
	StartDate            time.Time       `json:"startDate"`
	Frequency            Frequency       `json:"frequency"`
	InstallmentsTotal    int             `json:"installmentsTotal"`
	InstallmentsPaid     int             `json:"installmentsPaid"` // Starting installment index
	Value                decimal.Decimal `json:"value"`            // Value of each installment
	Description          string          `json:"description"`
	TransactionType      TransactionType `json:"transactionType"`
	OriginAccountID      *string         `json:"originAccountID,omitempty"`
	DestinationAccountID *string         `json:"destinationAccountID,omitempty"`
	CategoryID           *string         `json:"categoryID,omitempty"`
	IsActive             bool            `json:"isActive"`
	AuditFields
}
