package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the monetary direction of a transaction.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Valid reports whether t is one of the closed set of transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction. COMPLETED is the
// only status with a ledger effect; PENDING and OVERDUE are ledger-inert.
// Every state is revisitable (no terminal state).
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusOverdue   TransactionStatus = "OVERDUE"
)

// Valid reports whether s is one of the closed set of statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Transaction is a single monetary movement between at most two accounts.
// Value is denominated in the origin account's currency for EXPENSE/TRANSFER
// and in the destination's for INCOME. For a cross-currency TRANSFER,
// ExchangeRate and ConvertedValue capture the destination-currency amount
// fixed at completion time.
//
// Account links use SET NULL on account deletion: a transaction keeps its
// monetary history but loses the live ledger link, so both legs may be nil
// on stale rows.
type Transaction struct {
	TransactionID        string            `json:"transactionID"` // Primary Key (UUID)
	OwnerID              string            `json:"ownerID"`
	Type                 TransactionType   `json:"type"`
	Status               TransactionStatus `json:"status"`
	OriginAccountID      *string           `json:"originAccountID,omitempty"`      // Required for EXPENSE/TRANSFER
	DestinationAccountID *string           `json:"destinationAccountID,omitempty"` // Required for INCOME/TRANSFER
	CategoryID           *string           `json:"categoryID,omitempty"`
	Value                decimal.Decimal   `json:"value"`
	ExchangeRate         *decimal.Decimal  `json:"exchangeRate,omitempty"`   // Set only for cross-currency transfers
	ConvertedValue       *decimal.Decimal  `json:"convertedValue,omitempty"` // Value in the destination currency
	Date                 time.Time         `json:"date"`                     // Scheduled/due date
	CompletionDate       *time.Time        `json:"completionDate,omitempty"` // Non-nil iff Status == COMPLETED
	Description          string            `json:"description"`
	RecurringID          *string           `json:"recurringID,omitempty"` // Back-reference to the installment series
	InstallmentNumber    *int              `json:"installmentNumber,omitempty"`
	AuditFields
}

// DestinationCredit is the amount credited to the destination account when
// the transaction completes: ConvertedValue when a conversion was applied,
// Value otherwise.
func (t Transaction) DestinationCredit() decimal.Decimal {
	if t.Type == Transfer && t.ConvertedValue != nil {
		return *t.ConvertedValue
	}
	return t.Value
}
