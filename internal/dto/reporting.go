package dto

import (
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse carries a point-in-time (or forecasted) balance
// computed by replaying transaction history, alongside the live cached
// balance for comparison.
type AccountBalanceResponse struct {
	AccountID         string          `json:"accountID"`
	CurrencyCode      string          `json:"currencyCode"`
	Balance           decimal.Decimal `json:"balance"`           // Live cached balance
	CalculatedBalance decimal.Decimal `json:"calculatedBalance"` // Replayed as of AsOf
	AsOf              time.Time       `json:"asOf"`
	IsForecasted      bool            `json:"isForecasted"`
}

// BalanceAuditResponse reports whether an account's live balance agrees with
// a full replay of its completed history.
type BalanceAuditResponse struct {
	AccountID       string          `json:"accountID"`
	LiveBalance     decimal.Decimal `json:"liveBalance"`
	ReplayedBalance decimal.Decimal `json:"replayedBalance"`
	Drift           decimal.Decimal `json:"drift"` // LiveBalance - ReplayedBalance
	Consistent      bool            `json:"consistent"`
}

// TypeSummaryResponse aggregates completed and forecasted totals for one
// transaction type over a period, converted to the preferred currency.
type TypeSummaryResponse struct {
	Type         domain.TransactionType `json:"type"`
	CurrencyCode string                 `json:"currencyCode"`
	Completed    decimal.Decimal        `json:"completed"`
	Forecasted   decimal.Decimal        `json:"forecasted"`
}
