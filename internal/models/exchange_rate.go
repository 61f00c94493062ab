package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a cached conversion rate snapshot.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"` // NUMERIC(18,8)
	FetchedAt        time.Time       `db:"fetched_at"`
	AuditFields
}
