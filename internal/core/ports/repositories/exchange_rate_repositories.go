package repositories

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
)

// ExchangeRateRepositoryFacade persists gateway-fetched conversion rates so
// they can serve as a bounded-time cache.
type ExchangeRateRepositoryFacade interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	// FindLatestExchangeRate returns the most recently fetched rate for the
	// currency pair, or apperrors.ErrNotFound.
	FindLatestExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}
