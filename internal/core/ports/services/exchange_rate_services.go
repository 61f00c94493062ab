package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProviderSvc is the outbound gateway to an external exchange-rate
// source. Implementations must respect ctx cancellation.
type RateProviderSvc interface {
	// FetchConversionRate returns the rate to multiply an amount in
	// originCurrency by to obtain destinationCurrency.
	FetchConversionRate(ctx context.Context, originCurrency, destinationCurrency string) (decimal.Decimal, error)
}

// ExchangeRateSvcFacade resolves conversion rates, caching fetched rates so
// completion of transfers does not depend on gateway availability.
type ExchangeRateSvcFacade interface {
	// GetConversionRate returns the rate from originCurrency to
	// destinationCurrency. Same-currency pairs return 1. Returns
	// apperrors.ErrRateUnavailable when neither cache nor provider can help.
	GetConversionRate(ctx context.Context, originCurrency, destinationCurrency string) (decimal.Decimal, error)

	// Convert converts value between currencies, rounded to 2 decimal places.
	Convert(ctx context.Context, value decimal.Decimal, originCurrency, destinationCurrency string) (decimal.Decimal, error)
}
