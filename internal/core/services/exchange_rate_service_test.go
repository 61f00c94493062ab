package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetConversionRateSameCurrencyIsIdentity(t *testing.T) {
	ctx := context.Background()
	service := services.NewExchangeRateService(new(MockExchangeRateRepository), nil, 0, 0)

	rate, err := service.GetConversionRate(ctx, "EUR", "eur")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestGetConversionRateRejectsBadCodes(t *testing.T) {
	ctx := context.Background()
	service := services.NewExchangeRateService(new(MockExchangeRateRepository), nil, 0, 0)

	_, err := service.GetConversionRate(ctx, "EURO", "BRL")

	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetConversionRateUsesFreshCache(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	provider := new(MockRateProvider)
	service := services.NewExchangeRateService(rateRepo, provider, 6*time.Hour, time.Second)

	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "BRL",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.18"),
		FetchedAt:        time.Now().Add(-time.Hour),
	}, nil)

	rate, err := service.GetConversionRate(ctx, "BRL", "EUR")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.18")))
	provider.AssertNotCalled(t, "FetchConversionRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetConversionRateFetchesWhenCacheStale(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	provider := new(MockRateProvider)
	service := services.NewExchangeRateService(rateRepo, provider, 6*time.Hour, time.Second)

	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "BRL",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.17"),
		FetchedAt:        time.Now().Add(-24 * time.Hour),
	}, nil)
	provider.On("FetchConversionRate", mock.Anything, "BRL", "EUR").
		Return(decimal.RequireFromString("0.19"), nil)
	rateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(rate domain.ExchangeRate) bool {
		return rate.FromCurrencyCode == "BRL" && rate.ToCurrencyCode == "EUR" &&
			rate.Rate.Equal(decimal.RequireFromString("0.19"))
	})).Return(nil)

	rate, err := service.GetConversionRate(ctx, "BRL", "EUR")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.19")))
	rateRepo.AssertExpectations(t)
}

func TestGetConversionRateFallsBackToStaleCache(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	provider := new(MockRateProvider)
	service := services.NewExchangeRateService(rateRepo, provider, 6*time.Hour, time.Second)

	// 12h old: past the 6h TTL but inside the fallback window.
	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "BRL",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.17"),
		FetchedAt:        time.Now().Add(-12 * time.Hour),
	}, nil)
	provider.On("FetchConversionRate", mock.Anything, "BRL", "EUR").
		Return(decimal.Zero, apperrors.ErrRateUnavailable)

	rate, err := service.GetConversionRate(ctx, "BRL", "EUR")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.17")))
}

func TestGetConversionRateRejectsCacheBeyondFallbackWindow(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	provider := new(MockRateProvider)
	service := services.NewExchangeRateService(rateRepo, provider, 6*time.Hour, time.Second)

	// 48h old: beyond 4x the 6h TTL, too stale to trust.
	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "BRL",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.17"),
		FetchedAt:        time.Now().Add(-48 * time.Hour),
	}, nil)
	provider.On("FetchConversionRate", mock.Anything, "BRL", "EUR").
		Return(decimal.Zero, apperrors.ErrRateUnavailable)

	_, err := service.GetConversionRate(ctx, "BRL", "EUR")

	require.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestGetConversionRateUnavailableWithoutCacheOrProvider(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	service := services.NewExchangeRateService(rateRepo, nil, 6*time.Hour, time.Second)

	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(nil, apperrors.ErrNotFound)

	_, err := service.GetConversionRate(ctx, "BRL", "EUR")

	require.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestConvertRoundsToCents(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	service := services.NewExchangeRateService(rateRepo, nil, 6*time.Hour, time.Second)

	rateRepo.On("FindLatestExchangeRate", ctx, "BRL", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "BRL",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.12345678"),
		FetchedAt:        time.Now(),
	}, nil)

	converted, err := service.Convert(ctx, decimal.NewFromInt(1000), "BRL", "EUR")

	require.NoError(t, err)
	// 1000 * 0.12345678 = 123.45678 -> 123.46
	assert.True(t, converted.Equal(decimal.RequireFromString("123.46")), "got %s", converted)
}
