package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"log/slog"
)

// staleFallbackFactor bounds how old a cached rate may be and still serve as
// a fallback when the provider is down: staleFallbackFactor * cacheTTL.
const staleFallbackFactor = 4

// ExchangeRateService resolves conversion rates between currencies. Rates
// fetched from the external provider are persisted and reused within
// cacheTTL, so transfer completion keeps working through short gateway
// outages.
type ExchangeRateService struct {
	BaseService
	rateRepo       portsrepo.ExchangeRateRepositoryFacade
	provider       portssvc.RateProviderSvc // nil means cache-only operation
	cacheTTL       time.Duration
	gatewayTimeout time.Duration
}

func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, provider portssvc.RateProviderSvc, cacheTTL, gatewayTimeout time.Duration) *ExchangeRateService {
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	if gatewayTimeout <= 0 {
		gatewayTimeout = 5 * time.Second
	}
	return &ExchangeRateService{
		rateRepo:       rateRepo,
		provider:       provider,
		cacheTTL:       cacheTTL,
		gatewayTimeout: gatewayTimeout,
	}
}

// GetConversionRate returns the multiplier from originCurrency to
// destinationCurrency. Resolution order: identity, fresh cache, provider,
// then a stale cached rate within the fallback window as a last resort.
func (s *ExchangeRateService) GetConversionRate(ctx context.Context, originCurrency, destinationCurrency string) (decimal.Decimal, error) {
	from := strings.ToUpper(strings.TrimSpace(originCurrency))
	to := strings.ToUpper(strings.TrimSpace(destinationCurrency))
	if len(from) != 3 || len(to) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters, got %q and %q", apperrors.ErrValidation, originCurrency, destinationCurrency)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	cached, err := s.rateRepo.FindLatestExchangeRate(ctx, from, to)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to read cached rate: %w", err)
	}
	if cached != nil && time.Since(cached.FetchedAt) <= s.cacheTTL {
		return cached.Rate, nil
	}

	if s.provider != nil {
		fetchCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
		defer cancel()

		rate, fetchErr := s.provider.FetchConversionRate(fetchCtx, from, to)
		if fetchErr == nil {
			if saveErr := s.saveRate(ctx, from, to, rate); saveErr != nil {
				// A cache write failure must not fail the conversion.
				s.LogError(ctx, saveErr, "Failed to cache fetched rate",
					slog.String("from", from), slog.String("to", to))
			}
			return rate, nil
		}
		s.LogError(ctx, fetchErr, "Rate provider fetch failed",
			slog.String("from", from), slog.String("to", to))
	}

	// Provider unavailable: a stale cached rate beats no rate, as long as it
	// is not older than the fallback window.
	if cached != nil && time.Since(cached.FetchedAt) <= staleFallbackFactor*s.cacheTTL {
		s.LogInfo(ctx, "Using stale cached rate",
			slog.String("from", from), slog.String("to", to),
			slog.Time("fetched_at", cached.FetchedAt))
		return cached.Rate, nil
	}

	return decimal.Zero, fmt.Errorf("%w: no rate available for %s->%s", apperrors.ErrRateUnavailable, from, to)
}

// Convert converts value from originCurrency into destinationCurrency,
// rounded to 2 decimal places.
func (s *ExchangeRateService) Convert(ctx context.Context, value decimal.Decimal, originCurrency, destinationCurrency string) (decimal.Decimal, error) {
	rate, err := s.GetConversionRate(ctx, originCurrency, destinationCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Mul(rate).Round(2), nil
}

func (s *ExchangeRateService) saveRate(ctx context.Context, from, to string, rate decimal.Decimal) error {
	now := time.Now()
	return s.rateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rate,
		FetchedAt:        now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	})
}
