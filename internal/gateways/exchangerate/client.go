// Package exchangerate implements the outbound rate-provider gateway against
// an exchangerate-api style JSON endpoint (GET {base}/pair/{FROM}/{TO}).
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.RateProviderSvc = (*Client)(nil)

// NewClient builds a gateway client. The per-call deadline comes from the
// caller's context; the http.Client timeout is only a safety net.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type pairResponse struct {
	Result         string          `json:"result"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
}

// FetchConversionRate returns the rate to multiply an amount in
// originCurrency by to obtain destinationCurrency.
func (c *Client) FetchConversionRate(ctx context.Context, originCurrency, destinationCurrency string) (decimal.Decimal, error) {
	endpoint, err := url.JoinPath(c.baseURL, "pair", originCurrency, destinationCurrency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate endpoint: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: gateway returned status %d", apperrors.ErrRateUnavailable, resp.StatusCode)
	}

	var body pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed gateway response: %v", apperrors.ErrRateUnavailable, err)
	}
	if body.Result != "success" || !body.ConversionRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: gateway reported %q", apperrors.ErrRateUnavailable, body.Result)
	}
	return body.ConversionRate, nil
}
