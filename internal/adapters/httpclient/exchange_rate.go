package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"storefront/internal/domain"
)

// ExchangeRateClient reads the CBR daily rates feed (RUB per unit of foreign currency).
type ExchangeRateClient struct {
	http *http.Client
	url  string
}

type valute struct {
	CharCode string  `json:"CharCode"`
	Nominal  float64 `json:"Nominal"`
	Value    float64 `json:"Value"`
}

type apiResponse struct {
	Date   string            `json:"Date"`
	Valute map[string]valute `json:"Valute"`
}

func (c *ExchangeRateClient) GetExchangeRates(ctx context.Context) (map[domain.Currency]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from rates provider: %s", resp.StatusCode, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(body.Valute) == 0 {
		return nil, fmt.Errorf("rates response has no Valute section")
	}

	rates := make(map[domain.Currency]float64, len(domain.QuotedCurrencies))
	for _, code := range domain.QuotedCurrencies {
		v, ok := body.Valute[string(code)]
		if !ok || v.Value <= 0 {
			continue
		}
		nominal := v.Nominal
		if nominal <= 0 {
			nominal = 1
		}
		// TRY and UAH are quoted per 10 units, JPY and KZT per 100
		rates[code] = v.Value / nominal
	}
	return rates, nil
}

func NewExchangeRateClient(httpClient *http.Client, url string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, url: url}
}
