package pricing

import (
	"context"
	"storefront/internal/domain"
	"storefront/internal/platform/metrics"
	"storefront/internal/rate"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RateProvider interface {
	GetExchangeRates(ctx context.Context) domain.ExchangeRateSet
}

type Service struct {
	rates   RateProvider
	metrics *metrics.Metrics
}

type Quote struct {
	Region        string            `json:"region"`
	BasePrice     float64           `json:"base_price"`
	RegionalPrice float64           `json:"regional_price"`
	Amount        float64           `json:"amount"`
	Currency      domain.Currency   `json:"currency"`
	Formatted     string            `json:"formatted"`
	Converted     bool              `json:"converted"`
	RateSource    domain.RateSource `json:"rate_source,omitempty"`
}

// RegionalPrice is basePrice scaled by the region multiplier, rounded to whole base units.
func RegionalPrice(basePrice float64, region domain.Region) float64 {
	v, _ := decimal.NewFromFloat(basePrice).
		Mul(decimal.NewFromFloat(region.PriceMultiplier)).
		Round(0).
		Float64()
	return v
}

// ConvertPrice returns the regional price in the region currency together with the currency
// the amount is actually in. Without a usable rate it returns the base-currency regional price.
func (s *Service) ConvertPrice(ctx context.Context, basePrice float64, region domain.Region) (float64, domain.Currency) {
	q := s.Quote(ctx, basePrice, region)
	return q.Amount, q.Currency
}

func (s *Service) Quote(ctx context.Context, basePrice float64, region domain.Region) Quote {
	regional := RegionalPrice(basePrice, region)
	q := Quote{
		Region:        region.Code,
		BasePrice:     basePrice,
		RegionalPrice: regional,
		Amount:        regional,
		Currency:      domain.BaseCurrency,
	}

	if !region.Currency.IsBase() {
		set := s.rates.GetExchangeRates(ctx)
		converted, err := rate.ConvertFromBase(regional, region.Currency, set)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"region":   region.Code,
				"currency": region.Currency,
			}).Warn("No usable rate, showing base currency price")
			s.metrics.ConversionFallback(string(region.Currency))
		} else {
			q.Amount = converted
			q.Currency = region.Currency
			q.Converted = true
			q.RateSource = set.Source
		}
	}

	q.Formatted = FormatCurrency(q.Amount, q.Currency)
	return q
}

// QuoteAll prices basePrice in every region using a single rate lookup.
func (s *Service) QuoteAll(ctx context.Context, basePrice float64) []Quote {
	set := s.rates.GetExchangeRates(ctx)
	fixed := fixedRates{set: set}
	single := &Service{rates: fixed, metrics: s.metrics}

	out := make([]Quote, 0, len(regions))
	for _, r := range regions {
		out = append(out, single.Quote(ctx, basePrice, r))
	}
	return out
}

type fixedRates struct{ set domain.ExchangeRateSet }

func (f fixedRates) GetExchangeRates(context.Context) domain.ExchangeRateSet { return f.set.Clone() }

func NewService(rates RateProvider, m *metrics.Metrics) *Service {
	return &Service{rates: rates, metrics: m}
}
