package domain

import (
	"maps"
	"time"
)

type RateSource string

const (
	SourceLive       RateSource = "live"
	SourceCache      RateSource = "cache"
	SourceStaleCache RateSource = "stale_cache"
	SourceFallback   RateSource = "fallback"
)

// ExchangeRateSet holds base-currency units per one unit of each quoted currency
// (USD: 82.0 means 1 USD = 82 RUB).
type ExchangeRateSet struct {
	Rates       map[Currency]float64
	LastUpdated time.Time
	Source      RateSource
}

// Rate returns the rate for code. The base currency always has rate 1.
func (s ExchangeRateSet) Rate(code Currency) (float64, bool) {
	if code.IsBase() {
		return 1, true
	}
	v, ok := s.Rates[code]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func (s ExchangeRateSet) Clone() ExchangeRateSet {
	s.Rates = maps.Clone(s.Rates)
	return s
}

type RateBaseline string

const (
	BaselineFallback RateBaseline = "fallback"
	BaselinePrevious RateBaseline = "previous"
)

type RateChange struct {
	Currency   Currency
	Current    float64
	Reference  float64
	Change     float64
	Percent    float64
	IsPositive bool
	Baseline   RateBaseline
}
