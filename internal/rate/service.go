package rate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"storefront/internal/adapters"
	"storefront/internal/domain"
	"storefront/internal/platform/metrics"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKey    = "exchange_rates_cache"
	PreviousKey = "exchange_rates_previous"

	DefaultFreshness    = 4 * time.Hour
	DefaultStaleCeiling = 24 * time.Hour
)

// HotCache is an optional in-process layer in front of the key/value store.
type HotCache interface {
	Get() (domain.ExchangeRateSet, bool)
	Set(set domain.ExchangeRateSet)
	Invalidate()
}

type Options struct {
	Freshness    time.Duration
	StaleCeiling time.Duration
	Baseline     domain.RateBaseline
}

type Service struct {
	client  adapters.RateClient
	store   adapters.KVStore
	hot     HotCache
	clock   clockwork.Clock
	metrics *metrics.Metrics
	opts    Options

	fetches singleflight.Group
}

type storedRateSet struct {
	Rates       map[domain.Currency]float64 `json:"rates"`
	LastUpdated int64                       `json:"last_updated"` // ms since epoch
}

// GetExchangeRates never fails: it serves a fresh cache, a live fetch, a tolerable stale cache
// or the fallback table, in that order.
func (s *Service) GetExchangeRates(ctx context.Context) domain.ExchangeRateSet {
	cached, ok := s.loadCached(ctx)
	if ok && s.clock.Since(cached.LastUpdated) < s.opts.Freshness {
		cached.Source = domain.SourceCache
		s.metrics.RateLookup(string(domain.SourceCache))
		return cached
	}
	return s.fetchShared(ctx)
}

// RefreshRates skips the freshness check and always attempts a fetch.
// The existing cache stays in place so a failed refresh can still fall back to it.
func (s *Service) RefreshRates(ctx context.Context) domain.ExchangeRateSet {
	if s.hot != nil {
		s.hot.Invalidate()
	}
	return s.fetchShared(ctx)
}

// GetRateChange compares the current rate for code with the baseline. An empty baseline uses
// the configured default. The previous baseline degrades to the fallback table when no
// earlier live set has been recorded.
func (s *Service) GetRateChange(ctx context.Context, code domain.Currency, baseline domain.RateBaseline) (domain.RateChange, error) {
	if _, ok := currencyInfo[code]; !ok {
		return domain.RateChange{}, fmt.Errorf("rate change for %q: %w", code, domain.ErrCurrencyUnsupported)
	}
	if baseline == "" {
		baseline = s.opts.Baseline
	}

	current, ok := s.GetExchangeRates(ctx).Rate(code)
	if !ok {
		current = fallbackRate(code)
	}

	reference := fallbackRate(code)
	used := domain.BaselineFallback
	if baseline == domain.BaselinePrevious {
		if prev, found := s.loadSet(ctx, PreviousKey); found {
			if v, ok := prev.Rate(code); ok {
				reference = v
				used = domain.BaselinePrevious
			}
		}
	}

	change, percent := changeBetween(current, reference)
	return domain.RateChange{
		Currency:   code,
		Current:    current,
		Reference:  reference,
		Change:     change,
		Percent:    percent,
		IsPositive: change >= 0,
		Baseline:   used,
	}, nil
}

func (s *Service) fetchShared(ctx context.Context) domain.ExchangeRateSet {
	// callers share one in-flight fetch; it must not die with whichever request started it
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := s.fetches.Do("rates", func() (any, error) {
		return s.fetch(fetchCtx), nil
	})
	set, _ := v.(domain.ExchangeRateSet)
	return set.Clone()
}

func (s *Service) fetch(ctx context.Context) domain.ExchangeRateSet {
	cached, hasCache := s.loadCached(ctx)

	fetched, err := s.client.GetExchangeRates(ctx)
	if err == nil && len(fetched) == 0 {
		err = errors.New("rates provider returned no supported currencies")
	}
	if err != nil {
		s.metrics.RateFetch(false)
		log := logrus.WithError(err)
		if hasCache && s.clock.Since(cached.LastUpdated) < s.opts.StaleCeiling {
			log.WithField("last_updated", cached.LastUpdated).Warn("Rates fetch failed, serving stale cache")
			cached.Source = domain.SourceStaleCache
			s.metrics.RateLookup(string(domain.SourceStaleCache))
			return cached
		}
		log.Warn("Rates fetch failed, serving fallback rates")
		s.metrics.RateLookup(string(domain.SourceFallback))
		return domain.ExchangeRateSet{
			Rates:       FallbackRates(),
			LastUpdated: s.now(),
			Source:      domain.SourceFallback,
		}
	}
	s.metrics.RateFetch(true)

	rates := FallbackRates()
	for code, v := range fetched {
		if _, quoted := fallbackRates[code]; quoted && v > 0 {
			rates[code] = v
		}
	}

	lastUpdated := s.now()
	if hasCache && cached.LastUpdated.After(lastUpdated) {
		lastUpdated = cached.LastUpdated
	}
	set := domain.ExchangeRateSet{Rates: rates, LastUpdated: lastUpdated, Source: domain.SourceLive}

	// an unchanged feed keeps the earlier baseline
	if hasCache && !maps.Equal(cached.Rates, rates) {
		if err = s.saveSet(ctx, PreviousKey, cached); err != nil {
			logrus.WithError(err).Warn("Failed to persist previous rates")
		}
	}
	if err = s.saveSet(ctx, CacheKey, set); err != nil {
		logrus.WithError(err).Warn("Failed to persist fetched rates")
	}
	if s.hot != nil {
		s.hot.Set(set)
	}

	s.metrics.RateLookup(string(domain.SourceLive))
	return set
}

func (s *Service) loadCached(ctx context.Context) (domain.ExchangeRateSet, bool) {
	if s.hot != nil {
		if set, ok := s.hot.Get(); ok {
			return set, true
		}
	}
	set, ok := s.loadSet(ctx, CacheKey)
	if ok && s.hot != nil {
		s.hot.Set(set)
	}
	return set, ok
}

// loadSet treats every read or parse problem as "no cache".
func (s *Service) loadSet(ctx context.Context, key string) (domain.ExchangeRateSet, bool) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logrus.WithError(err).WithField("key", key).Warn("Failed to read cached rates")
		}
		return domain.ExchangeRateSet{}, false
	}

	var stored storedRateSet
	if err = json.Unmarshal(raw, &stored); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Discarding unreadable cached rates")
		return domain.ExchangeRateSet{}, false
	}

	rates := make(map[domain.Currency]float64, len(stored.Rates))
	for code, v := range stored.Rates {
		if v > 0 {
			rates[code] = v
		}
	}
	if len(rates) == 0 || stored.LastUpdated <= 0 {
		return domain.ExchangeRateSet{}, false
	}
	return domain.ExchangeRateSet{
		Rates:       rates,
		LastUpdated: time.UnixMilli(stored.LastUpdated),
		Source:      domain.SourceCache,
	}, true
}

func (s *Service) saveSet(ctx context.Context, key string, set domain.ExchangeRateSet) error {
	raw, err := json.Marshal(storedRateSet{
		Rates:       maps.Clone(set.Rates),
		LastUpdated: set.LastUpdated.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	if err = s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to store rates under %s: %w", key, err)
	}
	return nil
}

// now is truncated to milliseconds so a set survives a store round trip unchanged.
func (s *Service) now() time.Time {
	return time.UnixMilli(s.clock.Now().UnixMilli())
}

func fallbackRate(code domain.Currency) float64 {
	if code.IsBase() {
		return 1
	}
	return fallbackRates[code]
}

func NewService(
	client adapters.RateClient,
	store adapters.KVStore,
	hot HotCache,
	clock clockwork.Clock,
	m *metrics.Metrics,
	opts Options,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Freshness <= 0 {
		opts.Freshness = DefaultFreshness
	}
	if opts.StaleCeiling <= 0 {
		opts.StaleCeiling = DefaultStaleCeiling
	}
	if opts.StaleCeiling < opts.Freshness {
		opts.StaleCeiling = opts.Freshness
	}
	if opts.Baseline != domain.BaselinePrevious {
		opts.Baseline = domain.BaselineFallback
	}
	return &Service{client: client, store: store, hot: hot, clock: clock, metrics: m, opts: opts}
}
