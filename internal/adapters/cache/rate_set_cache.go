package cache

import (
	"fmt"
	"storefront/internal/domain"
	"time"

	"github.com/dgraph-io/ristretto"
)

const rateSetKey = "exchange_rates"

// RistrettoRateSetCache keeps the decoded rate set in process so price rendering
// doesn't hit the key/value store on every request.
type RistrettoRateSetCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewRateSetCache(maxItems int64, ttl time.Duration) (*RistrettoRateSetCache, error) {
	if maxItems <= 0 {
		maxItems = 16
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// cost is counted in entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate set cache failed: %w", err)
	}
	return &RistrettoRateSetCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoRateSetCache) Get() (domain.ExchangeRateSet, bool) {
	if v, ok := c.cache.Get(rateSetKey); ok {
		set, ok := v.(domain.ExchangeRateSet)
		if !ok {
			return domain.ExchangeRateSet{}, false
		}
		return set.Clone(), true
	}
	return domain.ExchangeRateSet{}, false
}

func (c *RistrettoRateSetCache) Set(set domain.ExchangeRateSet) {
	c.cache.SetWithTTL(rateSetKey, set.Clone(), 1, c.ttl)
	c.cache.Wait()
}

func (c *RistrettoRateSetCache) Invalidate() {
	c.cache.Del(rateSetKey)
}

func (c *RistrettoRateSetCache) Close() { c.cache.Close() }
