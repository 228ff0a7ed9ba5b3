package cache

import (
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRateSetCache_SetAndGet(t *testing.T) {
	c, err := NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	updatedAt := time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)
	c.Set(domain.ExchangeRateSet{
		Rates:       map[domain.Currency]float64{domain.USD: 82.0},
		LastUpdated: updatedAt,
		Source:      domain.SourceLive,
	})

	got, ok := c.Get()
	require.True(t, ok)
	require.InDelta(t, 82.0, got.Rates[domain.USD], 1e-9)
	require.True(t, got.LastUpdated.Equal(updatedAt))
}

func TestRateSetCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get()
	require.False(t, ok)
}

func TestRateSetCache_ReturnsCopies(t *testing.T) {
	c, err := NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	src := domain.ExchangeRateSet{Rates: map[domain.Currency]float64{domain.EUR: 96.0}}
	c.Set(src)
	src.Rates[domain.EUR] = 1

	got, ok := c.Get()
	require.True(t, ok)
	got.Rates[domain.EUR] = 2

	again, ok := c.Get()
	require.True(t, ok)
	require.InDelta(t, 96.0, again.Rates[domain.EUR], 1e-9)
}

func TestRateSetCache_Invalidate(t *testing.T) {
	c, err := NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	c.Set(domain.ExchangeRateSet{Rates: map[domain.Currency]float64{domain.USD: 82.0}})
	c.Invalidate()

	_, ok := c.Get()
	require.False(t, ok)
}

func TestRateSetCache_RepeatedSetKeepsLatest(t *testing.T) {
	c, err := NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	for i := 1; i <= 5; i++ {
		c.Set(domain.ExchangeRateSet{
			Rates:  map[domain.Currency]float64{domain.USD: 80.0 + float64(i)},
			Source: domain.SourceLive,
		})
	}

	got, ok := c.Get()
	require.True(t, ok)
	require.InDelta(t, 85.0, got.Rates[domain.USD], 1e-9)
}
