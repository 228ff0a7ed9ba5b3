package rate

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/cache"
	"storefront/internal/adapters/memory"
	"storefront/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetExchangeRates(ctx context.Context) (map[domain.Currency]float64, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[domain.Currency]float64)
	return rates, args.Error(1)
}

var startTime = time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts Options) (*Service, *MockRateClient, *memory.KVStore, *clockwork.FakeClock) {
	t.Helper()
	client := new(MockRateClient)
	store := memory.NewKVStore()
	clock := clockwork.NewFakeClockAt(startTime)
	return NewService(client, store, nil, clock, nil, opts), client, store, clock
}

func liveRates() map[domain.Currency]float64 {
	return map[domain.Currency]float64{
		domain.USD: 81.5,
		domain.EUR: 95.2,
		domain.GBP: 108.0,
		domain.CNY: 11.4,
		domain.JPY: 0.54,
		domain.TRY: 2.5,
		domain.UAH: 2.0,
		domain.KZT: 0.17,
		domain.BYN: 24.8,
	}
}

func seedCache(t *testing.T, store *memory.KVStore, key string, rates map[domain.Currency]float64, at time.Time) {
	t.Helper()
	raw, err := json.Marshal(storedRateSet{Rates: rates, LastUpdated: at.UnixMilli()})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), key, raw))
}

// --- GetExchangeRates ---

func TestService_GetExchangeRates_FetchesOnceWithinWindow(t *testing.T) {
	svc, client, _, clock := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	first := svc.GetExchangeRates(context.Background())
	require.Equal(t, domain.SourceLive, first.Source)
	require.InDelta(t, 81.5, first.Rates[domain.USD], 1e-9)

	clock.Advance(3 * time.Hour)
	second := svc.GetExchangeRates(context.Background())
	require.Equal(t, domain.SourceCache, second.Source)
	require.Equal(t, first.Rates, second.Rates)
	require.True(t, first.LastUpdated.Equal(second.LastUpdated))

	client.AssertNumberOfCalls(t, "GetExchangeRates", 1)
}

func TestService_GetExchangeRates_RefetchesAfterWindow(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{})
	seedCache(t, store, CacheKey, liveRates(), startTime)
	clock.Advance(4 * time.Hour)

	updated := liveRates()
	updated[domain.USD] = 83.0
	client.On("GetExchangeRates", mock.Anything).Return(updated, nil).Once()

	set := svc.GetExchangeRates(context.Background())
	require.Equal(t, domain.SourceLive, set.Source)
	require.InDelta(t, 83.0, set.Rates[domain.USD], 1e-9)
	require.True(t, set.LastUpdated.Equal(clock.Now()))

	// previous live set is kept for the previous baseline
	raw, err := store.Get(context.Background(), PreviousKey)
	require.NoError(t, err)
	var prev storedRateSet
	require.NoError(t, json.Unmarshal(raw, &prev))
	require.InDelta(t, 81.5, prev.Rates[domain.USD], 1e-9)
	client.AssertExpectations(t)
}

func TestService_GetExchangeRates_PersistsFetchedSet(t *testing.T) {
	svc, client, store, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	set := svc.GetExchangeRates(context.Background())

	raw, err := store.Get(context.Background(), CacheKey)
	require.NoError(t, err)
	var stored storedRateSet
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Equal(t, set.LastUpdated.UnixMilli(), stored.LastUpdated)
	require.Equal(t, set.Rates, stored.Rates)
}

func TestService_GetExchangeRates_MissingCurrencyTakesFallback(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{domain.USD: 90.0}, nil).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceLive, set.Source)
	require.InDelta(t, 90.0, set.Rates[domain.USD], 1e-9)
	require.InDelta(t, 96.0, set.Rates[domain.EUR], 1e-9)
	require.Len(t, set.Rates, len(domain.QuotedCurrencies))
}

func TestService_GetExchangeRates_FailureServesStaleCache(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{})
	seedCache(t, store, CacheKey, liveRates(), startTime)
	clock.Advance(23 * time.Hour)
	client.On("GetExchangeRates", mock.Anything).Return(nil, errors.New("dial tcp: timeout")).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceStaleCache, set.Source)
	require.InDelta(t, 81.5, set.Rates[domain.USD], 1e-9)
	require.True(t, set.LastUpdated.Equal(startTime))
}

func TestService_GetExchangeRates_FailureBeyondCeilingServesFallback(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{})
	seedCache(t, store, CacheKey, liveRates(), startTime)
	clock.Advance(25 * time.Hour)
	client.On("GetExchangeRates", mock.Anything).Return(nil, errors.New("unexpected status code 502")).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceFallback, set.Source)
	require.Equal(t, FallbackRates(), set.Rates)
}

func TestService_GetExchangeRates_FailureWithoutCacheServesFallback(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(nil, errors.New("failed to decode rates response")).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceFallback, set.Source)
	require.NotEmpty(t, set.Rates)
	for _, v := range set.Rates {
		require.Greater(t, v, 0.0)
	}
}

func TestService_GetExchangeRates_EmptyPayloadIsFailure(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{}, nil).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceFallback, set.Source)
}

func TestService_GetExchangeRates_CorruptCacheIsIgnored(t *testing.T) {
	svc, client, store, _ := newTestService(t, Options{})
	require.NoError(t, store.Set(context.Background(), CacheKey, []byte("{not json")))
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	set := svc.GetExchangeRates(context.Background())

	require.Equal(t, domain.SourceLive, set.Source)
	client.AssertExpectations(t)
}

func TestService_GetExchangeRates_LastUpdatedNeverMovesBack(t *testing.T) {
	svc, client, store, _ := newTestService(t, Options{})
	// cache stamped ahead of the local clock, e.g. written by another instance
	ahead := startTime.Add(time.Hour)
	seedCache(t, store, CacheKey, liveRates(), ahead)
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	set := svc.RefreshRates(context.Background())

	require.Equal(t, domain.SourceLive, set.Source)
	require.True(t, set.LastUpdated.Equal(ahead))
}

func TestService_GetExchangeRates_UsesHotCache(t *testing.T) {
	client := new(MockRateClient)
	store := memory.NewKVStore()
	clock := clockwork.NewFakeClockAt(startTime)
	hot := &stubHotCache{}
	svc := NewService(client, store, hot, clock, nil, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	svc.GetExchangeRates(context.Background())
	require.True(t, hot.ok)

	// drop the store copy; the hot layer still answers
	require.NoError(t, store.Delete(context.Background(), CacheKey))
	set := svc.GetExchangeRates(context.Background())
	require.Equal(t, domain.SourceCache, set.Source)
	client.AssertNumberOfCalls(t, "GetExchangeRates", 1)
}

func TestService_GetExchangeRates_RistrettoHotLayer(t *testing.T) {
	client := new(MockRateClient)
	store := memory.NewKVStore()
	hot, err := cache.NewRateSetCache(16, time.Hour)
	require.NoError(t, err)
	t.Cleanup(hot.Close)
	svc := NewService(client, store, hot, clockwork.NewFakeClockAt(startTime), nil, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(liveRates(), nil).Once()

	first := svc.GetExchangeRates(context.Background())
	_, ok := hot.Get()
	require.True(t, ok)

	require.NoError(t, store.Delete(context.Background(), CacheKey))
	second := svc.GetExchangeRates(context.Background())
	require.Equal(t, domain.SourceCache, second.Source)
	require.Equal(t, first.Rates, second.Rates)
	client.AssertNumberOfCalls(t, "GetExchangeRates", 1)
}

func TestService_GetExchangeRates_ConcurrentCallersShareFetch(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	release := make(chan struct{})
	client.On("GetExchangeRates", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(liveRates(), nil)

	var wg sync.WaitGroup
	results := make([]domain.ExchangeRateSet, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.GetExchangeRates(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		require.InDelta(t, 81.5, r.Rates[domain.USD], 1e-9)
	}
	// late goroutines may find the fresh cache instead of joining the flight
	require.LessOrEqual(t, len(client.Calls), 1)
}

// --- RefreshRates ---

func TestService_RefreshRates_ForcesFetchWithinWindow(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{})
	seedCache(t, store, CacheKey, liveRates(), startTime)
	clock.Advance(time.Minute)

	updated := liveRates()
	updated[domain.EUR] = 99.9
	client.On("GetExchangeRates", mock.Anything).Return(updated, nil).Once()

	set := svc.RefreshRates(context.Background())

	require.Equal(t, domain.SourceLive, set.Source)
	require.InDelta(t, 99.9, set.Rates[domain.EUR], 1e-9)
	client.AssertExpectations(t)
}

func TestService_RefreshRates_FailureKeepsCache(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{})
	seedCache(t, store, CacheKey, liveRates(), startTime)
	clock.Advance(time.Minute)
	client.On("GetExchangeRates", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	set := svc.RefreshRates(context.Background())

	require.Equal(t, domain.SourceStaleCache, set.Source)
	require.InDelta(t, 81.5, set.Rates[domain.USD], 1e-9)
}

// --- GetRateChange ---

func TestService_GetRateChange_FallbackBaseline(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{domain.USD: 84.05}, nil).Once()

	change, err := svc.GetRateChange(context.Background(), domain.USD, "")

	require.NoError(t, err)
	require.Equal(t, domain.BaselineFallback, change.Baseline)
	require.InDelta(t, 82.0, change.Reference, 1e-9)
	require.InDelta(t, 2.05, change.Change, 1e-9)
	require.InDelta(t, 2.5, change.Percent, 1e-9)
	require.True(t, change.IsPositive)
}

func TestService_GetRateChange_PreviousBaseline(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{Baseline: domain.BaselinePrevious})
	seedCache(t, store, CacheKey, map[domain.Currency]float64{domain.USD: 80.0}, startTime)
	clock.Advance(5 * time.Hour)
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{domain.USD: 78.0}, nil).Once()

	change, err := svc.GetRateChange(context.Background(), domain.USD, "")

	require.NoError(t, err)
	require.Equal(t, domain.BaselinePrevious, change.Baseline)
	require.InDelta(t, 80.0, change.Reference, 1e-9)
	require.InDelta(t, -2.0, change.Change, 1e-9)
	require.InDelta(t, -2.5, change.Percent, 1e-9)
	require.False(t, change.IsPositive)
}

func TestService_GetRateChange_PreviousSurvivesUnchangedFeed(t *testing.T) {
	svc, client, store, clock := newTestService(t, Options{Baseline: domain.BaselinePrevious})
	seedCache(t, store, CacheKey, map[domain.Currency]float64{domain.USD: 80.0}, startTime)
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{domain.USD: 82.0}, nil).Twice()

	clock.Advance(5 * time.Hour)
	change, err := svc.GetRateChange(context.Background(), domain.USD, "")
	require.NoError(t, err)
	require.InDelta(t, 80.0, change.Reference, 1e-9)
	require.InDelta(t, 2.0, change.Change, 1e-9)

	// the daily feed has not moved; the earlier set stays the baseline
	clock.Advance(5 * time.Hour)
	change, err = svc.GetRateChange(context.Background(), domain.USD, "")
	require.NoError(t, err)
	require.Equal(t, domain.BaselinePrevious, change.Baseline)
	require.InDelta(t, 80.0, change.Reference, 1e-9)
	require.InDelta(t, 2.0, change.Change, 1e-9)
	client.AssertNumberOfCalls(t, "GetExchangeRates", 2)
}

func TestService_GetRateChange_PreviousWithoutHistoryUsesFallback(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})
	client.On("GetExchangeRates", mock.Anything).Return(map[domain.Currency]float64{domain.USD: 82.0}, nil).Once()

	change, err := svc.GetRateChange(context.Background(), domain.USD, domain.BaselinePrevious)

	require.NoError(t, err)
	require.Equal(t, domain.BaselineFallback, change.Baseline)
	require.InDelta(t, 0.0, change.Change, 1e-9)
	require.True(t, change.IsPositive)
}

func TestService_GetRateChange_UnsupportedCurrency(t *testing.T) {
	svc, client, _, _ := newTestService(t, Options{})

	_, err := svc.GetRateChange(context.Background(), domain.Currency("XYZ"), "")

	require.ErrorIs(t, err, domain.ErrCurrencyUnsupported)
	client.AssertNotCalled(t, "GetExchangeRates", mock.Anything)
}

// --- NewService ---

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(new(MockRateClient), memory.NewKVStore(), nil, nil, nil, Options{Baseline: "weird"})
	require.Equal(t, DefaultFreshness, svc.opts.Freshness)
	require.Equal(t, DefaultStaleCeiling, svc.opts.StaleCeiling)
	require.Equal(t, domain.BaselineFallback, svc.opts.Baseline)
	require.NotNil(t, svc.clock)
}

type stubHotCache struct {
	mu  sync.Mutex
	set domain.ExchangeRateSet
	ok  bool
}

func (c *stubHotCache) Get() (domain.ExchangeRateSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Clone(), c.ok
}

func (c *stubHotCache) Set(set domain.ExchangeRateSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set, c.ok = set.Clone(), true
}

func (c *stubHotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ok = false
}
