package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the storefront counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Rate lookups by served source (live, cache, stale_cache, fallback)
	RateLookupsTotal *prometheus.CounterVec
	// Network fetches against the rate provider by outcome (success, error)
	RateFetchesTotal *prometheus.CounterVec

	// Price conversions that fell back to the base currency
	ConversionFallbacksTotal *prometheus.CounterVec

	PurchasesQueuedTotal prometheus.Counter
	// Submissions during sync by outcome (success, failed)
	PurchaseSubmissionsTotal *prometheus.CounterVec
	PurchaseSyncDuration     prometheus.Histogram
	PendingPurchases         prometheus.Gauge

	ConnectivityOnline prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RateLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_rate_lookups_total",
				Help: "Exchange rate set lookups by the source that served them",
			},
			[]string{"source"},
		),
		RateFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_rate_fetches_total",
				Help: "Requests to the exchange rate provider by outcome",
			},
			[]string{"outcome"},
		),
		ConversionFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_price_conversion_fallbacks_total",
				Help: "Price conversions answered in base currency because no rate was usable",
			},
			[]string{"currency"},
		),
		PurchasesQueuedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_purchases_queued_total",
				Help: "Purchases saved to the pending queue",
			},
		),
		PurchaseSubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_purchase_submissions_total",
				Help: "Pending purchase submissions by outcome",
			},
			[]string{"outcome"},
		),
		PurchaseSyncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "storefront_purchase_sync_duration_seconds",
				Help:    "Duration of a pending purchase sync run",
				Buckets: prometheus.DefBuckets,
			},
		),
		PendingPurchases: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_pending_purchases",
				Help: "Purchases waiting in the queue after the last sync or save",
			},
		),
		ConnectivityOnline: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_purchase_backend_online",
				Help: "1 when the purchase backend answered the last health check",
			},
		),
	}
}

func (m *Metrics) RateLookup(source string) {
	if m == nil {
		return
	}
	m.RateLookupsTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) RateFetch(ok bool) {
	if m == nil {
		return
	}
	m.RateFetchesTotal.WithLabelValues(outcome(ok)).Inc()
}

func (m *Metrics) ConversionFallback(currency string) {
	if m == nil {
		return
	}
	m.ConversionFallbacksTotal.WithLabelValues(currency).Inc()
}

func (m *Metrics) PurchaseQueued() {
	if m == nil {
		return
	}
	m.PurchasesQueuedTotal.Inc()
}

func (m *Metrics) PurchaseSubmitted(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.PurchaseSubmissionsTotal.WithLabelValues("success").Inc()
		return
	}
	m.PurchaseSubmissionsTotal.WithLabelValues("failed").Inc()
}

func (m *Metrics) SyncDuration(seconds float64) {
	if m == nil {
		return
	}
	m.PurchaseSyncDuration.Observe(seconds)
}

func (m *Metrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.PendingPurchases.Set(float64(n))
}

func (m *Metrics) SetOnline(online bool) {
	if m == nil {
		return
	}
	if online {
		m.ConnectivityOnline.Set(1)
		return
	}
	m.ConnectivityOnline.Set(0)
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
