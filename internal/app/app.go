package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapters"
	"storefront/internal/adapters/cache"
	"storefront/internal/adapters/httpclient"
	"storefront/internal/adapters/memory"
	"storefront/internal/adapters/postgres"
	"storefront/internal/api"
	"storefront/internal/api/handler"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/platform/capability"
	"storefront/internal/platform/db"
	httpserver "storefront/internal/platform/http"
	"storefront/internal/platform/metrics"
	"storefront/internal/prefs"
	"storefront/internal/pricing"
	"storefront/internal/purchase"
	"storefront/internal/rate"
	"storefront/internal/scheduler"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	setupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var (
		kv        adapters.KVStore
		purchases adapters.PendingPurchaseStore
	)
	switch appCfg.Storage.Driver {
	case "memory":
		kv = memory.NewKVStore()
		purchases = memory.NewPendingPurchaseStore()
		logrus.Warn("In-memory storage selected, nothing survives a restart")
	default:
		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		logrus.Info("✅ Postgres connection successful")

		if appCfg.Storage.Migrate {
			if migrateErr := db.Migrate(startupCtx, pool); migrateErr != nil {
				logrus.WithError(migrateErr).Error("Failed to apply migrations")
				return migrateErr
			}
			logrus.Info("✅ Migrations applied")
		}
		kv = postgres.NewKVStore(pool)
		purchases = postgres.NewPendingPurchaseRepository(pool)
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	clock := clockwork.NewRealClock()

	// Rates
	hotCache, err := cache.NewRateSetCache(16, appCfg.Rates.HotCacheTTL)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate cache")
		return err
	}
	defer hotCache.Close()

	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.Rates.ProviderURL)
	rateService := rate.NewService(rateClient, kv, hotCache, clock, appMetrics, rate.Options{
		Freshness:    appCfg.Rates.Freshness,
		StaleCeiling: appCfg.Rates.StaleCeiling,
		Baseline:     domain.RateBaseline(appCfg.Rates.Baseline),
	})
	rateValidator := rate.NewValidator(domain.SupportedCurrencies())
	pricingService := pricing.NewService(rateService, appMetrics)

	prefsService := prefs.NewService(kv, clock, prefs.Options{
		Location:            appCfg.Prefs.Location(),
		WheelCooldown:       appCfg.Prefs.WheelCooldown,
		InstallPromptSnooze: appCfg.Prefs.InstallPromptSnooze,
	})

	// Purchases
	sched := scheduler.New(clock)
	caps := capability.Set{Notifier: capability.NewNotifier(appCfg.Capabilities.Notifier)}
	if appCfg.Capabilities.BackgroundSync {
		caps.BackgroundSync = sched
	}
	submitter := httpclient.NewPurchaseClient(
		baseHTTPClient,
		appCfg.Purchases.Endpoint,
		appCfg.Purchases.DefaultUserID,
		appCfg.Purchases.DefaultPaymentMethod,
	)
	queue := purchase.NewQueue(purchases, submitter, caps, clock, appMetrics)
	sched.Handle(purchase.SyncTag, queue.SyncTask)

	healthURL := appCfg.Purchases.HealthURL
	if healthURL == "" {
		healthURL = appCfg.Purchases.Endpoint
	}
	monitor := purchase.NewConnectivityMonitor(httpclient.NewHealthChecker(baseHTTPClient, healthURL), queue, appMetrics)

	// Scheduler
	sched.Every("refresh-rates", appCfg.Rates.RefreshInterval, func(ctx context.Context) error {
		set := rateService.RefreshRates(ctx)
		logrus.WithField("source", set.Source).Debug("Rates refreshed")
		return nil
	})
	sched.Every("check-purchases", appCfg.Purchases.CheckInterval, monitor.Check)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := sched.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := sched.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	h := handler.NewHandler(rateService, rateValidator, pricingService, queue, prefsService)
	router := api.NewRouter(h, registry)

	logrus.WithField("port", appCfg.HTTPServer.Port).Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func setupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}
