package api

import (
	"net/http"
	_ "storefront/docs"
	"storefront/internal/api/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

const userPath = "/users/{userID:[A-Za-z0-9_-]{1,64}}"

func NewRouter(h *handler.Handler, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", h.GetRates)
		r.Post("/rates/refresh", h.RefreshRates)
		r.Get("/rates/convert", h.Convert)
		r.Get("/rates/{code:[A-Za-z]{3}}/change", h.GetRateChange)
		r.Get("/currencies", h.GetCurrencies)

		r.Get("/regions", h.GetRegions)
		r.Get("/prices", h.GetAllPrices)
		r.Get("/prices/{region:[A-Za-z]{2}}", h.GetRegionPrice)

		r.Post("/purchases/pending", h.SavePending)
		r.Get("/purchases/pending", h.ListPending)
		r.Delete("/purchases/pending", h.ClearPending)
		r.Post("/purchases/pending/sync", h.SyncPending)

		r.Route(userPath, func(r chi.Router) {
			r.Get("/preferences", h.GetPreferences)
			r.Put("/preferences", h.UpdatePreferences)
			r.Get("/daily-reward", h.GetDailyReward)
			r.Post("/daily-reward/claim", h.ClaimDailyReward)
			r.Get("/wheel", h.GetWheel)
			r.Post("/wheel/spin", h.SpinWheel)
			r.Get("/install-prompt", h.GetInstallPrompt)
			r.Post("/install-prompt/dismiss", h.DismissInstallPrompt)
			r.Post("/install-prompt/installed", h.MarkInstalled)
			r.Get("/notification-banner", h.GetNotificationBanner)
			r.Post("/notification-banner/seen", h.MarkNotificationBannerSeen)
		})
	})
	return router
}
