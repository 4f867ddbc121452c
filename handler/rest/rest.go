package rest

import (
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request. securitize is nil when the platform is disabled.
func Handle(aggregator core.IAggregatorService, securitize core.ISecuritizeService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, "not found")
	})

	router.Route("/assets", func(r chi.Router) {
		r.Get("/", assetsHandler(aggregator))
		r.Post("/", assetsHandler(aggregator))
		r.Post("/filter", filterHandler())
		r.Get("/{id}", assetHandler(aggregator))
		r.Get("/{id}/market-data", marketDataHandler(aggregator))
		r.Get("/{id}/trading-history", tradingHistoryHandler(aggregator))
	})

	router.Get("/platforms", platformsHandler(aggregator))
	router.Get("/platforms/{platform}/assets", platformAssetsHandler(aggregator))
	router.Get("/search", searchHandler(aggregator))
	router.Post("/search", searchHandler(aggregator))
	router.Get("/stats", statsHandler(aggregator))

	router.Route("/securitize", func(r chi.Router) {
		r.Use(requireSecuritize(securitize))
		r.Get("/auth-url", authURLHandler(securitize))
		r.Post("/authorize", authorizeHandler(securitize))
		r.Get("/config", securitizeConfigHandler(securitize))
		r.Get("/investors/{id}", investorHandler(securitize))
		r.Get("/investors/{id}/whitelisting", whitelistingStatusHandler(securitize))
		r.Post("/investors/{id}/whitelisting", requestWhitelistingHandler(securitize))
	})

	return router
}
