package rest

import (
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/render"
	"tokenboard/handler/views"

	"github.com/go-chi/chi"
)

func platformsHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, views.Platforms{
			Platforms: aggregator.SupportedPlatforms(),
		})
	}
}

func platformAssetsHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		platform := core.Platform(chi.URLParam(r, "platform"))

		filters, err := bindFilters(r)
		if err != nil {
			render.Error(w, err)
			return
		}

		result, err := aggregator.GetAssetsByPlatform(ctx, platform, filters)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func statsHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := aggregator.GetPlatformStats(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, stats)
	}
}
