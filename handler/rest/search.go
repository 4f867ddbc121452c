package rest

import (
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/param"
	"tokenboard/handler/render"
)

func searchHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			query   string
			filters *core.AssetFilters
		)

		if r.Method == http.MethodGet {
			var f core.AssetFilters
			if err := param.Query(r.URL.Query(), &f); err != nil {
				render.Error(w, err)
				return
			}

			query, filters = r.URL.Query().Get("q"), &f
		} else {
			var params struct {
				Query   string             `json:"query" valid:"required"`
				Filters *core.AssetFilters `json:"filters"`
			}

			if err := param.Binding(r, &params); err != nil {
				render.Error(w, err)
				return
			}

			query, filters = params.Query, params.Filters
		}

		result, err := aggregator.SearchAssets(ctx, query, filters)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}
