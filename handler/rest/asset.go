package rest

import (
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/param"
	"tokenboard/handler/render"
	"tokenboard/handler/views"
	"tokenboard/internal/filter"

	"github.com/go-chi/chi"
)

func assetsHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filters, err := bindFilters(r)
		if err != nil {
			render.Error(w, err)
			return
		}

		result, err := aggregator.GetAllAssets(ctx, filters)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

// filterHandler apply filters to assets posted by the caller, nothing is fetched
func filterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Assets  []*core.TokenizedAsset `json:"assets"`
			Filters *core.AssetFilters     `json:"filters"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.Error(w, err)
			return
		}

		if err := filter.Validate(params.Filters); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, core.Unpaginated(filter.Apply(params.Assets, params.Filters)))
	}
}

func assetHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		asset, err := aggregator.GetAssetByID(ctx, id)
		if err != nil {
			render.Error(w, err)
			return
		}

		if asset == nil {
			render.NotFoundRequest(w, "asset not found")
			return
		}

		render.JSON(w, asset)
	}
}

func marketDataHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		platform := core.Platform(r.URL.Query().Get("platform"))

		data, err := aggregator.GetMarketData(ctx, id, platform)
		if err != nil {
			render.Error(w, err)
			return
		}

		if data == nil {
			render.NotFoundRequest(w, "asset not found")
			return
		}

		render.JSON(w, views.Success(data))
	}
}

func tradingHistoryHandler(aggregator core.IAggregatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		platform := core.Platform(r.URL.Query().Get("platform"))

		var params core.HistoryParams
		if err := param.Query(r.URL.Query(), &params); err != nil {
			render.Error(w, err)
			return
		}

		data, err := aggregator.GetTradingHistory(ctx, id, platform, params)
		if err != nil {
			render.Error(w, err)
			return
		}

		if data == nil {
			render.NotFoundRequest(w, "asset not found")
			return
		}

		render.JSON(w, views.Success(data))
	}
}

// bindFilters filters come from the json body {filters} or from the query string
func bindFilters(r *http.Request) (*core.AssetFilters, error) {
	if r.Method != http.MethodGet {
		var params struct {
			Filters *core.AssetFilters `json:"filters"`
		}

		if err := param.Binding(r, &params); err != nil {
			return nil, err
		}

		if params.Filters != nil {
			return params.Filters, nil
		}
	}

	var filters core.AssetFilters
	if err := param.Query(r.URL.Query(), &filters); err != nil {
		return nil, err
	}

	return &filters, nil
}
