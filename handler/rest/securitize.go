package rest

import (
	"errors"
	"fmt"
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/param"
	"tokenboard/handler/render"
	"tokenboard/handler/views"

	"github.com/go-chi/chi"
)

func requireSecuritize(securitize core.ISecuritizeService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if securitize == nil {
				render.Error(w, fmt.Errorf("%w: securitize is disabled", core.ErrNotSupported))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func authURLHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		url, state := securitize.AuthorizationURL(query.Get("scope"), query.Get("state"))
		render.JSON(w, views.AuthURL{
			URL:   url,
			State: state,
		})
	}
}

func authorizeHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Code string `json:"code" schema:"code" valid:"required"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.Error(w, err)
			return
		}

		token, err := securitize.Authorize(ctx, params.Code)
		if err != nil {
			render.Error(w, passThroughError(err))
			return
		}

		render.JSON(w, views.Success(token))
	}
}

func securitizeConfigHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := securitize.Configuration(r.Context())
		if err != nil {
			render.Error(w, passThroughError(err))
			return
		}

		render.JSON(w, views.Success(data))
	}
}

func investorHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		kind := core.InvestorInfoKind(r.URL.Query().Get("type"))
		if kind == "" {
			kind = core.InvestorInfo
		}

		data, err := securitize.Investor(ctx, id, kind)
		if err != nil {
			render.Error(w, passThroughError(err))
			return
		}

		render.JSON(w, views.Success(data))
	}
}

func whitelistingStatusHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		data, err := securitize.WhitelistingStatus(ctx, id, r.URL.Query().Get("tokenContract"))
		if err != nil {
			render.Error(w, passThroughError(err))
			return
		}

		render.JSON(w, views.Success(data))
	}
}

func requestWhitelistingHandler(securitize core.ISecuritizeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		var req core.WhitelistingRequest
		if err := param.Binding(r, &req); err != nil {
			render.Error(w, err)
			return
		}

		data, err := securitize.RequestWhitelisting(ctx, id, req)
		if err != nil {
			render.Error(w, passThroughError(err))
			return
		}

		render.JSON(w, views.Success(data))
	}
}

// passThroughError securitize calls have no fallback, upstream failures
// surface as aggregation failures while input errors keep their class
func passThroughError(err error) error {
	var code core.ErrorCode
	if errors.As(err, &code) && (code.IsInvalidInput() || code == core.ErrNotSupported) {
		return err
	}

	return fmt.Errorf("%w: securitize: %w", core.ErrAggregationFailure, err)
}
