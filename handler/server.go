package handler

import (
	"net/http"

	"tokenboard/core"
	"tokenboard/handler/render"
	"tokenboard/handler/rest"
	"tokenboard/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
	"github.com/go-chi/chi"
)

// Server server
type Server struct {
	aggregator core.IAggregatorService
	securitize core.ISecuritizeService
}

// New new server function, securitize may be nil
func New(
	aggregator core.IAggregatorService,
	securitize core.ISecuritizeService,
) Server {
	return Server{
		aggregator: aggregator,
		securitize: securitize,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, "not found")
	})

	r.Mount("/", rest.Handle(s.aggregator, s.securitize))

	return r
}

// withRequestID forward the caller's request id to upstream calls, a new one
// is generated when absent
func withRequestID(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(resthttp.HeaderKeyRequestID)
		if id == "" {
			id = uuid.New()
		}

		w.Header().Set(resthttp.HeaderKeyRequestID, id)

		ctx := resthttp.WithRequestID(r.Context(), id)
		log := logger.FromContext(ctx).WithField("request_id", id)
		ctx = logger.WithContext(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}
