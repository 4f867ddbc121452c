package securitize

import (
	"context"
	"errors"

	"tokenboard/core"
	"tokenboard/pkg/resthttp"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const headerKeyClientID = "clientid"

// New securitize connect adapter
func New(cfg core.Securitize, app core.App) core.ISecuritizeService {
	capacity := cfg.TokenCapacity
	if capacity <= 0 {
		capacity = 16
	}

	return &service{
		cfg:    cfg,
		client: resthttp.New(cfg.APIBaseURL, app),
		tokens: gcache.New(capacity).LRU().Build(),
		sf:     &singleflight.Group{},
	}
}

type service struct {
	cfg    core.Securitize
	client *resty.Client
	tokens gcache.Cache
	sf     *singleflight.Group
}

func (s *service) Platform() core.Platform {
	return core.PlatformSecuritize
}

// call execute a request, refreshing the access token once on 401
func (s *service) call(ctx context.Context, method, path string, build func(*resty.Request), obj interface{}) error {
	err := s.do(ctx, method, path, build, obj)
	if !errors.Is(err, resthttp.ErrUnauthorized) {
		return err
	}

	if _, ok := s.refreshToken(); !ok {
		return err
	}

	if _, rerr := s.Refresh(ctx); rerr != nil {
		logger.FromContext(ctx).WithError(rerr).Warnln("securitize: refresh access token")
		return err
	}

	return s.do(ctx, method, path, build, obj)
}

func (s *service) do(ctx context.Context, method, path string, build func(*resty.Request), obj interface{}) error {
	req := resthttp.Request(ctx, s.client)
	if s.cfg.IssuerID != "" {
		req.SetHeader(headerKeyClientID, s.cfg.IssuerID)
	}

	if token, ok := s.accessToken(); ok {
		req.SetAuthToken(token)
	}

	if build != nil {
		build(req)
	}

	r, err := req.Execute(method, path)
	return resthttp.ParseResponse(r, err, obj)
}
