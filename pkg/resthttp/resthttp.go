package resthttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tokenboard/core"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	// HeaderKeyRequestID request id header key
	HeaderKeyRequestID = "X-Request-Id"
)

var (
	// ErrNotFound upstream answered 404
	ErrNotFound = fmt.Errorf("%w: not found", core.ErrUpstreamUnavailable)
	// ErrUnauthorized upstream answered 401
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", core.ErrUpstreamUnavailable)
)

type requestIDKey struct{}

// WithRequestID ctx carrying the request id forwarded to upstreams
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFrom request id held by ctx
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// New resty client bound to one upstream base url
func New(baseURL string, app core.App) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(app.RequestTimeout).
		SetRetryCount(app.RetryCount).
		SetRetryWaitTime(app.RetryWait).
		SetRetryMaxWaitTime(4 * app.RetryWait).
		AddRetryCondition(retryable).
		OnAfterResponse(logResponse)
}

func retryable(r *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}

func logResponse(_ *resty.Client, r *resty.Response) error {
	logger.FromContext(r.Request.Context()).
		WithField("status", r.StatusCode()).
		WithField("duration", r.Time().Round(time.Millisecond)).
		Debugf("%s %s", r.Request.Method, r.Request.URL)

	return nil
}

// Request new resty request
func Request(ctx context.Context, client *resty.Client) *resty.Request {
	r := client.R().SetContext(ctx)
	if id, ok := RequestIDFrom(ctx); ok {
		r.SetHeader(HeaderKeyRequestID, id)
	}

	return r
}

// ParseResponse classify the outcome of a request and decode a successful
// body into obj. Transport errors and non-2xx statuses wrap
// core.ErrUpstreamUnavailable, undecodable bodies wrap core.ErrMalformedResponse.
func ParseResponse(r *resty.Response, err error, obj interface{}) error {
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrUpstreamUnavailable, err)
	}

	switch code := r.StatusCode(); {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case !r.IsSuccess():
		return fmt.Errorf("%w: %s %s: %s", core.ErrUpstreamUnavailable, r.Request.Method, r.Request.URL, r.Status())
	}

	if obj == nil {
		return nil
	}

	if err := json.Unmarshal(r.Body(), obj); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}

	return nil
}
