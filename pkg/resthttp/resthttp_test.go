package resthttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tokenboard/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() core.App {
	return core.App{
		RequestTimeout: time.Second,
		RetryCount:     2,
		RetryWait:      time.Millisecond,
	}
}

func TestParseResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"name":"tokenboard"}`))
		case "/broken":
			w.Write([]byte(`{"name":`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/denied":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, testApp())
	ctx := context.Background()

	var body struct {
		Name string `json:"name"`
	}

	r, err := Request(ctx, client).Get("/ok")
	require.Nil(t, ParseResponse(r, err, &body))
	assert.Equal(t, "tokenboard", body.Name)

	r, err = Request(ctx, client).Get("/broken")
	assert.ErrorIs(t, ParseResponse(r, err, &body), core.ErrMalformedResponse)

	r, err = Request(ctx, client).Get("/missing")
	err = ParseResponse(r, err, &body)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, core.ErrUpstreamUnavailable)

	r, err = Request(ctx, client).Get("/denied")
	assert.ErrorIs(t, ParseResponse(r, err, &body), ErrUnauthorized)

	r, err = Request(ctx, client).Get("/bad")
	assert.ErrorIs(t, ParseResponse(r, err, &body), core.ErrUpstreamUnavailable)
}

func TestRetryOnServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	r, err := Request(context.Background(), New(srv.URL, testApp())).Get("/")
	require.Nil(t, ParseResponse(r, err, nil))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestRequestIDForwarded(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderKeyRequestID)
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "req-1")
	r, err := Request(ctx, New(srv.URL, testApp())).Get("/")
	require.Nil(t, ParseResponse(r, err, nil))
	assert.Equal(t, "req-1", got)
}

func TestUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	app := testApp()
	app.RetryCount = 0
	r, err := Request(context.Background(), New(url, app)).Get("/")
	assert.ErrorIs(t, ParseResponse(r, err, nil), core.ErrUpstreamUnavailable)
}
