// Package listing adapts scraped offering listings (Texture Capital cards,
// Centrifuge pools) published as JSON documents.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"tokenboard/core"
	"tokenboard/internal/normalize"
	"tokenboard/pkg/resthttp"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

type parser func(doc []byte, observedAt time.Time) ([]*core.TokenizedAsset, error)

type feed struct {
	platform core.Platform
	cfg      core.Feed
	client   *resty.Client
	parse    parser
}

func newFeed(platform core.Platform, cfg core.Feed, app core.App, parse parser) *feed {
	f := &feed{
		platform: platform,
		cfg:      cfg,
		parse:    parse,
	}

	if isRemote(cfg.Source) {
		f.client = resthttp.New("", app)
	}

	return f
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (f *feed) Platform() core.Platform {
	return f.platform
}

func (f *feed) ListAssets(ctx context.Context) core.Result[[]*core.TokenizedAsset] {
	doc, observedAt, err := f.fetch(ctx)
	if err != nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("%s: fetch listings: %w", f.platform, err))
	}

	assets, err := f.parse(doc, observedAt)
	if err != nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("%s: parse listings: %w", f.platform, err))
	}

	kept := normalize.Valid(ctx, assets)
	logger.FromContext(ctx).Debugf("%s: %d listings, %d kept", f.platform, len(assets), len(kept))
	return core.Success(kept)
}

// GetAsset scan the feed, listings have no per-id endpoint
func (f *feed) GetAsset(ctx context.Context, id string) core.Result[*core.TokenizedAsset] {
	result := f.ListAssets(ctx)
	if !result.OK() {
		return core.Failure[*core.TokenizedAsset](result.Err)
	}

	for _, asset := range result.Value {
		if asset.ID == id {
			return core.Success(asset)
		}
	}

	return core.Success[*core.TokenizedAsset](nil)
}

func (f *feed) GetMarketData(_ context.Context, _ string) (json.RawMessage, error) {
	return nil, fmt.Errorf("%w: %s publishes no market data", core.ErrNotSupported, f.platform)
}

func (f *feed) GetTradingHistory(_ context.Context, _ string, _ core.HistoryParams) (json.RawMessage, error) {
	return nil, fmt.Errorf("%w: %s publishes no trading history", core.ErrNotSupported, f.platform)
}

// fetch read the listing document and the time it was observed
func (f *feed) fetch(ctx context.Context) ([]byte, time.Time, error) {
	if f.cfg.Source == "" {
		return nil, time.Time{}, fmt.Errorf("%w: no listing source configured", core.ErrUpstreamUnavailable)
	}

	if f.client != nil {
		var doc json.RawMessage
		r, err := resthttp.Request(ctx, f.client).Get(f.cfg.Source)
		if err := resthttp.ParseResponse(r, err, &doc); err != nil {
			return nil, time.Time{}, err
		}

		return doc, r.ReceivedAt(), nil
	}

	info, err := os.Stat(f.cfg.Source)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", core.ErrUpstreamUnavailable, err)
	}

	doc, err := os.ReadFile(f.cfg.Source)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", core.ErrUpstreamUnavailable, err)
	}

	return doc, info.ModTime(), nil
}

// absolute resolve a scraped href against the site url, "" when unusable
func absolute(siteURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.EqualFold(href, "n/a") {
		return ""
	}

	base, err := url.Parse(strings.TrimSuffix(siteURL, "/") + "/")
	if err != nil {
		return ""
	}

	ref, err := url.Parse(strings.TrimPrefix(href, "#"))
	if err != nil {
		return ""
	}

	link := base.ResolveReference(ref).String()
	if !govalidator.IsURL(link) {
		return ""
	}

	return link
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}

	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
