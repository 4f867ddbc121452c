package aggregator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tokenboard/core"
	"tokenboard/internal/filter"

	"github.com/fox-one/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAdapterTimeout = 5 * time.Second
	defaultConcurrency    = 8
)

// Options aggregator tuning
type Options struct {
	// deadline of one adapter call
	AdapterTimeout time.Duration
	// max adapters queried at the same time
	Concurrency int
}

// New aggregator over adapters, registration order is the probe order of
// GetAssetByID and the order of the stats breakdown
func New(adapters []core.IPlatformAdapter, opts Options) core.IAggregatorService {
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = defaultAdapterTimeout
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	s := &service{
		opts:       opts,
		byPlatform: map[core.Platform]core.IPlatformAdapter{},
	}

	for _, adapter := range adapters {
		// first registration of a platform wins
		if _, ok := s.byPlatform[adapter.Platform()]; ok {
			continue
		}

		s.adapters = append(s.adapters, adapter)
		s.byPlatform[adapter.Platform()] = adapter
	}

	return s
}

type service struct {
	adapters   []core.IPlatformAdapter
	byPlatform map[core.Platform]core.IPlatformAdapter
	opts       Options
}

func (s *service) SupportedPlatforms() []core.Platform {
	platforms := make([]core.Platform, 0, len(s.adapters))
	for _, adapter := range s.adapters {
		platforms = append(platforms, adapter.Platform())
	}

	return platforms
}

func (s *service) GetAllAssets(ctx context.Context, filters *core.AssetFilters) (*core.PaginatedResult, error) {
	if err := filter.Validate(filters); err != nil {
		return nil, err
	}

	var active []core.IPlatformAdapter
	for _, adapter := range s.adapters {
		if filters.HasPlatform(adapter.Platform()) {
			active = append(active, adapter)
		}
	}

	assets, err := s.collect(ctx, active)
	if err != nil {
		return nil, err
	}

	var result *core.PaginatedResult
	err = safely(func() {
		matched := sortByMarketCap(filter.Apply(assets, filters))

		page, limit := 1, core.DefaultPageSize
		if filters != nil {
			if filters.Page > 0 {
				page = filters.Page
			}
			if filters.Limit > 0 {
				limit = filters.Limit
			}
		}

		result = core.Paginate(matched, page, limit)
	})

	return result, err
}

func (s *service) GetAssetsByPlatform(ctx context.Context, platform core.Platform, filters *core.AssetFilters) (*core.PaginatedResult, error) {
	adapter, ok := s.byPlatform[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedPlatform, platform)
	}

	if err := filter.Validate(filters); err != nil {
		return nil, err
	}

	assets, err := s.collect(ctx, []core.IPlatformAdapter{adapter})
	if err != nil {
		return nil, err
	}

	var result *core.PaginatedResult
	err = safely(func() {
		result = core.Unpaginated(sortByMarketCap(filter.Apply(assets, filters)))
	})

	return result, err
}

func (s *service) SearchAssets(ctx context.Context, query string, filters *core.AssetFilters) (*core.PaginatedResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", core.ErrInvalidFilter)
	}

	if err := filter.Validate(filters); err != nil {
		return nil, err
	}

	var active []core.IPlatformAdapter
	for _, adapter := range s.adapters {
		if filters.HasPlatform(adapter.Platform()) {
			active = append(active, adapter)
		}
	}

	assets, err := s.collect(ctx, active)
	if err != nil {
		return nil, err
	}

	var result *core.PaginatedResult
	err = safely(func() {
		matched := make([]*core.TokenizedAsset, 0)
		for _, asset := range filter.Apply(assets, filters) {
			if filter.Contains(asset, query) {
				matched = append(matched, asset)
			}
		}

		result = core.Unpaginated(sortByMarketCap(matched))
	})

	return result, err
}

func (s *service) GetAssetByID(ctx context.Context, id string) (*core.TokenizedAsset, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty asset id", core.ErrInvalidFilter)
	}

	for _, adapter := range s.adapters {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrAggregationFailure, err)
		}

		result := s.get(ctx, adapter, id)
		if !result.OK() {
			logger.FromContext(ctx).WithError(result.Err).
				WithField("platform", adapter.Platform()).
				Warnf("get asset %s", id)
			continue
		}

		if result.Value != nil {
			return result.Value, nil
		}
	}

	return nil, nil
}

// sortByMarketCap stable sort by market cap, highest first
func sortByMarketCap(assets []*core.TokenizedAsset) []*core.TokenizedAsset {
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].MarketCap > assets[j].MarketCap
	})

	return assets
}

// safely run fn, turning a panic into core.ErrAggregationFailure
func safely(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", core.ErrAggregationFailure, r)
		}
	}()

	fn()
	return nil
}

// collect list every adapter concurrently and concatenate in adapter order.
// A failing adapter contributes nothing, only the caller giving up is fatal.
func (s *service) collect(ctx context.Context, adapters []core.IPlatformAdapter) ([]*core.TokenizedAsset, error) {
	results := make([][]*core.TokenizedAsset, len(adapters))

	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)

	for idx, adapter := range adapters {
		idx, adapter := idx, adapter
		g.Go(func() error {
			results[idx] = s.list(ctx, adapter)
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrAggregationFailure, err)
	}

	var assets []*core.TokenizedAsset
	for _, r := range results {
		assets = append(assets, r...)
	}

	return assets, nil
}

func (s *service) list(ctx context.Context, adapter core.IPlatformAdapter) []*core.TokenizedAsset {
	log := logger.FromContext(ctx).WithField("platform", adapter.Platform())

	result := call(ctx, s.opts.AdapterTimeout, func(ctx context.Context) core.Result[[]*core.TokenizedAsset] {
		return adapter.ListAssets(ctx)
	})

	if !result.OK() {
		log.WithError(result.Err).Errorln("list assets")
		return nil
	}

	log.Infof("fetched %d assets", len(result.Value))
	return result.Value
}

func (s *service) get(ctx context.Context, adapter core.IPlatformAdapter, id string) core.Result[*core.TokenizedAsset] {
	return call(ctx, s.opts.AdapterTimeout, func(ctx context.Context) core.Result[*core.TokenizedAsset] {
		return adapter.GetAsset(ctx, id)
	})
}

// call run fn under timeout. A panic or an overrun becomes a failed result,
// fn is abandoned when it ignores its context.
func call[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) core.Result[T]) core.Result[T] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan core.Result[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- core.Failure[T](fmt.Errorf("%w: adapter panic: %v", core.ErrAggregationFailure, r))
			}
		}()

		done <- fn(ctx)
	}()

	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		return core.Failure[T](fmt.Errorf("%w: %w", core.ErrUpstreamUnavailable, ctx.Err()))
	}
}
