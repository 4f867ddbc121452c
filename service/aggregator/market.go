package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tokenboard/core"
)

func (s *service) GetMarketData(ctx context.Context, id string, platform core.Platform) (json.RawMessage, error) {
	adapter, err := s.route(ctx, id, platform)
	if adapter == nil || err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.AdapterTimeout)
	defer cancel()

	data, err := adapter.GetMarketData(ctx, id)
	if err != nil {
		return nil, passThroughError(fmt.Sprintf("market data of %s on %s", id, adapter.Platform()), err)
	}

	return data, nil
}

func (s *service) GetTradingHistory(ctx context.Context, id string, platform core.Platform, params core.HistoryParams) (json.RawMessage, error) {
	if params.Limit < 0 {
		return nil, fmt.Errorf("%w: limit %d", core.ErrInvalidFilter, params.Limit)
	}

	adapter, err := s.route(ctx, id, platform)
	if adapter == nil || err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.AdapterTimeout)
	defer cancel()

	data, err := adapter.GetTradingHistory(ctx, id, params)
	if err != nil {
		return nil, passThroughError(fmt.Sprintf("trading history of %s on %s", id, adapter.Platform()), err)
	}

	return data, nil
}

// route pick the adapter serving id. Without a platform the asset is located
// first; nil adapter and nil error means the asset is unknown.
func (s *service) route(ctx context.Context, id string, platform core.Platform) (core.IPlatformAdapter, error) {
	if platform != "" {
		adapter, ok := s.byPlatform[platform]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedPlatform, platform)
		}

		return adapter, nil
	}

	asset, err := s.GetAssetByID(ctx, id)
	if asset == nil || err != nil {
		return nil, err
	}

	return s.byPlatform[asset.Platform], nil
}

// passThroughError upstream failures of pass-through calls have no fallback,
// they surface as aggregation failures. Unsupported operations keep their class.
func passThroughError(what string, err error) error {
	if errors.Is(err, core.ErrNotSupported) {
		return err
	}

	return fmt.Errorf("%w: %s: %w", core.ErrAggregationFailure, what, err)
}
