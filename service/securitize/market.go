package securitize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"tokenboard/core"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
)

func (s *service) GetMarketData(ctx context.Context, id string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.call(ctx, resty.MethodGet, "/securities/"+url.PathEscape(id)+"/market-data", nil, &data); err != nil {
		return nil, fmt.Errorf("securitize: market data of %s: %w", id, err)
	}

	return data, nil
}

func (s *service) GetTradingHistory(ctx context.Context, id string, params core.HistoryParams) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.call(ctx, resty.MethodGet, "/securities/"+url.PathEscape(id)+"/trading-history", func(r *resty.Request) {
		r.SetQueryParams(historyQuery(params))
	}, &data); err != nil {
		return nil, fmt.Errorf("securitize: trading history of %s: %w", id, err)
	}

	return data, nil
}

func historyQuery(params core.HistoryParams) map[string]string {
	query := map[string]string{}
	if params.StartDate != "" {
		query["startDate"] = params.StartDate
	}

	if params.EndDate != "" {
		query["endDate"] = params.EndDate
	}

	if params.Limit > 0 {
		query["limit"] = cast.ToString(params.Limit)
	}

	return query
}
