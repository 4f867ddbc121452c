package polymath

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"tokenboard/core"
	"tokenboard/internal/normalize"
	"tokenboard/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
)

const blockchain = "polymesh"

// New polymath adapter
func New(cfg core.Polymath, app core.App) core.IPlatformAdapter {
	client := resthttp.New(cfg.BaseURL, app)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &service{client: client}
}

type service struct {
	client *resty.Client
}

// securityToken record as served by GET /security-tokens
type securityToken struct {
	ID               interface{} `json:"id"`
	Name             string      `json:"name"`
	Symbol           string      `json:"symbol"`
	Ticker           string      `json:"ticker"`
	Description      string      `json:"description"`
	AssetType        string      `json:"assetType"`
	ContractAddress  string      `json:"contractAddress"`
	TotalSupply      interface{} `json:"totalSupply"`
	CurrentPrice     interface{} `json:"currentPrice"`
	MarketCap        interface{} `json:"marketCap"`
	Volume24h        interface{} `json:"volume24h"`
	Yield            interface{} `json:"yield"`
	DividendYield    interface{} `json:"dividendYield"`
	MaturityDate     interface{} `json:"maturityDate"`
	Issuer           string      `json:"issuer"`
	ComplianceStatus string      `json:"complianceStatus"`
	KYCRequired      interface{} `json:"kycRequired"`
	MinInvestment    interface{} `json:"minInvestment"`
	MaxInvestment    interface{} `json:"maxInvestment"`
	ImageURL         string      `json:"imageUrl"`
	Website          string      `json:"website"`
	Whitepaper       string      `json:"whitepaper"`
	CreatedAt        interface{} `json:"createdAt"`
	UpdatedAt        interface{} `json:"updatedAt"`
	RegulatoryStatus string      `json:"regulatoryStatus"`
	Region           string      `json:"region"`
}

func (s *service) Platform() core.Platform {
	return core.PlatformPolymath
}

func (s *service) ListAssets(ctx context.Context) core.Result[[]*core.TokenizedAsset] {
	var body struct {
		SecurityTokens *[]*securityToken `json:"securityTokens"`
	}

	r, err := resthttp.Request(ctx, s.client).Get("/security-tokens")
	if err := resthttp.ParseResponse(r, err, &body); err != nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("polymath: list security tokens: %w", err))
	}

	if body.SecurityTokens == nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("polymath: list security tokens: %w: securityTokens field missing", core.ErrMalformedResponse))
	}

	tokens := *body.SecurityTokens
	assets := make([]*core.TokenizedAsset, 0, len(tokens))
	for _, token := range tokens {
		assets = append(assets, token.toAsset())
	}

	assets = normalize.Valid(ctx, assets)
	logger.FromContext(ctx).Debugf("polymath: %d security tokens, %d kept", len(tokens), len(assets))
	return core.Success(assets)
}

func (s *service) GetAsset(ctx context.Context, id string) core.Result[*core.TokenizedAsset] {
	var token securityToken
	r, err := resthttp.Request(ctx, s.client).Get("/security-tokens/" + url.PathEscape(id))
	err = resthttp.ParseResponse(r, err, &token)
	switch {
	case errors.Is(err, resthttp.ErrNotFound):
		return core.Success[*core.TokenizedAsset](nil)
	case err != nil:
		return core.Failure[*core.TokenizedAsset](fmt.Errorf("polymath: get security token %s: %w", id, err))
	}

	asset := token.toAsset()
	if err := core.ValidateAsset(asset); err != nil {
		return core.Failure[*core.TokenizedAsset](err)
	}

	return core.Success(asset)
}

func (s *service) GetMarketData(ctx context.Context, id string) (json.RawMessage, error) {
	var data json.RawMessage
	r, err := resthttp.Request(ctx, s.client).Get("/security-tokens/" + url.PathEscape(id) + "/market-data")
	if err := resthttp.ParseResponse(r, err, &data); err != nil {
		return nil, fmt.Errorf("polymath: market data of %s: %w", id, err)
	}

	return data, nil
}

func (s *service) GetTradingHistory(ctx context.Context, id string, params core.HistoryParams) (json.RawMessage, error) {
	req := resthttp.Request(ctx, s.client)
	if params.StartDate != "" {
		req.SetQueryParam("startDate", params.StartDate)
	}

	if params.EndDate != "" {
		req.SetQueryParam("endDate", params.EndDate)
	}

	if params.Limit > 0 {
		req.SetQueryParam("limit", cast.ToString(params.Limit))
	}

	var data json.RawMessage
	r, err := req.Get("/security-tokens/" + url.PathEscape(id) + "/trading-history")
	if err := resthttp.ParseResponse(r, err, &data); err != nil {
		return nil, fmt.Errorf("polymath: trading history of %s: %w", id, err)
	}

	return data, nil
}

func (t *securityToken) toAsset() *core.TokenizedAsset {
	asset := &core.TokenizedAsset{
		ID:               normalize.String(t.ID),
		Platform:         core.PlatformPolymath,
		Name:             t.Name,
		Symbol:           t.Symbol,
		Description:      t.Description,
		AssetType:        normalize.AssetType(t.AssetType),
		TokenStandard:    core.TokenStandardST20,
		ComplianceStatus: normalize.ComplianceStatus(t.ComplianceStatus),
		ContractAddress:  t.ContractAddress,
		Blockchain:       blockchain,
		TotalSupply:      normalize.Float(t.TotalSupply),
		CurrentPrice:     normalize.Float(t.CurrentPrice),
		MarketCap:        normalize.Float(t.MarketCap),
		Volume24h:        normalize.Float(t.Volume24h),
		Yield:            normalize.FloatPtr(t.Yield),
		MaturityDate:     normalize.Timestamp(t.MaturityDate),
		MinInvestment:    normalize.Float(t.MinInvestment),
		MaxInvestment:    normalize.FloatPtr(t.MaxInvestment),
		KYCRequired:      normalize.Bool(t.KYCRequired, true),
		Issuer:           t.Issuer,
		ImageURL:         t.ImageURL,
		Website:          t.Website,
		Whitepaper:       t.Whitepaper,
		Ticker:           t.Ticker,
	}

	if asset.Yield == nil {
		asset.Yield = normalize.FloatPtr(t.DividendYield)
	}

	if asset.Symbol == "" {
		asset.Symbol = t.Ticker
	}

	asset.CreatedAt, asset.UpdatedAt = normalize.Timestamps(t.CreatedAt, t.UpdatedAt, time.Now())

	if t.RegulatoryStatus != "" {
		asset.RegulatoryStatus = &t.RegulatoryStatus
	}

	if t.Region != "" {
		asset.Region = &t.Region
	}

	return asset
}
