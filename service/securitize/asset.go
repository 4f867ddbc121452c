package securitize

import (
	"bytes"
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
	"github.com/shopspring/decimal"
)

// security record as served by GET /securities
type security struct {
	ID               interface{} `json:"id"`
	Name             string      `json:"name"`
	Symbol           string      `json:"symbol"`
	Description      string      `json:"description"`
	AssetType        string      `json:"assetType"`
	TokenStandard    string      `json:"tokenStandard"`
	ContractAddress  string      `json:"contractAddress"`
	Blockchain       string      `json:"blockchain"`
	TotalSupply      interface{} `json:"totalSupply"`
	CurrentPrice     interface{} `json:"currentPrice"`
	MarketCap        interface{} `json:"marketCap"`
	Volume24h        interface{} `json:"volume24h"`
	Yield            interface{} `json:"yield"`
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
	Jurisdiction     string      `json:"jurisdiction"`
	RegulatoryStatus string      `json:"regulatoryStatus"`
	RiskLevel        string      `json:"riskLevel"`
	Liquidity        string      `json:"liquidity"`
	Region           string      `json:"region"`
}

func (s *service) ListAssets(ctx context.Context) core.Result[[]*core.TokenizedAsset] {
	var body json.RawMessage
	if err := s.call(ctx, resty.MethodGet, "/securities", nil, &body); err != nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("securitize: list securities: %w", err))
	}

	securities, err := decodeSecurities(body)
	if err != nil {
		return core.Failure[[]*core.TokenizedAsset](fmt.Errorf("securitize: list securities: %w", err))
	}

	assets := make([]*core.TokenizedAsset, 0, len(securities))
	for _, sec := range securities {
		assets = append(assets, sec.toAsset())
	}

	assets = normalize.Valid(ctx, assets)
	logger.FromContext(ctx).Debugf("securitize: %d securities, %d kept", len(securities), len(assets))
	return core.Success(assets)
}

func (s *service) GetAsset(ctx context.Context, id string) core.Result[*core.TokenizedAsset] {
	var sec security
	err := s.call(ctx, resty.MethodGet, "/securities/"+url.PathEscape(id), nil, &sec)
	switch {
	case errors.Is(err, resthttp.ErrNotFound):
		return core.Success[*core.TokenizedAsset](nil)
	case err != nil:
		return core.Failure[*core.TokenizedAsset](fmt.Errorf("securitize: get security %s: %w", id, err))
	}

	asset := sec.toAsset()
	if err := core.ValidateAsset(asset); err != nil {
		return core.Failure[*core.TokenizedAsset](err)
	}

	return core.Success(asset)
}

// decodeSecurities accept both a bare array and {"securities": [...]}
func decodeSecurities(body json.RawMessage) ([]*security, error) {
	var securities []*security

	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &securities); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
		}

		return securities, nil
	}

	var wrapped struct {
		Securities *[]*security `json:"securities"`
	}

	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}

	if wrapped.Securities == nil {
		return nil, fmt.Errorf("%w: securities field missing", core.ErrMalformedResponse)
	}

	return *wrapped.Securities, nil
}

func (sec *security) toAsset() *core.TokenizedAsset {
	asset := &core.TokenizedAsset{
		ID:               normalize.String(sec.ID),
		Platform:         core.PlatformSecuritize,
		Name:             sec.Name,
		Symbol:           sec.Symbol,
		Description:      sec.Description,
		AssetType:        normalize.AssetType(sec.AssetType),
		TokenStandard:    core.TokenStandardDSProtocol,
		ComplianceStatus: normalize.ComplianceStatus(sec.ComplianceStatus),
		ContractAddress:  sec.ContractAddress,
		Blockchain:       sec.Blockchain,
		TotalSupply:      normalize.Float(sec.TotalSupply),
		CurrentPrice:     normalize.Float(sec.CurrentPrice),
		Volume24h:        normalize.Float(sec.Volume24h),
		Yield:            normalize.FloatPtr(sec.Yield),
		MaturityDate:     normalize.Timestamp(sec.MaturityDate),
		MinInvestment:    normalize.Float(sec.MinInvestment),
		MaxInvestment:    normalize.FloatPtr(sec.MaxInvestment),
		KYCRequired:      normalize.Bool(sec.KYCRequired, true),
		Issuer:           sec.Issuer,
		ImageURL:         sec.ImageURL,
		Website:          sec.Website,
		Whitepaper:       sec.Whitepaper,
		RiskLevel:        normalize.Level(sec.RiskLevel),
		Liquidity:        normalize.Level(sec.Liquidity),
		Jurisdiction:     sec.Jurisdiction,
	}

	if std := core.TokenStandard(sec.TokenStandard); core.IsValidTokenStandard(std) {
		asset.TokenStandard = std
	}

	if marketCap := normalize.FloatPtr(sec.MarketCap); marketCap != nil {
		asset.MarketCap = *marketCap
	} else {
		asset.MarketCap, _ = decimal.NewFromFloat(asset.CurrentPrice).
			Mul(decimal.NewFromFloat(asset.TotalSupply)).
			Float64()
	}

	asset.CreatedAt, asset.UpdatedAt = normalize.Timestamps(sec.CreatedAt, sec.UpdatedAt, time.Now())

	if sec.RegulatoryStatus != "" {
		asset.RegulatoryStatus = &sec.RegulatoryStatus
	}

	if sec.Region != "" {
		asset.Region = &sec.Region
	}

	return asset
}
