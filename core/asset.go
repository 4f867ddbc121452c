package core

import (
	"context"
	"encoding/json"
)

// Platform tokenization platform tag
type Platform string

const (
	PlatformSecuritize Platform = "securitize"
	PlatformPolymath   Platform = "polymath"
	PlatformTZero      Platform = "tzero"
	PlatformHarbor     Platform = "harbor"
	PlatformTokensoft  Platform = "tokensoft"
	PlatformTexture    Platform = "texture"
	PlatformCentrifuge Platform = "centrifuge"
)

// Platforms all known platform tags
var Platforms = []Platform{
	PlatformSecuritize,
	PlatformPolymath,
	PlatformTZero,
	PlatformHarbor,
	PlatformTokensoft,
	PlatformTexture,
	PlatformCentrifuge,
}

// AssetType asset class
type AssetType string

const (
	AssetTypeRealEstate     AssetType = "real-estate"
	AssetTypePrivateEquity  AssetType = "private-equity"
	AssetTypeVentureCapital AssetType = "venture-capital"
	AssetTypeDebt           AssetType = "debt"
	AssetTypeCommodities    AssetType = "commodities"
	AssetTypeArt            AssetType = "art"
	AssetTypeOther          AssetType = "other"
)

// AssetTypes all asset types
var AssetTypes = []AssetType{
	AssetTypeRealEstate,
	AssetTypePrivateEquity,
	AssetTypeVentureCapital,
	AssetTypeDebt,
	AssetTypeCommodities,
	AssetTypeArt,
	AssetTypeOther,
}

// TokenStandard on-chain token interface
type TokenStandard string

const (
	TokenStandardERC1400    TokenStandard = "ERC-1400"
	TokenStandardERC1404    TokenStandard = "ERC-1404"
	TokenStandardDSProtocol TokenStandard = "DS-Protocol"
	TokenStandardRToken     TokenStandard = "R-Token"
	TokenStandardST20       TokenStandard = "ST-20"
)

// TokenStandards all token standards
var TokenStandards = []TokenStandard{
	TokenStandardERC1400,
	TokenStandardERC1404,
	TokenStandardDSProtocol,
	TokenStandardRToken,
	TokenStandardST20,
}

// ComplianceStatus KYC/regulatory verification state of an offering
type ComplianceStatus string

const (
	ComplianceVerified    ComplianceStatus = "verified"
	CompliancePending     ComplianceStatus = "pending"
	ComplianceRejected    ComplianceStatus = "rejected"
	ComplianceNotRequired ComplianceStatus = "not-required"
)

// ComplianceStatuses all compliance statuses
var ComplianceStatuses = []ComplianceStatus{
	ComplianceVerified,
	CompliancePending,
	ComplianceRejected,
	ComplianceNotRequired,
}

// Level low/medium/high grade used by risk and liquidity
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Levels all levels
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// TokenizedAsset canonical asset record, independent of the source platform
type TokenizedAsset struct {
	ID          string   `json:"id"`
	Platform    Platform `json:"platform"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`

	AssetType        AssetType        `json:"assetType"`
	TokenStandard    TokenStandard    `json:"tokenStandard"`
	ComplianceStatus ComplianceStatus `json:"complianceStatus"`

	ContractAddress string `json:"contractAddress"`
	Blockchain      string `json:"blockchain"`

	TotalSupply  float64  `json:"totalSupply"`
	CurrentPrice float64  `json:"currentPrice"`
	MarketCap    float64  `json:"marketCap"`
	Volume24h    float64  `json:"volume24h"`
	Yield        *float64 `json:"yield,omitempty"`
	MaturityDate string   `json:"maturityDate,omitempty"`

	MinInvestment float64  `json:"minInvestment"`
	MaxInvestment *float64 `json:"maxInvestment,omitempty"`
	KYCRequired   bool     `json:"kycRequired"`

	Issuer     string `json:"issuer"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Website    string `json:"website,omitempty"`
	Whitepaper string `json:"whitepaper,omitempty"`
	Link       string `json:"link,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`

	// enrichment only, upstreams do not supply these uniformly
	RiskLevel        *Level  `json:"riskLevel,omitempty"`
	Liquidity        *Level  `json:"liquidity,omitempty"`
	RegulatoryStatus *string `json:"regulatoryStatus,omitempty"`
	Region           *string `json:"region,omitempty"`

	// platform specific
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Ticker       string `json:"ticker,omitempty"`
}

// HistoryParams trading history query
type HistoryParams struct {
	StartDate string `json:"startDate,omitempty" schema:"startDate"`
	EndDate   string `json:"endDate,omitempty" schema:"endDate"`
	Limit     int    `json:"limit,omitempty" schema:"limit"`
}

// IPlatformAdapter wraps one upstream platform and produces canonical assets.
//
// Failures are reported through Result, never by panicking. A GetAsset result
// with neither value nor error means the platform does not know the id.
type IPlatformAdapter interface {
	Platform() Platform
	ListAssets(ctx context.Context) Result[[]*TokenizedAsset]
	GetAsset(ctx context.Context, id string) Result[*TokenizedAsset]
	GetMarketData(ctx context.Context, id string) (json.RawMessage, error)
	GetTradingHistory(ctx context.Context, id string, params HistoryParams) (json.RawMessage, error)
}

// IAggregatorService merges every registered adapter into one queryable universe
type IAggregatorService interface {
	GetAllAssets(ctx context.Context, filters *AssetFilters) (*PaginatedResult, error)
	GetAssetsByPlatform(ctx context.Context, platform Platform, filters *AssetFilters) (*PaginatedResult, error)
	SearchAssets(ctx context.Context, query string, filters *AssetFilters) (*PaginatedResult, error)
	GetAssetByID(ctx context.Context, id string) (*TokenizedAsset, error)
	GetMarketData(ctx context.Context, id string, platform Platform) (json.RawMessage, error)
	GetTradingHistory(ctx context.Context, id string, platform Platform, params HistoryParams) (json.RawMessage, error)
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
	SupportedPlatforms() []Platform
}
