package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/ethereum/go-ethereum/common"
)

// evmChains blockchains whose contract addresses are 20 byte hex addresses
var evmChains = map[string]bool{
	"ethereum":  true,
	"polygon":   true,
	"avalanche": true,
	"arbitrum":  true,
	"optimism":  true,
	"base":      true,
	"bsc":       true,
}

// IsValidPlatform platform in the known set
func IsValidPlatform(p Platform) bool {
	return govalidator.IsIn(string(p), stringsOf(Platforms)...)
}

// IsValidAssetType asset type in the known set
func IsValidAssetType(t AssetType) bool {
	return govalidator.IsIn(string(t), stringsOf(AssetTypes)...)
}

// IsValidTokenStandard token standard in the known set
func IsValidTokenStandard(s TokenStandard) bool {
	return govalidator.IsIn(string(s), stringsOf(TokenStandards)...)
}

// IsValidComplianceStatus compliance status in the known set
func IsValidComplianceStatus(s ComplianceStatus) bool {
	return govalidator.IsIn(string(s), stringsOf(ComplianceStatuses)...)
}

// IsValidLevel level in the known set
func IsValidLevel(l Level) bool {
	return govalidator.IsIn(string(l), stringsOf(Levels)...)
}

// ValidateAsset check asset against the canonical shape
func ValidateAsset(asset *TokenizedAsset) error {
	if asset == nil {
		return fmt.Errorf("%w: nil asset", ErrMalformedResponse)
	}

	invalid := func(field string, v interface{}) error {
		return fmt.Errorf("%w: asset %q has invalid %s %v", ErrMalformedResponse, asset.ID, field, v)
	}

	switch {
	case strings.TrimSpace(asset.ID) == "":
		return invalid("id", asset.ID)
	case strings.TrimSpace(asset.Name) == "":
		return invalid("name", asset.Name)
	case !IsValidPlatform(asset.Platform):
		return invalid("platform", asset.Platform)
	case !IsValidAssetType(asset.AssetType):
		return invalid("assetType", asset.AssetType)
	case !IsValidTokenStandard(asset.TokenStandard):
		return invalid("tokenStandard", asset.TokenStandard)
	case !IsValidComplianceStatus(asset.ComplianceStatus):
		return invalid("complianceStatus", asset.ComplianceStatus)
	case asset.TotalSupply < 0:
		return invalid("totalSupply", asset.TotalSupply)
	case asset.CurrentPrice < 0:
		return invalid("currentPrice", asset.CurrentPrice)
	case asset.MarketCap < 0:
		return invalid("marketCap", asset.MarketCap)
	case asset.Volume24h < 0:
		return invalid("volume24h", asset.Volume24h)
	case asset.MinInvestment < 0:
		return invalid("minInvestment", asset.MinInvestment)
	case asset.MaxInvestment != nil && *asset.MaxInvestment < 0:
		return invalid("maxInvestment", *asset.MaxInvestment)
	case asset.RiskLevel != nil && !IsValidLevel(*asset.RiskLevel):
		return invalid("riskLevel", *asset.RiskLevel)
	case asset.Liquidity != nil && !IsValidLevel(*asset.Liquidity):
		return invalid("liquidity", *asset.Liquidity)
	case !govalidator.IsRFC3339(asset.CreatedAt):
		return invalid("createdAt", asset.CreatedAt)
	case !govalidator.IsRFC3339(asset.UpdatedAt):
		return invalid("updatedAt", asset.UpdatedAt)
	}

	for field, v := range map[string]*float64{
		"totalSupply":   &asset.TotalSupply,
		"currentPrice":  &asset.CurrentPrice,
		"marketCap":     &asset.MarketCap,
		"volume24h":     &asset.Volume24h,
		"minInvestment": &asset.MinInvestment,
		"maxInvestment": asset.MaxInvestment,
		"yield":         asset.Yield,
	} {
		if v != nil && !IsFinite(*v) {
			return invalid(field, *v)
		}
	}

	for field, u := range map[string]string{
		"imageUrl":   asset.ImageURL,
		"website":    asset.Website,
		"whitepaper": asset.Whitepaper,
	} {
		if u != "" && !govalidator.IsURL(u) {
			return invalid(field, u)
		}
	}

	if asset.ContractAddress != "" && evmChains[strings.ToLower(asset.Blockchain)] &&
		!common.IsHexAddress(asset.ContractAddress) {
		return invalid("contractAddress", asset.ContractAddress)
	}

	return nil
}

// IsFinite neither NaN nor ±Inf, json cannot encode those
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for idx, v := range values {
		out[idx] = string(v)
	}

	return out
}
