// Package filter is the single predicate deciding whether an asset satisfies
// a set of AssetFilters. Both the aggregator and the HTTP re-filter endpoint
// use it, so filtering before or after pagination yields the same answer.
package filter

import (
	"strings"

	"tokenboard/core"
)

// Matches reports whether asset satisfies every clause of filters.
// A nil filters matches everything.
func Matches(asset *core.TokenizedAsset, filters *core.AssetFilters) bool {
	if asset == nil {
		return false
	}

	if filters == nil {
		return true
	}

	if !in(filters.Platform, asset.Platform) ||
		!in(filters.AssetType, asset.AssetType) ||
		!in(filters.TokenStandard, asset.TokenStandard) ||
		!in(filters.ComplianceStatus, asset.ComplianceStatus) ||
		!in(filters.Blockchain, asset.Blockchain) {
		return false
	}

	if !atLeast(&asset.CurrentPrice, filters.MinPrice) ||
		!atMost(&asset.CurrentPrice, filters.MaxPrice) ||
		!atLeast(asset.Yield, filters.MinYield) ||
		!atMost(asset.Yield, filters.MaxYield) ||
		!atLeast(&asset.MinInvestment, filters.MinInvestment) {
		return false
	}

	if filters.YieldRange != nil {
		r, err := ParseYieldRange(*filters.YieldRange)
		if err != nil || !r.Contains(asset.Yield) {
			return false
		}
	}

	// Optional attributes pass when the asset does not carry them: upstreams do
	// not supply risk/liquidity metadata uniformly. Yield bounds above do the
	// opposite on purpose, a bound cannot be satisfied without a value.
	if !sameIfPresent(asset.RiskLevel, filters.RiskLevel) ||
		!sameIfPresent(asset.Liquidity, filters.Liquidity) ||
		!sameIfPresent(asset.RegulatoryStatus, filters.RegulatoryStatus) ||
		!sameIfPresent(asset.Region, filters.Region) {
		return false
	}

	if filters.Search != nil && !Contains(asset, *filters.Search) {
		return false
	}

	return true
}

// Apply keep the assets matching filters, order preserved
func Apply(assets []*core.TokenizedAsset, filters *core.AssetFilters) []*core.TokenizedAsset {
	out := make([]*core.TokenizedAsset, 0, len(assets))
	for _, asset := range assets {
		if Matches(asset, filters) {
			out = append(out, asset)
		}
	}

	return out
}

// Contains case-insensitive substring match of query over name, symbol,
// description and issuer
func Contains(asset *core.TokenizedAsset, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	for _, field := range []string{asset.Name, asset.Symbol, asset.Description, asset.Issuer} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

func in[T comparable](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}

	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}

func atLeast(v, bound *float64) bool {
	if bound == nil {
		return true
	}

	return v != nil && *v >= *bound
}

func atMost(v, bound *float64) bool {
	if bound == nil {
		return true
	}

	return v != nil && *v <= *bound
}

func sameIfPresent[T comparable](v, want *T) bool {
	if want == nil || v == nil {
		return true
	}

	return *v == *want
}
