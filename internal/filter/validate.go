package filter

import (
	"fmt"

	"tokenboard/core"
)

// Validate reject malformed filter input. Every error wraps core.ErrInvalidFilter.
func Validate(filters *core.AssetFilters) error {
	if filters == nil {
		return nil
	}

	for _, p := range filters.Platform {
		if !core.IsValidPlatform(p) {
			return invalid("platform", p)
		}
	}

	for _, t := range filters.AssetType {
		if !core.IsValidAssetType(t) {
			return invalid("assetType", t)
		}
	}

	for _, s := range filters.TokenStandard {
		if !core.IsValidTokenStandard(s) {
			return invalid("tokenStandard", s)
		}
	}

	for _, s := range filters.ComplianceStatus {
		if !core.IsValidComplianceStatus(s) {
			return invalid("complianceStatus", s)
		}
	}

	for name, bound := range map[string]*float64{
		"minPrice":      filters.MinPrice,
		"maxPrice":      filters.MaxPrice,
		"minYield":      filters.MinYield,
		"maxYield":      filters.MaxYield,
		"minInvestment": filters.MinInvestment,
	} {
		if bound != nil && (*bound < 0 || !core.IsFinite(*bound)) {
			return invalid(name, *bound)
		}
	}

	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return fmt.Errorf("%w: minPrice %v above maxPrice %v", core.ErrInvalidFilter, *filters.MinPrice, *filters.MaxPrice)
	}

	if filters.MinYield != nil && filters.MaxYield != nil && *filters.MinYield > *filters.MaxYield {
		return fmt.Errorf("%w: minYield %v above maxYield %v", core.ErrInvalidFilter, *filters.MinYield, *filters.MaxYield)
	}

	if filters.YieldRange != nil {
		if _, err := ParseYieldRange(*filters.YieldRange); err != nil {
			return err
		}
	}

	if filters.RiskLevel != nil && !core.IsValidLevel(*filters.RiskLevel) {
		return invalid("riskLevel", *filters.RiskLevel)
	}

	if filters.Liquidity != nil && !core.IsValidLevel(*filters.Liquidity) {
		return invalid("liquidity", *filters.Liquidity)
	}

	if filters.Page < 0 {
		return invalid("page", filters.Page)
	}

	if filters.Limit < 0 || filters.Limit > core.MaxPageSize {
		return invalid("limit", filters.Limit)
	}

	return nil
}

func invalid(field string, v interface{}) error {
	return fmt.Errorf("%w: %s %v", core.ErrInvalidFilter, field, v)
}
