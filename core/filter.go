package core

// AssetFilters criteria bag, every field optional.
//
// Slice fields match when the asset value is in the set. Pointer fields are
// single bounds or exact-match conditions; nil means the clause is absent.
type AssetFilters struct {
	Platform         []Platform         `json:"platform,omitempty" schema:"platform"`
	AssetType        []AssetType        `json:"assetType,omitempty" schema:"assetType"`
	TokenStandard    []TokenStandard    `json:"tokenStandard,omitempty" schema:"tokenStandard"`
	ComplianceStatus []ComplianceStatus `json:"complianceStatus,omitempty" schema:"complianceStatus"`
	Blockchain       []string           `json:"blockchain,omitempty" schema:"blockchain"`

	MinPrice      *float64 `json:"minPrice,omitempty" schema:"minPrice"`
	MaxPrice      *float64 `json:"maxPrice,omitempty" schema:"maxPrice"`
	MinYield      *float64 `json:"minYield,omitempty" schema:"minYield"`
	MaxYield      *float64 `json:"maxYield,omitempty" schema:"maxYield"`
	MinInvestment *float64 `json:"minInvestment,omitempty" schema:"minInvestment"`
	YieldRange    *string  `json:"yieldRange,omitempty" schema:"yieldRange"`

	RiskLevel        *Level  `json:"riskLevel,omitempty" schema:"riskLevel"`
	Liquidity        *Level  `json:"liquidity,omitempty" schema:"liquidity"`
	RegulatoryStatus *string `json:"regulatoryStatus,omitempty" schema:"regulatoryStatus"`
	Region           *string `json:"region,omitempty" schema:"region"`

	Search *string `json:"search,omitempty" schema:"search"`

	Page  int `json:"page,omitempty" schema:"page"`
	Limit int `json:"limit,omitempty" schema:"limit"`
}

// HasPlatform reports whether platform is selected; an absent set selects every platform
func (f *AssetFilters) HasPlatform(platform Platform) bool {
	if f == nil || len(f.Platform) == 0 {
		return true
	}

	for _, p := range f.Platform {
		if p == platform {
			return true
		}
	}

	return false
}
