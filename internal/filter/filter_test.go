package filter

import (
	"math"
	"testing"

	"tokenboard/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func testAssets() []*core.TokenizedAsset {
	return []*core.TokenizedAsset{
		{
			ID:               "a1",
			Platform:         core.PlatformSecuritize,
			Name:             "Manhattan Office Building",
			Symbol:           "MOB",
			Description:      "Prime office space in Midtown Manhattan",
			Issuer:           "Midtown Realty",
			AssetType:        core.AssetTypeRealEstate,
			TokenStandard:    core.TokenStandardDSProtocol,
			ComplianceStatus: core.ComplianceVerified,
			Blockchain:       "ethereum",
			CurrentPrice:     1500,
			MarketCap:        100,
			Yield:            ptr(8.5),
			MinInvestment:    50000,
			RiskLevel:        ptr(core.LevelMedium),
			Region:           ptr("north-america"),
		},
		{
			ID:               "b1",
			Platform:         core.PlatformPolymath,
			Name:             "Tech Startup Portfolio",
			Symbol:           "TSP",
			Issuer:           "Venture Partners",
			AssetType:        core.AssetTypeVentureCapital,
			TokenStandard:    core.TokenStandardST20,
			ComplianceStatus: core.CompliancePending,
			Blockchain:       "polymesh",
			CurrentPrice:     25,
			MarketCap:        500,
			MinInvestment:    100,
		},
		{
			ID:               "c1",
			Platform:         core.PlatformCentrifuge,
			Name:             "European Infrastructure Fund",
			Symbol:           "EIF",
			AssetType:        core.AssetTypeDebt,
			TokenStandard:    core.TokenStandardERC1404,
			ComplianceStatus: core.ComplianceVerified,
			Blockchain:       "centrifuge",
			CurrentPrice:     1,
			MarketCap:        300,
			Yield:            ptr(20.0),
			MinInvestment:    250000,
			RiskLevel:        ptr(core.LevelLow),
			Liquidity:        ptr(core.LevelMedium),
		},
	}
}

func ids(assets []*core.TokenizedAsset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	cases := []struct {
		name    string
		filters *core.AssetFilters
		want    []string
	}{
		{"nil filters", nil, []string{"a1", "b1", "c1"}},
		{"empty filters", &core.AssetFilters{}, []string{"a1", "b1", "c1"}},
		{"platform", &core.AssetFilters{Platform: []core.Platform{core.PlatformPolymath, core.PlatformCentrifuge}}, []string{"b1", "c1"}},
		{"asset type", &core.AssetFilters{AssetType: []core.AssetType{core.AssetTypeRealEstate}}, []string{"a1"}},
		{"token standard", &core.AssetFilters{TokenStandard: []core.TokenStandard{core.TokenStandardST20}}, []string{"b1"}},
		{"compliance", &core.AssetFilters{ComplianceStatus: []core.ComplianceStatus{core.ComplianceVerified}}, []string{"a1", "c1"}},
		{"blockchain", &core.AssetFilters{Blockchain: []string{"ethereum"}}, []string{"a1"}},
		{"min price inclusive", &core.AssetFilters{MinPrice: ptr(25.0)}, []string{"a1", "b1"}},
		{"max price inclusive", &core.AssetFilters{MaxPrice: ptr(25.0)}, []string{"b1", "c1"}},
		{"min yield drops missing yield", &core.AssetFilters{MinYield: ptr(5.0)}, []string{"a1", "c1"}},
		{"max yield drops missing yield", &core.AssetFilters{MaxYield: ptr(10.0)}, []string{"a1"}},
		{"min investment", &core.AssetFilters{MinInvestment: ptr(50000.0)}, []string{"a1", "c1"}},
		{"yield range", &core.AssetFilters{YieldRange: ptr("5-10")}, []string{"a1"}},
		{"yield range open", &core.AssetFilters{YieldRange: ptr("20+")}, []string{"c1"}},
		{"risk level keeps assets without one", &core.AssetFilters{RiskLevel: ptr(core.LevelLow)}, []string{"b1", "c1"}},
		{"liquidity", &core.AssetFilters{Liquidity: ptr(core.LevelHigh)}, []string{"a1", "b1"}},
		{"region", &core.AssetFilters{Region: ptr("europe")}, []string{"b1", "c1"}},
		{"search", &core.AssetFilters{Search: ptr("MANHATTAN")}, []string{"a1"}},
		{"conjunction", &core.AssetFilters{Platform: []core.Platform{core.PlatformSecuritize}, MaxPrice: ptr(10.0)}, []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ids(Apply(testAssets(), c.filters)))
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	filters := []*core.AssetFilters{
		{MinYield: ptr(5.0)},
		{Platform: []core.Platform{core.PlatformSecuritize}, RiskLevel: ptr(core.LevelMedium)},
		{YieldRange: ptr("0-10"), Search: ptr("office")},
	}

	for _, f := range filters {
		once := Apply(testAssets(), f)
		assert.Equal(t, ids(once), ids(Apply(once, f)))
	}
}

func TestMatchesPlatformExclusion(t *testing.T) {
	f := &core.AssetFilters{
		Platform:  []core.Platform{core.PlatformTexture},
		MinPrice:  ptr(0.0),
		RiskLevel: ptr(core.LevelMedium),
	}

	for _, asset := range testAssets() {
		assert.False(t, Matches(asset, f), asset.ID)
	}
}

func TestMatchesOptionalFieldAsymmetry(t *testing.T) {
	asset := &core.TokenizedAsset{ID: "x", Platform: core.PlatformPolymath}

	assert.False(t, Matches(asset, &core.AssetFilters{MinYield: ptr(5.0)}))
	assert.True(t, Matches(asset, &core.AssetFilters{RiskLevel: ptr(core.LevelLow)}))
}

func TestParseYieldRange(t *testing.T) {
	r, err := ParseYieldRange("5-10")
	require.Nil(t, err)
	assert.Equal(t, 5.0, r.Min)
	require.NotNil(t, r.Max)
	assert.Equal(t, 10.0, *r.Max)
	assert.True(t, r.Contains(ptr(5.0)))
	assert.True(t, r.Contains(ptr(10.0)))
	assert.False(t, r.Contains(ptr(10.01)))
	assert.False(t, r.Contains(nil))

	r, err = ParseYieldRange("20+")
	require.Nil(t, err)
	assert.Nil(t, r.Max)
	assert.True(t, r.Contains(ptr(99.0)))
	assert.False(t, r.Contains(ptr(19.9)))

	for _, bad := range []string{"", "+", "abc", "5-", "10-5", "1-2-3", "NaN+", "Inf+", "NaN-10", "5-Inf"} {
		_, err := ParseYieldRange(bad)
		assert.ErrorIs(t, err, core.ErrInvalidFilter, bad)
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(nil))
	assert.Nil(t, Validate(&core.AssetFilters{
		Platform:  []core.Platform{core.PlatformSecuritize},
		MinPrice:  ptr(1.0),
		MaxPrice:  ptr(2.0),
		RiskLevel: ptr(core.LevelHigh),
		Limit:     50,
	}))

	bad := []*core.AssetFilters{
		{Platform: []core.Platform{"nasdaq"}},
		{AssetType: []core.AssetType{"infrastructure"}},
		{TokenStandard: []core.TokenStandard{"ERC-20"}},
		{ComplianceStatus: []core.ComplianceStatus{"compliant"}},
		{MinPrice: ptr(-1.0)},
		{MinPrice: ptr(math.NaN())},
		{MaxPrice: ptr(math.Inf(1))},
		{MinYield: ptr(math.NaN())},
		{MinInvestment: ptr(math.Inf(1))},
		{YieldRange: ptr("NaN+")},
		{MinPrice: ptr(10.0), MaxPrice: ptr(5.0)},
		{MinYield: ptr(10.0), MaxYield: ptr(5.0)},
		{YieldRange: ptr("lots")},
		{RiskLevel: ptr(core.Level("extreme"))},
		{Liquidity: ptr(core.Level("none"))},
		{Page: -1},
		{Limit: core.MaxPageSize + 1},
	}

	for _, f := range bad {
		assert.ErrorIs(t, Validate(f), core.ErrInvalidFilter)
	}
}
