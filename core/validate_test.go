package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAsset() *TokenizedAsset {
	return &TokenizedAsset{
		ID:               "a1",
		Platform:         PlatformSecuritize,
		Name:             "Manhattan Office Building",
		AssetType:        AssetTypeRealEstate,
		TokenStandard:    TokenStandardDSProtocol,
		ComplianceStatus: ComplianceVerified,
		ContractAddress:  "0x52908400098527886E0F7030069857D2E4169EE7",
		Blockchain:       "ethereum",
		CurrentPrice:     100,
		CreatedAt:        "2024-01-01T00:00:00Z",
		UpdatedAt:        "2024-01-01T00:00:00Z",
	}
}

func TestValidateAsset(t *testing.T) {
	assert.Nil(t, ValidateAsset(validAsset()))
	assert.ErrorIs(t, ValidateAsset(nil), ErrMalformedResponse)

	nan, inf := math.NaN(), math.Inf(1)
	broken := []func(a *TokenizedAsset){
		func(a *TokenizedAsset) { a.ID = " " },
		func(a *TokenizedAsset) { a.Platform = "nasdaq" },
		func(a *TokenizedAsset) { a.CurrentPrice = -1 },
		func(a *TokenizedAsset) { a.CurrentPrice = nan },
		func(a *TokenizedAsset) { a.MarketCap = inf },
		func(a *TokenizedAsset) { a.TotalSupply = math.Inf(-1) },
		func(a *TokenizedAsset) { a.Volume24h = nan },
		func(a *TokenizedAsset) { a.MinInvestment = inf },
		func(a *TokenizedAsset) { a.MaxInvestment = &nan },
		func(a *TokenizedAsset) { a.Yield = &inf },
		func(a *TokenizedAsset) { a.ContractAddress = "not-an-address" },
		func(a *TokenizedAsset) { a.CreatedAt = "soon" },
	}

	for idx, breakAsset := range broken {
		a := validAsset()
		breakAsset(a)
		assert.ErrorIs(t, ValidateAsset(a), ErrMalformedResponse, "case %d", idx)
	}
}
