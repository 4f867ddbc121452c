// Package normalize holds the lookup tables and lenient parsers every
// platform adapter uses to turn upstream values into canonical ones.
// Nothing here fails: unknown input maps to a documented fallback.
package normalize

import (
	"strings"
	"unicode"

	"tokenboard/core"
)

var assetTypes = map[string]core.AssetType{
	"real-estate":     core.AssetTypeRealEstate,
	"private-equity":  core.AssetTypePrivateEquity,
	"venture-capital": core.AssetTypeVentureCapital,
	"debt":            core.AssetTypeDebt,
	"commodities":     core.AssetTypeCommodities,
	"art":             core.AssetTypeArt,
}

var complianceStatuses = map[string]core.ComplianceStatus{
	"verified":     core.ComplianceVerified,
	"pending":      core.CompliancePending,
	"rejected":     core.ComplianceRejected,
	"not-required": core.ComplianceNotRequired,
}

// keywords checked in order, first hit wins
var assetTypeKeywords = []struct {
	keyword   string
	assetType core.AssetType
}{
	{"real estate", core.AssetTypeRealEstate},
	{"real-estate", core.AssetTypeRealEstate},
	{"property", core.AssetTypeRealEstate},
	{"housing", core.AssetTypeRealEstate},
	{"private equity", core.AssetTypePrivateEquity},
	{"venture", core.AssetTypeVentureCapital},
	{"startup", core.AssetTypeVentureCapital},
	{"treasur", core.AssetTypeDebt},
	{"credit", core.AssetTypeDebt},
	{"debt", core.AssetTypeDebt},
	{"loan", core.AssetTypeDebt},
	{"bond", core.AssetTypeDebt},
	{"invoice", core.AssetTypeDebt},
	{"receivable", core.AssetTypeDebt},
	{"fixed income", core.AssetTypeDebt},
	{"commodit", core.AssetTypeCommodities},
	{"gold", core.AssetTypeCommodities},
	{"carbon", core.AssetTypeCommodities},
	{"fine art", core.AssetTypeArt},
	{"artwork", core.AssetTypeArt},
	{"collectible", core.AssetTypeArt},
}

func key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

// AssetType map an upstream asset type label, "other" when unknown
func AssetType(s string) core.AssetType {
	if t, ok := assetTypes[key(s)]; ok {
		return t
	}

	return core.AssetTypeOther
}

// ComplianceStatus map an upstream compliance label, "pending" when unknown
func ComplianceStatus(s string) core.ComplianceStatus {
	if c, ok := complianceStatuses[key(s)]; ok {
		return c
	}

	return core.CompliancePending
}

// InferAssetType guess the asset type from free text such as listing tags
// and titles. Exact labels win over keywords.
func InferAssetType(texts ...string) core.AssetType {
	for _, text := range texts {
		if t := AssetType(text); t != core.AssetTypeOther {
			return t
		}
	}

	for _, kw := range assetTypeKeywords {
		for _, text := range texts {
			if strings.Contains(strings.ToLower(text), kw.keyword) {
				return kw.assetType
			}
		}
	}

	return core.AssetTypeOther
}

// Level map a low/medium/high label, nil when unknown
func Level(s string) *core.Level {
	l := core.Level(strings.ToLower(strings.TrimSpace(s)))
	if !core.IsValidLevel(l) {
		return nil
	}

	return &l
}

// Initials ticker-like symbol from a display name, "Manhattan Office
// Building" gives "MOB"
func Initials(name string, n int) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}

		b.WriteRune(unicode.ToUpper(r))
		if b.Len() >= n {
			break
		}
	}

	return b.String()
}
