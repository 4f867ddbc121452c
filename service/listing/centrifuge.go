package listing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"tokenboard/core"
	"tokenboard/internal/normalize"
	"tokenboard/pkg/id"
)

// placeholders the scraper writes for missing values
var centrifugePlaceholders = map[string]bool{
	"pool name not found": true,
	"n/a":                 true,
	"-":                   true,
}

// centrifugePool one pool card of app.centrifuge.io
type centrifugePool struct {
	PoolName string            `json:"pool_name"`
	Link     string            `json:"link"`
	Details  map[string]string `json:"details"`
}

// NewCentrifuge centrifuge pool listing adapter
func NewCentrifuge(cfg core.Feed, app core.App) core.IPlatformAdapter {
	return newFeed(core.PlatformCentrifuge, cfg, app, func(doc []byte, observedAt time.Time) ([]*core.TokenizedAsset, error) {
		return parseCentrifuge(doc, cfg.SiteURL, observedAt)
	})
}

func parseCentrifuge(doc []byte, siteURL string, observedAt time.Time) ([]*core.TokenizedAsset, error) {
	var pools []*centrifugePool
	if err := json.Unmarshal(doc, &pools); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}

	ts := timestamp(observedAt)
	assets := make([]*core.TokenizedAsset, 0, len(pools))
	for _, pool := range pools {
		if pool == nil {
			continue
		}

		assets = append(assets, pool.toAsset(siteURL, ts))
	}

	return assets, nil
}

func present(v string) string {
	v = strings.TrimSpace(v)
	if centrifugePlaceholders[strings.ToLower(v)] {
		return ""
	}

	return v
}

func (p *centrifugePool) toAsset(siteURL, ts string) *core.TokenizedAsset {
	name := present(p.PoolName)
	link := absolute(siteURL, present(p.Link))

	key := link
	if key == "" {
		key = name
	}

	asset := &core.TokenizedAsset{
		ID:               id.UUIDFromParts(string(core.PlatformCentrifuge), key),
		Platform:         core.PlatformCentrifuge,
		Name:             name,
		Symbol:           normalize.Initials(name, 5),
		AssetType:        core.AssetTypeOther,
		TokenStandard:    core.TokenStandardERC1404,
		ComplianceStatus: core.ComplianceVerified,
		Blockchain:       "centrifuge",
		KYCRequired:      true,
		Link:             link,
		Website:          link,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	labels := make([]string, 0, len(p.Details))
	for label := range p.Details {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var (
		description []string
		typeHints   = []string{name}
	)

	for _, label := range labels {
		value := present(p.Details[label])
		if value == "" {
			continue
		}

		description = append(description, label+": "+value)
		lower := strings.ToLower(label)

		switch {
		case containsAny(lower, "apy", "apr", "yield", "return"):
			if d, ok := normalize.Percent(value); ok {
				y := toFloat(d)
				asset.Yield = &y
			}
		case containsAny(lower, "min"):
			if d, ok := normalize.Amount(value); ok {
				asset.MinInvestment = toFloat(d)
			}
		case containsAny(lower, "tvl", "value locked", "pool value", "nav", "size"):
			if d, ok := normalize.Amount(value); ok {
				asset.MarketCap = toFloat(d)
			}
		case containsAny(lower, "price"):
			if d, ok := normalize.Amount(value); ok {
				asset.CurrentPrice = toFloat(d)
			}
		case containsAny(lower, "volume"):
			if d, ok := normalize.Amount(value); ok {
				asset.Volume24h = toFloat(d)
			}
		case containsAny(lower, "issuer"):
			asset.Issuer = value
		case containsAny(lower, "asset", "type", "class"):
			typeHints = append([]string{value}, typeHints...)
		}
	}

	asset.Description = strings.Join(description, "; ")
	asset.AssetType = normalize.InferAssetType(typeHints...)
	return asset
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
