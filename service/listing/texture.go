package listing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tokenboard/core"
	"tokenboard/internal/normalize"
	"tokenboard/pkg/id"

	"github.com/shopspring/decimal"
)

// textureCard one offering card of app.texture.capital
type textureCard struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	ImageURL     string `json:"image_url"`
	Closing      string `json:"closing"`
	DetailsLeft  string `json:"details_left"`
	DetailsRight string `json:"details_right"`
	Footer       string `json:"footer"`
}

var (
	minInvestmentLabels = []string{"min. investment", "minimum investment", "min investment", "min."}
	raiseLabels         = []string{"raised", "raising", "offering size", "target raise", "valuation", "tvl", "value locked"}
	priceLabels         = []string{"token price", "price per", "share price", "price"}
)

// NewTexture texture capital listing adapter
func NewTexture(cfg core.Feed, app core.App) core.IPlatformAdapter {
	return newFeed(core.PlatformTexture, cfg, app, func(doc []byte, observedAt time.Time) ([]*core.TokenizedAsset, error) {
		return parseTexture(doc, cfg.SiteURL, observedAt)
	})
}

func parseTexture(doc []byte, siteURL string, observedAt time.Time) ([]*core.TokenizedAsset, error) {
	var cards []*textureCard
	if err := json.Unmarshal(doc, &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}

	ts := timestamp(observedAt)
	assets := make([]*core.TokenizedAsset, 0, len(cards))
	for _, card := range cards {
		if card == nil {
			continue
		}

		assets = append(assets, card.toAsset(siteURL, ts))
	}

	return assets, nil
}

func (c *textureCard) toAsset(siteURL, ts string) *core.TokenizedAsset {
	name := strings.TrimSpace(c.Title)
	link := absolute(siteURL, c.Link)
	details := strings.TrimSpace(strings.Join([]string{c.DetailsLeft, c.DetailsRight}, " "))
	description := details
	if closing := strings.TrimSpace(c.Closing); closing != "" {
		description = strings.TrimSpace(details + " " + closing)
	}

	key := link
	if key == "" {
		key = name
	}

	asset := &core.TokenizedAsset{
		ID:               id.UUIDFromParts(string(core.PlatformTexture), key),
		Platform:         core.PlatformTexture,
		Name:             name,
		Symbol:           normalize.Initials(name, 5),
		Description:      description,
		AssetType:        normalize.InferAssetType(name, details, c.Footer),
		TokenStandard:    core.TokenStandardERC1400,
		ComplianceStatus: core.ComplianceVerified,
		Blockchain:       "ethereum",
		KYCRequired:      true,
		ImageURL:         absolute(siteURL, c.ImageURL),
		Link:             link,
		Website:          link,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	if d, ok := labelled(details, minInvestmentLabels...); ok {
		asset.MinInvestment = toFloat(d)
	}

	if d, ok := labelled(details, raiseLabels...); ok {
		asset.MarketCap = toFloat(d)
	}

	if d, ok := labelled(details, priceLabels...); ok {
		asset.CurrentPrice = toFloat(d)
	}

	if strings.Contains(details, "%") {
		if d, ok := normalize.Percent(details); ok {
			y := toFloat(d)
			asset.Yield = &y
		}
	}

	return asset
}

// labelled amount following the first label found in text. Offsets are
// taken on the lowered text only, lowering may change rune widths.
func labelled(text string, labels ...string) (decimal.Decimal, bool) {
	lower := strings.ToLower(text)
	for _, label := range labels {
		idx := strings.Index(lower, label)
		if idx < 0 {
			continue
		}

		if d, ok := normalize.Amount(lower[idx+len(label):]); ok {
			return d, true
		}
	}

	return decimal.Zero, false
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
