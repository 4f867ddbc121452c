package normalize

import (
	"context"

	"tokenboard/core"

	"github.com/fox-one/pkg/logger"
)

// Valid keep the records passing core.ValidateAsset, each dropped record is
// logged with its reason
func Valid(ctx context.Context, assets []*core.TokenizedAsset) []*core.TokenizedAsset {
	log := logger.FromContext(ctx)

	out := make([]*core.TokenizedAsset, 0, len(assets))
	for _, asset := range assets {
		if err := core.ValidateAsset(asset); err != nil {
			log.WithError(err).Warnln("skip malformed record")
			continue
		}

		out = append(out, asset)
	}

	return out
}
