package aggregator

import (
	"context"

	"tokenboard/core"
	"tokenboard/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yiplee/structs"
)

func (s *service) GetPlatformStats(ctx context.Context) (*core.PlatformStats, error) {
	assets, err := s.collect(ctx, s.adapters)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if len(assets) == 0 {
		log.Warnln("no assets fetched, stats are empty")
		return core.EmptyPlatformStats(), nil
	}

	var stats *core.PlatformStats
	err = safely(func() {
		stats = computeStats(s.SupportedPlatforms(), assets)
	})
	if err != nil {
		return nil, err
	}

	fields := structs.Map(stats)
	delete(fields, "platformBreakdown")
	log.WithFields(logrus.Fields(fields)).Infoln("platform stats")

	return stats, nil
}

// computeStats breakdown follows platforms order, platforms without assets
// are left out
func computeStats(platforms []core.Platform, assets []*core.TokenizedAsset) *core.PlatformStats {
	var (
		marketCaps = make([]float64, 0, len(assets))
		volumes    = make([]float64, 0, len(assets))
		yields     []float64
		counts     = map[core.Platform]int{}
	)

	for _, asset := range assets {
		marketCaps = append(marketCaps, asset.MarketCap)
		volumes = append(volumes, asset.Volume24h)
		if asset.Yield != nil {
			yields = append(yields, *asset.Yield)
		}
		counts[asset.Platform]++
	}

	stats := &core.PlatformStats{
		TotalAssets:       len(assets),
		TotalMarketCap:    number.Float(number.Sum(marketCaps...), 8),
		TotalVolume24h:    number.Float(number.Sum(volumes...), 8),
		AverageYield:      number.Float(number.Mean(yields...), 2),
		PlatformBreakdown: []core.PlatformShare{},
	}

	for _, platform := range platforms {
		count := counts[platform]
		if count == 0 {
			continue
		}

		stats.ActivePlatforms++
		stats.PlatformBreakdown = append(stats.PlatformBreakdown, core.PlatformShare{
			Platform:   platform,
			Count:      count,
			Percentage: number.Float(number.Percentage(count, len(assets)), 2),
		})
	}

	return stats
}
