package cmd

import (
	"tokenboard/core"
	"tokenboard/service/aggregator"
	"tokenboard/service/listing"
	"tokenboard/service/polymath"
	"tokenboard/service/securitize"
)

// ------------------service------------------------------------

// provideSecuritizeService nil when securitize is disabled
func provideSecuritizeService() core.ISecuritizeService {
	if !cfg.Securitize.Enabled {
		return nil
	}

	return securitize.New(cfg.Securitize, cfg.App)
}

// provideAdapters enabled adapters in registration order
func provideAdapters(securitizeSrv core.ISecuritizeService) []core.IPlatformAdapter {
	var adapters []core.IPlatformAdapter

	if securitizeSrv != nil {
		adapters = append(adapters, securitizeSrv)
	}

	if cfg.Polymath.Enabled {
		adapters = append(adapters, polymath.New(cfg.Polymath, cfg.App))
	}

	if cfg.Texture.Enabled {
		adapters = append(adapters, listing.NewTexture(cfg.Texture, cfg.App))
	}

	if cfg.Centrifuge.Enabled {
		adapters = append(adapters, listing.NewCentrifuge(cfg.Centrifuge, cfg.App))
	}

	return adapters
}

func provideAggregatorService(adapters []core.IPlatformAdapter) core.IAggregatorService {
	return aggregator.New(adapters, aggregator.Options{
		AdapterTimeout: cfg.App.AdapterTimeout,
		Concurrency:    cfg.App.Concurrency,
	})
}
