package config

import (
	"time"

	"tokenboard/core"
)

const (
	securitizeBaseURL           = "https://id.securitize.io"
	securitizeAPIBaseURL        = "https://connect-gw.securitize.io/api"
	securitizeSandboxBaseURL    = "https://id.sandbox.securitize.io"
	securitizeSandboxAPIBaseURL = "https://connect-gw.sandbox.securitize.io/api"

	polymathBaseURL = "https://api.polymath.network/v1"

	textureSiteURL    = "https://app.texture.capital"
	centrifugeSiteURL = "https://app.centrifuge.io"
)

func withDefaults(cfg *core.Config) {
	defaultApp(&cfg.App)
	defaultSecuritize(&cfg.Securitize)

	if cfg.Polymath.BaseURL == "" {
		cfg.Polymath.BaseURL = polymathBaseURL
	}

	if cfg.Texture.SiteURL == "" {
		cfg.Texture.SiteURL = textureSiteURL
	}

	if cfg.Centrifuge.SiteURL == "" {
		cfg.Centrifuge.SiteURL = centrifugeSiteURL
	}
}

func defaultApp(app *core.App) {
	if app.AdapterTimeout <= 0 {
		app.AdapterTimeout = 5 * time.Second
	}

	if app.RequestTimeout <= 0 {
		app.RequestTimeout = 10 * time.Second
	}

	if app.Concurrency <= 0 {
		app.Concurrency = 8
	}

	// negative disables retry
	switch {
	case app.RetryCount == 0:
		app.RetryCount = 2
	case app.RetryCount < 0:
		app.RetryCount = 0
	}

	if app.RetryWait <= 0 {
		app.RetryWait = 200 * time.Millisecond
	}
}

func defaultSecuritize(s *core.Securitize) {
	if s.Environment == "" {
		s.Environment = "sandbox"
	}

	if s.BaseURL == "" {
		s.BaseURL = securitizeSandboxBaseURL
		if s.IsProduction() {
			s.BaseURL = securitizeBaseURL
		}
	}

	if s.APIBaseURL == "" {
		s.APIBaseURL = securitizeSandboxAPIBaseURL
		if s.IsProduction() {
			s.APIBaseURL = securitizeAPIBaseURL
		}
	}

	if s.TokenCapacity <= 0 {
		s.TokenCapacity = 16
	}

	if s.RefreshSchedule == "" {
		s.RefreshSchedule = "@every 10m"
	}
}
