package core

import "time"

// Config tokenboard config
type Config struct {
	App        App        `json:"app"`
	Securitize Securitize `json:"securitize"`
	Polymath   Polymath   `json:"polymath"`
	Texture    Feed       `json:"texture"`
	Centrifuge Feed       `json:"centrifuge"`
}

// App app config
type App struct {
	// per adapter deadline inside one aggregation
	AdapterTimeout time.Duration `json:"adapter_timeout"`
	// max adapters queried at the same time
	Concurrency int `json:"concurrency"`
	// upstream request timeout
	RequestTimeout time.Duration `json:"request_timeout"`
	RetryCount     int           `json:"retry_count"`
	RetryWait      time.Duration `json:"retry_wait"`
}

// Securitize securitize connect config
type Securitize struct {
	Enabled     bool   `json:"enabled"`
	IssuerID    string `json:"issuer_id"`
	Secret      string `json:"secret"`
	RedirectURL string `json:"redirect_url"`
	// sandbox or production
	Environment string `json:"environment"`
	BaseURL     string `json:"base_url"`
	APIBaseURL  string `json:"api_base_url"`
	// capacity of the oauth token store
	TokenCapacity int `json:"token_capacity"`
	// cron spec of the background token refresh
	RefreshSchedule string `json:"refresh_schedule"`
}

// IsProduction production environment
func (s Securitize) IsProduction() bool {
	return s.Environment == "production"
}

// Polymath polymath api config
type Polymath struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

// Feed scraped listing feed config
type Feed struct {
	Enabled bool `json:"enabled"`
	// http(s) url or local file path of the listing json
	Source string `json:"source"`
	// prefix for relative links and images
	SiteURL string `json:"site_url"`
}
