package core

// PlatformShare per platform asset count
type PlatformShare struct {
	Platform   Platform `json:"platform"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

// PlatformStats aggregate statistics over the unfiltered asset universe
type PlatformStats struct {
	TotalAssets       int             `json:"totalAssets"`
	TotalMarketCap    float64         `json:"totalMarketCap"`
	TotalVolume24h    float64         `json:"totalVolume24h"`
	AverageYield      float64         `json:"averageYield"`
	ActivePlatforms   int             `json:"activePlatforms"`
	PlatformBreakdown []PlatformShare `json:"platformBreakdown"`
}

// EmptyPlatformStats zero valued stats, renderable as is
func EmptyPlatformStats() *PlatformStats {
	return &PlatformStats{
		PlatformBreakdown: []PlatformShare{},
	}
}
