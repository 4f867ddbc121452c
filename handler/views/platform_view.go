package views

import "tokenboard/core"

// Platforms registered platforms view
type Platforms struct {
	Platforms []core.Platform `json:"platforms"`
}

// AuthURL securitize consent url view
type AuthURL struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
