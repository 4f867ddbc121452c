package config

import (
	"tokenboard/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("TOKENBOARD")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	withDefaults(config)
	return nil
}
