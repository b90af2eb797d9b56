package config

import (
	configUtil "github.com/fox-one/pkg/config"

	"morpho/core"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("MORPHO")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaults(config)
	return nil
}

func defaults(config *core.Config) {
	if config.Chain.SecondsPerBlock == 0 {
		// mainnet-ish cadence; override per target chain
		config.Chain.SecondsPerBlock = 15
	}
	if config.Chain.Backend == "" {
		config.Chain.Backend = "compound"
	}
}
