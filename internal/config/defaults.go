package config

import "github.com/AndreyAkinshin/conreport/pkg/console"

// Default configuration values.
const (
	DefaultFileName = ".conreport.yaml"
	DefaultStyle    = console.StrategyAuto
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Style == "" {
		cfg.Style = DefaultStyle
	}
	if cfg.Capabilities == nil {
		cfg.Capabilities = &console.Capabilities{}
	}
}
