// Package config provides configuration loading and validation for .conreport.yaml.
package config

import "github.com/AndreyAkinshin/conreport/pkg/console"

// Config represents the complete .conreport.yaml configuration.
type Config struct {
	Schema       string                `yaml:"$schema,omitempty"`
	Style        string                `yaml:"style,omitempty"`
	Capabilities *console.Capabilities `yaml:"capabilities,omitempty"`
	Coverage     *CoverageConfig       `yaml:"coverage,omitempty"`
}

// CoverageConfig configures the end-of-run coverage check.
type CoverageConfig struct {
	// Expected is the number of covered items the run must report.
	// The check is disabled when nil.
	Expected *int `yaml:"expected,omitempty"`
	// Profile is a go test cover profile providing the covered items.
	Profile string `yaml:"profile,omitempty"`
}
