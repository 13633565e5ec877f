package config

import (
	"fmt"

	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if _, _, err := console.ParseStrategy(cfg.Style); err != nil {
		return nil, &ValidationError{Field: "style", Message: err.Error()}
	}

	if cfg.Coverage != nil {
		if cfg.Coverage.Expected != nil && *cfg.Coverage.Expected < 0 {
			return nil, &ValidationError{Field: "coverage.expected", Message: "must be 0 or greater"}
		}
		if cfg.Coverage.Expected == nil && cfg.Coverage.Profile != "" {
			warnings = append(warnings, "coverage.profile is set without coverage.expected; coverage check disabled")
		}
	}

	if cfg.Style != console.StrategyAuto && cfg.Capabilities != nil && *cfg.Capabilities != (console.Capabilities{}) {
		warnings = append(warnings, fmt.Sprintf("capabilities are ignored because style is %q", cfg.Style))
	}

	return warnings, nil
}
