package config

import (
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/schema"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadAndValidate reads a config file, checks it against the schema, applies
// defaults, validates, and returns warnings. A relative coverage profile is
// resolved against the directory of the config file.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound("config file", path)
		}
		return nil, nil, errors.Wrap(err, "failed to read config file")
	}
	cfg, warnings, err := Parse(data)
	if err != nil {
		return nil, warnings, err
	}
	if cfg.Coverage != nil && cfg.Coverage.Profile != "" && !filepath.IsAbs(cfg.Coverage.Profile) {
		cfg.Coverage.Profile = filepath.Join(filepath.Dir(path), cfg.Coverage.Profile)
	}
	return cfg, warnings, nil
}

// Parse validates and decodes configuration data.
func Parse(data []byte) (*Config, []string, error) {
	doc, err := schema.FromYAML(data)
	if err != nil {
		return nil, nil, errors.Configf("failed to parse config file: %v", err)
	}
	if err := schema.ValidateConfig(doc); err != nil {
		return nil, nil, errors.Configf("%v", err)
	}

	cfg, unknownWarnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, errors.Configf("%v", err)
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, errors.Configf("%v", err)
	}

	return cfg, allWarnings, nil
}
