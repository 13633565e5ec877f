package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// LoadWithWarnings decodes configuration data and returns any unknown field warnings.
func LoadWithWarnings(data []byte) (*Config, []string, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, detectUnknownFields(data), nil
}

// detectUnknownFields compares raw YAML keys with known struct fields.
func detectUnknownFields(data []byte) []string {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// This should never happen since the data was already parsed successfully.
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	var warnings []string
	for _, key := range unknownKeys(raw, getYAMLFields(reflect.TypeOf(Config{}))) {
		warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
	}

	nested := map[string]reflect.Type{
		"capabilities": reflect.TypeOf(console.Capabilities{}),
		"coverage":     reflect.TypeOf(CoverageConfig{}),
	}
	for section, typ := range nested {
		node, ok := raw[section]
		if !ok {
			continue
		}
		var fields map[string]yaml.Node
		if err := node.Decode(&fields); err != nil {
			continue
		}
		for _, key := range unknownKeys(fields, getYAMLFields(typ)) {
			warnings = append(warnings, fmt.Sprintf("unknown field %q in %s (ignored)", key, section))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func unknownKeys(raw map[string]yaml.Node, known map[string]bool) []string {
	var keys []string
	for key := range raw {
		if !known[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}
