// Package schema validates .conreport.yaml documents against the embedded
// JSON schema.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/AndreyAkinshin/conreport/schema"
)

const configSchemaName = "config.schema.json"

// configSchema compiles the embedded config schema on first use.
var configSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := schemafs.FS.ReadFile(configSchemaName)
	if err != nil {
		return nil, fmt.Errorf("read config schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal config schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaName, doc); err != nil {
		return nil, fmt.Errorf("add config schema resource: %w", err)
	}
	s, err := compiler.Compile(configSchemaName)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	return s, nil
})

// FromYAML converts a YAML config document to JSON. An empty document is an
// empty object.
func FromYAML(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}

// ValidateConfig validates JSON data against the config schema.
func ValidateConfig(data []byte) error {
	s, err := configSchema()
	if err != nil {
		return err
	}

	// UnmarshalJSON keeps numbers as json.Number so "integer" checks are exact.
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
