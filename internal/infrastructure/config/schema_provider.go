package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/darkwatch/config.schema.json"
	schema.Title = "darkwatch configuration"
	schema.Description = "Configuration schema for darkwatch, a desktop color scheme watcher"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir.
func WriteSchemaFile(dir string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, schemaFileName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// Schema implements port.ConfigSchemaProvider.
func (SchemaProvider) Schema() ([]byte, error) {
	return GenerateSchema()
}
