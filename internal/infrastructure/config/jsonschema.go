package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/emicon/config.schema.json"

// GenerateSchema reflects the JSON schema of config.toml.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = schemaID
	schema.Title = "Emicon Configuration"
	schema.Description = "Configuration schema for Emicon, an emoji to web-app icon exporter"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the generated schema to path.
func WriteSchemaFile(path string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
