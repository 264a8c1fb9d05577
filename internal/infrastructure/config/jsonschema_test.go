package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema_UsesTOMLKeys(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, schemaID, schema["$id"])

	text := string(data)
	assert.Contains(t, text, `"theme_color"`)
	assert.Contains(t, text, `"url_template"`)
	assert.Contains(t, text, `"minimal-ui"`)
	assert.NotContains(t, text, `"ThemeColor"`)
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), schemaFileName)

	require.NoError(t, WriteSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
