package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)
	cfg := DefaultConfig()
	cfg.Manifest.Name = "Pantry"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configFileName)))
}

func TestEncodeTOML_TablesSorted(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)
	text := string(data)

	order := []string{"[database]", "[dataset]", "[export]", "[logging]", "[manifest]", "[render]"}
	last := -1
	for _, header := range order {
		idx := strings.Index(text, header)
		require.GreaterOrEqual(t, idx, 0, "missing %s", header)
		assert.Greater(t, idx, last, "%s out of order", header)
		last = idx
	}
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"))
}

func TestEncodeTOML_Deterministic(t *testing.T) {
	first, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)
	second, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSortTables(t *testing.T) {
	in := "top = 1\n\n[b]\n  x = 1\n\n[a]\n  y = 2\n"

	assert.Equal(t, "top = 1\n\n[a]\n  y = 2\n\n[b]\n  x = 1\n", sortTables(in))
	assert.Empty(t, sortTables(""))
}
