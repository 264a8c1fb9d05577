package manifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/domain/entity"
)

func TestIconFor(t *testing.T) {
	assert.Equal(t, Icon{
		Src:   "./icons/icon-192x192.png",
		Type:  "image/png",
		Sizes: "192x192",
	}, IconFor(192))
}

func TestFragment_ListsEverySizeOnceInOrder(t *testing.T) {
	sizes := entity.IconSizes()

	fragment, err := Fragment(sizes)
	require.NoError(t, err)

	var icons []Icon
	require.NoError(t, json.Unmarshal([]byte("["+fragment+"]"), &icons))
	require.Len(t, icons, 13)

	seen := make(map[string]bool)
	for i, icon := range icons {
		assert.Equal(t, IconFor(sizes[i]), icon)
		assert.False(t, seen[icon.Sizes], "duplicate %s", icon.Sizes)
		seen[icon.Sizes] = true
	}

	assert.Equal(t, 12, strings.Count(fragment, "},"), "entries are comma-joined")
}

func TestFragment_Empty(t *testing.T) {
	fragment, err := Fragment(nil)
	require.NoError(t, err)
	assert.Empty(t, fragment)
}

func TestDocument_EmbedsFragment(t *testing.T) {
	fragment, err := Fragment([]int{16, 512})
	require.NoError(t, err)

	text, err := Document(fragment, DefaultOptions())
	require.NoError(t, err)

	var doc struct {
		Name        string `json:"name"`
		ShortName   string `json:"short_name"`
		ThemeColor  string `json:"theme_color"`
		Display     string `json:"display"`
		Orientation string `json:"orientation"`
		StartURL    string `json:"start_url"`
		Icons       []Icon `json:"icons"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &doc))

	assert.Equal(t, "Emicon", doc.Name)
	assert.Equal(t, "Emicon", doc.ShortName)
	assert.Equal(t, "#2196f3", doc.ThemeColor)
	assert.Equal(t, "fullscreen", doc.Display)
	assert.Equal(t, "portrait", doc.Orientation)
	assert.Equal(t, "index.html", doc.StartURL)
	assert.Equal(t, []Icon{IconFor(16), IconFor(512)}, doc.Icons)

	// Keys keep the manifest's conventional order.
	assert.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"icons"`))
	assert.Less(t, strings.Index(text, `"icons"`), strings.Index(text, `"short_name"`))
}

func TestDocument_Deterministic(t *testing.T) {
	fragment, err := Fragment(entity.IconSizes())
	require.NoError(t, err)

	first, err := Document(fragment, DefaultOptions())
	require.NoError(t, err)
	second, err := Document(fragment, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
