// Package manifest renders the web-app manifest text for an icon export.
package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/emicon/internal/domain/entity"
)

const (
	iconMIMEType   = "image/png"
	iconPathPrefix = "./icons/"
	entryIndent    = "  "
)

// Icon is one entry of the manifest icons array.
type Icon struct {
	Src   string `json:"src"`
	Type  string `json:"type"`
	Sizes string `json:"sizes"`
}

// Options are the non-icon manifest fields.
type Options struct {
	Name            string
	ShortName       string
	ThemeColor      string
	BackgroundColor string
	Display         string
	Orientation     string
	StartURL        string
}

// DefaultOptions returns the manifest fields Emicon has always emitted.
func DefaultOptions() Options {
	return Options{
		Name:            "Emicon",
		ShortName:       "Emicon",
		ThemeColor:      "#2196f3",
		BackgroundColor: "#2196f3",
		Display:         "fullscreen",
		Orientation:     "portrait",
		StartURL:        "index.html",
	}
}

// IconFor returns the manifest entry for an exported size.
func IconFor(size int) Icon {
	return Icon{
		Src:   iconPathPrefix + entity.IconFileName(size),
		Type:  iconMIMEType,
		Sizes: fmt.Sprintf("%dx%d", size, size),
	}
}

// Icons returns one entry per size, in the given order.
func Icons(sizes []int) []Icon {
	icons := make([]Icon, len(sizes))
	for i, s := range sizes {
		icons[i] = IconFor(s)
	}
	return icons
}

// Fragment renders the icons array body: one JSON object per size,
// comma-joined, in the given order.
func Fragment(sizes []int) (string, error) {
	entries := make([]string, 0, len(sizes))
	for _, icon := range Icons(sizes) {
		data, err := json.MarshalIndent(icon, entryIndent, entryIndent)
		if err != nil {
			return "", fmt.Errorf("encode icon %s: %w", icon.Sizes, err)
		}
		entries = append(entries, "\n"+entryIndent+string(data))
	}
	return strings.Join(entries, ","), nil
}

// document is the manifest layout. Field order is the emitted key order.
type document struct {
	Name            string          `json:"name"`
	Icons           json.RawMessage `json:"icons"`
	ShortName       string          `json:"short_name"`
	ThemeColor      string          `json:"theme_color"`
	BackgroundColor string          `json:"background_color"`
	Display         string          `json:"display"`
	Orientation     string          `json:"orientation"`
	StartURL        string          `json:"start_url"`
}

// Document renders the full manifest with fragment as its icons array.
func Document(fragment string, opts Options) (string, error) {
	doc := document{
		Name:            opts.Name,
		Icons:           json.RawMessage("[" + fragment + "\n]"),
		ShortName:       opts.ShortName,
		ThemeColor:      opts.ThemeColor,
		BackgroundColor: opts.BackgroundColor,
		Display:         opts.Display,
		Orientation:     opts.Orientation,
		StartURL:        opts.StartURL,
	}

	data, err := json.MarshalIndent(doc, "", entryIndent)
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	return string(data), nil
}
