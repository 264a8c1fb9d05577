package config

import (
	"github.com/bnema/emicon/internal/domain/manifest"
	"github.com/bnema/emicon/internal/infrastructure/emojibase"
)

// Default configuration constants
const (
	defaultTimeoutSeconds = 15
	defaultCacheSize      = 8
	defaultMaxLogAgeDays  = 7
	defaultVectorFont     = "Noto Emoji"
	defaultManifestFile   = "manifest.json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	m := manifest.DefaultOptions()
	return &Config{
		Dataset: DatasetConfig{
			URLTemplate:    emojibase.DefaultURLTemplate,
			Locale:         emojibase.DefaultLocale,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Render: RenderConfig{
			Vector:     true,
			VectorFont: defaultVectorFont,
			CacheSize:  defaultCacheSize,
		},
		Export: ExportConfig{
			ManifestFile: defaultManifestFile,
		},
		Manifest: ManifestConfig{
			Name:            m.Name,
			ShortName:       m.ShortName,
			ThemeColor:      m.ThemeColor,
			BackgroundColor: m.BackgroundColor,
			Display:         m.Display,
			Orientation:     m.Orientation,
			StartURL:        m.StartURL,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxAgeDays:    defaultMaxLogAgeDays,
		},
	}
}

// ManifestOptions converts the manifest section for the manifest renderer.
func (c *Config) ManifestOptions() manifest.Options {
	return manifest.Options{
		Name:            c.Manifest.Name,
		ShortName:       c.Manifest.ShortName,
		ThemeColor:      c.Manifest.ThemeColor,
		BackgroundColor: c.Manifest.BackgroundColor,
		Display:         c.Manifest.Display,
		Orientation:     c.Manifest.Orientation,
		StartURL:        c.Manifest.StartURL,
	}
}
