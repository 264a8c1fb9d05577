package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "non http url",
			mutate:  func(c *Config) { c.Dataset.URLTemplate = "ftp://example.com/{locale}.json" },
			wantErr: "dataset.url_template",
		},
		{
			name:   "local path skips url",
			mutate: func(c *Config) { c.Dataset.URLTemplate = ""; c.Dataset.Path = "/tmp/data.json" },
		},
		{
			name:    "empty locale",
			mutate:  func(c *Config) { c.Dataset.Locale = "" },
			wantErr: "dataset.locale",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Dataset.TimeoutSeconds = -1 },
			wantErr: "dataset.timeout_seconds",
		},
		{
			name:    "emoji version not a number",
			mutate:  func(c *Config) { c.Dataset.EmojiVersion = "latest" },
			wantErr: "dataset.emoji_version",
		},
		{
			name:    "emoji version NaN",
			mutate:  func(c *Config) { c.Dataset.EmojiVersion = "NaN" },
			wantErr: "dataset.emoji_version",
		},
		{
			name:   "emoji version decimal",
			mutate: func(c *Config) { c.Dataset.EmojiVersion = "12.1" },
		},
		{
			name:    "font with newline",
			mutate:  func(c *Config) { c.Render.VectorFont = "Noto\nEmoji" },
			wantErr: "render.vector_font",
		},
		{
			name:    "empty manifest name",
			mutate:  func(c *Config) { c.Manifest.Name = "  " },
			wantErr: "manifest.name",
		},
		{
			name:    "bad background color",
			mutate:  func(c *Config) { c.Manifest.BackgroundColor = "#12345" },
			wantErr: "manifest.background_color",
		},
		{
			name:    "bad orientation",
			mutate:  func(c *Config) { c.Manifest.Orientation = "sideways" },
			wantErr: "manifest.orientation",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Manifest.ThemeColor = "red"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest.theme_color")
	assert.Contains(t, err.Error(), "logging.format")
}
