package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/bnema/emicon/internal/domain/validation"
)

var (
	validLogLevels   = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats  = []string{"console", "json"}
	validDisplays    = []string{"fullscreen", "standalone", "minimal-ui", "browser"}
	validOrientation = []string{
		"any", "natural", "landscape", "landscape-primary", "landscape-secondary",
		"portrait", "portrait-primary", "portrait-secondary",
	}
)

// validateConfig collects every problem and reports them together.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDataset(config)...)
	validationErrors = append(validationErrors, validateRender(config)...)
	validationErrors = append(validationErrors, validateManifest(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDataset(config *Config) []string {
	var errs []string
	d := config.Dataset

	if d.Path == "" {
		u, err := url.Parse(strings.ReplaceAll(d.URLTemplate, "{locale}", d.Locale))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, "dataset.url_template must be an http(s) URL")
		}
		if d.Locale == "" {
			errs = append(errs, "dataset.locale cannot be empty")
		}
	}
	if d.TimeoutSeconds < 0 {
		errs = append(errs, "dataset.timeout_seconds must be non-negative")
	}
	if d.EmojiVersion != "" {
		if _, ok := validation.ParseEmojiVersion(d.EmojiVersion); !ok {
			errs = append(errs, "dataset.emoji_version must be a number")
		}
	}
	return errs
}

func validateRender(config *Config) []string {
	var errs []string
	errs = append(errs, validation.ValidateFontFamily("render.vector_font", config.Render.VectorFont, true)...)
	errs = append(errs, validation.ValidateFontFamily("render.fallback_font", config.Render.FallbackFont, true)...)
	return errs
}

func validateManifest(config *Config) []string {
	var errs []string
	m := config.Manifest

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, "manifest.name cannot be empty")
	}
	errs = append(errs, validation.ValidateHexColor("manifest.theme_color", m.ThemeColor)...)
	errs = append(errs, validation.ValidateHexColor("manifest.background_color", m.BackgroundColor)...)
	if !slices.Contains(validDisplays, m.Display) {
		errs = append(errs, fmt.Sprintf("manifest.display must be one of %s", strings.Join(validDisplays, ", ")))
	}
	if !slices.Contains(validOrientation, m.Orientation) {
		errs = append(errs, fmt.Sprintf("manifest.orientation must be one of %s", strings.Join(validOrientation, ", ")))
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		errs = append(errs, "logging.format must be console or json")
	}
	if config.Logging.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_age_days must be non-negative")
	}
	return errs
}
