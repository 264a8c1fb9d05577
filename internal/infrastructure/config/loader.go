// Package config loads, validates and writes the emicon configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads and creates config.toml in dir instead of the XDG
// config directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) { m.configDir = dir }
}

// WithConfigFile reads an explicit config file.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.viper.SetConfigFile(path)
		m.configDir = filepath.Dir(path)
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}
	v.AddConfigPath(m.configDir)

	// EMICON_DATASET_LOCALE, EMICON_RENDER_VECTOR, ... map onto nested keys.
	v.SetEnvPrefix("EMICON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "EMICON_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind EMICON_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "EMICON_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind EMICON_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables,
// writing a default config.toml on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// unmarshalConfig decodes, fills derived paths and validates.
func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := fillDerivedPaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func fillDerivedPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Dataset.Locale = strings.TrimSpace(config.Dataset.Locale)
	config.Dataset.EmojiVersion = strings.TrimSpace(config.Dataset.EmojiVersion)
	config.Manifest.Display = strings.ToLower(config.Manifest.Display)
	config.Manifest.Orientation = strings.ToLower(config.Manifest.Orientation)
	if config.Render.CacheSize <= 0 {
		config.Render.CacheSize = defaultCacheSize
	}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ConfigFile returns the config file path in use, or the one that would be created.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the defaults and the JSON schema next to it.
func (m *Manager) createDefaultConfig() error {
	if err := EnsureDir(m.configDir); err != nil {
		return err
	}

	configFile := m.ConfigFile()
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	if err := WriteSchemaFile(filepath.Join(m.configDir, schemaFileName)); err != nil {
		return fmt.Errorf("failed to write config schema: %w", err)
	}
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("dataset.url_template", d.Dataset.URLTemplate)
	m.viper.SetDefault("dataset.locale", d.Dataset.Locale)
	m.viper.SetDefault("dataset.path", d.Dataset.Path)
	m.viper.SetDefault("dataset.timeout_seconds", d.Dataset.TimeoutSeconds)
	m.viper.SetDefault("dataset.emoji_version", d.Dataset.EmojiVersion)

	m.viper.SetDefault("render.vector", d.Render.Vector)
	m.viper.SetDefault("render.vector_font", d.Render.VectorFont)
	m.viper.SetDefault("render.vector_font_path", d.Render.VectorFontPath)
	m.viper.SetDefault("render.fallback_font", d.Render.FallbackFont)
	m.viper.SetDefault("render.fallback_font_path", d.Render.FallbackFontPath)
	m.viper.SetDefault("render.cache_size", d.Render.CacheSize)

	m.viper.SetDefault("export.output_dir", d.Export.OutputDir)
	m.viper.SetDefault("export.manifest_file", d.Export.ManifestFile)

	m.viper.SetDefault("manifest.name", d.Manifest.Name)
	m.viper.SetDefault("manifest.short_name", d.Manifest.ShortName)
	m.viper.SetDefault("manifest.theme_color", d.Manifest.ThemeColor)
	m.viper.SetDefault("manifest.background_color", d.Manifest.BackgroundColor)
	m.viper.SetDefault("manifest.display", d.Manifest.Display)
	m.viper.SetDefault("manifest.orientation", d.Manifest.Orientation)
	m.viper.SetDefault("manifest.start_url", d.Manifest.StartURL)

	m.viper.SetDefault("database.path", d.Database.Path)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
}
