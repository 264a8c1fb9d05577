package config

// Config represents the complete configuration for emicon.
type Config struct {
	Dataset  DatasetConfig  `mapstructure:"dataset" yaml:"dataset" toml:"dataset"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render" toml:"render"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export" toml:"export"`
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest" toml:"manifest"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// DatasetConfig controls where the emoji dataset comes from.
type DatasetConfig struct {
	// URLTemplate is the dataset URL; {locale} is replaced by Locale.
	URLTemplate string `mapstructure:"url_template" yaml:"url_template" toml:"url_template"`
	// Locale selects the emojibase localization (en, fr, de, ...).
	Locale string `mapstructure:"locale" yaml:"locale" toml:"locale"`
	// Path reads the dataset from a local data.json instead of the network.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
	// TimeoutSeconds bounds the dataset request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	// EmojiVersion overrides the persisted emojiVersion ceiling when set.
	EmojiVersion string `mapstructure:"emoji_version" yaml:"emoji_version" toml:"emoji_version"`
}

// RenderConfig controls glyph rasterization.
type RenderConfig struct {
	// Vector selects the vector emoji font by default (the sans-serif
	// fallback otherwise).
	Vector bool `mapstructure:"vector" yaml:"vector" toml:"vector"`
	// VectorFont is the preferred emoji font family, tried before the builtin chain.
	VectorFont string `mapstructure:"vector_font" yaml:"vector_font" toml:"vector_font"`
	// VectorFontPath pins the emoji font file and skips fontconfig.
	VectorFontPath string `mapstructure:"vector_font_path" yaml:"vector_font_path" toml:"vector_font_path"`
	// FallbackFont is the preferred sans-serif family.
	FallbackFont string `mapstructure:"fallback_font" yaml:"fallback_font" toml:"fallback_font"`
	// FallbackFontPath pins the sans-serif font file.
	FallbackFontPath string `mapstructure:"fallback_font_path" yaml:"fallback_font_path" toml:"fallback_font_path"`
	// CacheSize is how many rendered surfaces are kept in memory.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size" toml:"cache_size"`
}

// ExportConfig controls where downloads are written.
type ExportConfig struct {
	// OutputDir receives icons.zip. Empty means the current directory.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" toml:"output_dir"`
	// ManifestFile, when set, receives the manifest document on download.
	ManifestFile string `mapstructure:"manifest_file" yaml:"manifest_file" toml:"manifest_file"`
}

// ManifestConfig holds the non-icon web-app manifest fields.
type ManifestConfig struct {
	Name            string `mapstructure:"name" yaml:"name" toml:"name"`
	ShortName       string `mapstructure:"short_name" yaml:"short_name" toml:"short_name"`
	ThemeColor      string `mapstructure:"theme_color" yaml:"theme_color" toml:"theme_color"`
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color" toml:"background_color"`
	Display         string `mapstructure:"display" yaml:"display" toml:"display" jsonschema:"enum=fullscreen,enum=standalone,enum=minimal-ui,enum=browser"`
	Orientation     string `mapstructure:"orientation" yaml:"orientation" toml:"orientation"`
	StartURL        string `mapstructure:"start_url" yaml:"start_url" toml:"start_url"`
}

// DatabaseConfig holds the settings database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// LogDir defaults to $XDG_STATE_HOME/emicon/logs.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	// MaxAgeDays prunes rotated log files older than this.
	MaxAgeDays int `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}
