// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm = 0o750

	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxAgeDays    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// EMICON_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// EMICON_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("EMICON_LOG_LEVEL"), os.Getenv("EMICON_LOG_FORMAT"))
}

// NewWithFile creates a logger that writes to a rotating file in fileCfg.Dir,
// optionally teeing to stderr. The returned cleanup closes the file.
// When file logging is disabled and stderr is not requested, the logger is a no-op.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	if fileCfg.Dir == "" {
		return New(cfg), noop, fmt.Errorf("log directory is empty")
	}
	if err := os.MkdirAll(fileCfg.Dir, logDirPerm); err != nil {
		return New(cfg), noop, fmt.Errorf("create log dir: %w", err)
	}

	rotator, err := NewLogRotator(RotatorOptions{
		Dir:        fileCfg.Dir,
		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		return New(cfg), noop, err
	}

	// File output is always JSON so it stays greppable.
	fileOut := io.Writer(rotator)
	var out io.Writer = fileOut
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(fileOut, consoleWriter(cfg, os.Stderr))
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}

// LogFilePath returns the path of the active log file inside dir.
func LogFilePath(dir string) string {
	return filepath.Join(dir, logFileName)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	var output = w
	if cfg.Format != "json" {
		output = consoleWriter(cfg, w)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(cfg Config, w io.Writer) io.Writer {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
}
