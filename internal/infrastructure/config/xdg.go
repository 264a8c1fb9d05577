package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName        = "emicon"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
	databaseName   = "emicon.sqlite"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for emicon:
// $XDG_CONFIG_HOME/emicon, $XDG_DATA_HOME/emicon and $XDG_STATE_HOME/emicon.
// ENV=dev keeps everything under ./.dev/emicon.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")), appName),
		DataHome:   filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")), appName),
		StateHome:  filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")), appName),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfigDir returns the XDG config directory for emicon.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetLogDir returns the log directory. Logs live in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetDatabaseFile returns the path to the settings database.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// EnsureDir creates dir if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
