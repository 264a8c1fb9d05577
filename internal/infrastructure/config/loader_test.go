package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "en", mgr.viper.GetString("dataset.locale"))
	assert.True(t, mgr.viper.GetBool("render.vector"))
	assert.Equal(t, "#2196f3", mgr.viper.GetString("manifest.theme_color"))
	assert.Equal(t, "manifest.json", mgr.viper.GetString("export.manifest_file"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)
	dir := t.TempDir()

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, configFileName))
	assert.FileExists(t, filepath.Join(dir, schemaFileName))
	assert.Equal(t, filepath.Join(dir, configFileName), mgr.ConfigFile())

	cfg := mgr.Get()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig().Manifest, cfg.Manifest)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadReadsExistingFile(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	content := `
[manifest]
  name = "Pantry"
  theme_color = "#ABC"

[render]
  vector = false
  cache_size = 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "Pantry", cfg.Manifest.Name)
	assert.Equal(t, "#ABC", cfg.Manifest.ThemeColor)
	assert.Equal(t, "Emicon", cfg.Manifest.ShortName, "unset keys keep defaults")
	assert.False(t, cfg.Render.Vector)
	assert.Equal(t, defaultCacheSize, cfg.Render.CacheSize, "non-positive cache size is normalized")
	assert.NoFileExists(t, filepath.Join(dir, schemaFileName))
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("EMICON_DATASET_LOCALE", "fr")
	t.Setenv("EMICON_LOG_LEVEL", "DEBUG")
	t.Setenv("EMICON_DATASET_EMOJI_VERSION", "13.1")

	mgr, err := NewManager(WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "fr", cfg.Dataset.Locale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "13.1", cfg.Dataset.EmojiVersion)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	content := `
[manifest]
  theme_color = "blue"
  display = "kiosk"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest.theme_color")
	assert.Contains(t, err.Error(), "manifest.display")
	assert.Nil(t, mgr.Get())
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[manifest\nname ="), filePerm))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid TOML")
}

func TestManager_OnConfigChangeRegistersCallback(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.OnConfigChange(func(*Config) {})
	mgr.OnConfigChange(func(*Config) {})

	assert.Len(t, mgr.callbacks, 2)
}
