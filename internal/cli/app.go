// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/build"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/repository"
	"github.com/bnema/emicon/internal/infrastructure/archive"
	"github.com/bnema/emicon/internal/infrastructure/cache"
	"github.com/bnema/emicon/internal/infrastructure/clipboard"
	"github.com/bnema/emicon/internal/infrastructure/config"
	"github.com/bnema/emicon/internal/infrastructure/emojibase"
	"github.com/bnema/emicon/internal/infrastructure/filesystem"
	"github.com/bnema/emicon/internal/infrastructure/fonts"
	"github.com/bnema/emicon/internal/infrastructure/icon"
	"github.com/bnema/emicon/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/emicon/internal/infrastructure/raster"
	"github.com/bnema/emicon/internal/logging"
)

const logTimeFormat = "15:04:05"

// Options selects how the app is initialized.
type Options struct {
	// ConfigFile reads an explicit config file instead of the XDG one.
	ConfigFile string
	// Interactive sends logs to the log file only, leaving the terminal
	// to the TUI.
	Interactive bool
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db         *sqlite.LazyDB
	Settings   repository.SettingsRepository
	Rasterizer *raster.Rasterizer
	Clipboard  port.Clipboard

	// Use cases
	DatasetUC  *usecase.LoadDatasetUseCase
	SessionUC  *usecase.EmojiSessionUseCase
	ExportUC   *usecase.ExportIconsUseCase
	SettingsUC *usecase.ManageSettingsUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(level), Format: cfg.Logging.Format, TimeFormat: logTimeFormat},
		logging.FileConfig{
			Enabled:       opts.Interactive && cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			WriteToStderr: !opts.Interactive,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	// The database opens on first use so commands that never touch
	// settings skip the SQLite startup.
	db := sqlite.NewLazyDB(cfg.Database.Path)
	settingsRepo := sqlite.NewSettingsRepository(db)

	rasterizer := raster.New(
		raster.Options{
			VectorFontPath:   cfg.Render.VectorFontPath,
			VectorChain:      fonts.FallbackChain(port.FontCategoryEmoji, cfg.Render.VectorFont),
			FallbackFontPath: cfg.Render.FallbackFontPath,
			SansChain:        fonts.FallbackChain(port.FontCategorySansSerif, cfg.Render.FallbackFont),
		},
		fonts.NewDetector(),
		cache.NewLRU[entity.RenderRequest, image.Image](cfg.Render.CacheSize),
	)

	exportUC := usecase.NewExportIconsUseCase(
		rasterizer,
		icon.NewEncoder(),
		archive.NewBuilder(),
		filesystem.New(),
		cfg.ManifestOptions(),
	)

	logger.Debug().
		Str("config", mgr.ConfigFile()).
		Str("db_path", cfg.Database.Path).
		Bool("interactive", opts.Interactive).
		Msg("app initialized")

	return &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Theme:      styles.NewTheme(cfg),
		db:         db,
		Settings:   settingsRepo,
		Rasterizer: rasterizer,
		Clipboard:  clipboard.New(),
		DatasetUC:  usecase.NewLoadDatasetUseCase(newEmojiSource(cfg), settingsRepo),
		SessionUC:  usecase.NewEmojiSessionUseCase(),
		ExportUC:   exportUC,
		SettingsUC: usecase.NewManageSettingsUseCase(settingsRepo),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// newEmojiSource reads a local dataset when configured, the CDN otherwise.
func newEmojiSource(cfg *config.Config) repository.EmojiRepository {
	if cfg.Dataset.Path != "" {
		return emojibase.NewFileSource(cfg.Dataset.Path)
	}
	return emojibase.NewClient(emojibase.ClientOptions{
		URLTemplate: cfg.Dataset.URLTemplate,
		Locale:      cfg.Dataset.Locale,
		Timeout:     time.Duration(cfg.Dataset.TimeoutSeconds) * time.Second,
	})
}

// DownloadInput returns where exports are saved.
func (a *App) DownloadInput(outDir, manifestPath string) usecase.DownloadInput {
	if outDir == "" {
		outDir = a.Config.Export.OutputDir
	}
	if manifestPath == "" {
		manifestPath = a.Config.Export.ManifestFile
	}
	return usecase.DownloadInput{Dir: outDir, ManifestPath: manifestPath}
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func loadConfig(path string) (*config.Manager, *config.Config, error) {
	var opts []config.ManagerOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	mgr, err := config.NewManager(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, err
	}
	return mgr, mgr.Get(), nil
}
