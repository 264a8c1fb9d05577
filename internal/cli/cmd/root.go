// Package cmd provides Cobra CLI commands for emicon.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/cli"
	"github.com/bnema/emicon/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "emicon",
		Short: "Turn an emoji into a full set of web-app icons",
		Long: `Emicon - emoji to web-app icons.

Search the emojibase dataset, pick an emoji, and export it as PNG icons in
13 sizes (16x16 to 512x512) packed into icons.zip, together with the
web-app manifest that references them.

Run 'emicon' without arguments for the interactive picker, or use the
subcommands for scripted exports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  configFile,
				Interactive: isInteractive(cmd),
				LogLevel:    logLevel,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runTUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/emicon/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
}

// isInteractive reports whether cmd takes over the terminal.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

// Execute runs the root command.
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes args and releases the app afterwards. Cobra skips post-run
// hooks when RunE fails, so the cleanup lives here.
func run(args []string) error {
	rootCmd.SetArgs(args)
	defer closeApp()
	return rootCmd.Execute()
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close app:", err)
	}
	app = nil
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
