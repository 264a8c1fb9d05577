package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/cli/model"
	"github.com/bnema/emicon/internal/infrastructure/config"
	"github.com/bnema/emicon/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive emoji picker",
	Long: `Open the interactive emoji picker.

Type to search; the best match becomes the current emoji. Use the arrow
keys and enter to pick another candidate, ctrl+e to export, and ctrl+s to
save icons.zip (and the manifest) to the configured output directory.
ctrl+y copies the manifest, or the emoji before the first export.

Edits to the [manifest] section of the config file apply to the next
export without restarting.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Ctx(), "tui")
	m := model.NewPickerModel(ctx, app.Theme, model.PickerDeps{
		Session:         app.SessionUC,
		Exporter:        app.ExportUC,
		Dataset:         app.DatasetUC,
		CeilingOverride: app.Config.Dataset.EmojiVersion,
		Download:        app.DownloadInput("", ""),
		Vector:          app.Config.Render.Vector,
		Clipboard:       app.Clipboard,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	app.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ManifestOptionsMsg{Options: cfg.ManifestOptions()})
	})
	app.ConfigMgr.Watch()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}
