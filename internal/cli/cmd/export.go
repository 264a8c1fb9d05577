package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/search"
)

var (
	exportGlyph    string
	exportSans     bool
	exportOut      string
	exportManifest string
	exportVersion  string
)

var exportCmd = &cobra.Command{
	Use:   "export [QUERY]",
	Short: "Export icons.zip for the best match of QUERY",
	Long: `Draw an emoji, encode it at every icon size and save icons.zip.

The emoji is the best match of QUERY, the literal --glyph, or the default
avocado when neither is given. The manifest document is printed to stdout
and, when configured, saved next to the archive.

Examples:
  emicon export avo
  emicon export --glyph 🫒 --out ./public
  emicon export pizza --sans --manifest ./public/manifest.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportGlyph, "glyph", "", "emoji to draw instead of searching")
	exportCmd.Flags().BoolVar(&exportSans, "sans", false, "draw with the sans-serif fallback instead of the vector font")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "directory receiving icons.zip (default export.output_dir)")
	exportCmd.Flags().StringVar(&exportManifest, "manifest", "", "file receiving the manifest (default export.manifest_file)")
	exportCmd.Flags().StringVar(&exportVersion, "emoji-version", "", "only match emoji up to this version")
}

func runExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	sel, err := resolveSelection(ctx, app.DatasetUC, args, firstNonEmpty(exportVersion, app.Config.Dataset.EmojiVersion))
	if err != nil {
		return err
	}

	vector := app.Config.Render.Vector && !exportSans
	archive, err := app.ExportUC.Export(ctx, usecase.ExportInput{
		Selection: sel,
		Family:    entity.FontFamilyFromToggle(vector),
	})
	if err != nil {
		return err
	}

	out, err := app.ExportUC.Download(ctx, app.DownloadInput(exportOut, exportManifest))
	if err != nil {
		return err
	}

	t := app.Theme
	fmt.Fprintf(os.Stderr, "%s %s %s %s\n", t.SuccessStyle.Render(styles.IconCheck), sel.Glyph, sel.Label, t.Subtle.Render(archive.Family.String()))
	fmt.Fprintf(os.Stderr, "  %s %s (%d files)\n", t.Highlight.Render(styles.IconPackage), out.ArchivePath, len(archive.Files))
	if out.ManifestPath != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", t.Highlight.Render(styles.IconConfig), out.ManifestPath)
	}
	fmt.Println(archive.Manifest)
	return nil
}

// resolveSelection picks the glyph flag, the best match of the query, or
// the default selection.
func resolveSelection(ctx context.Context, dataset *usecase.LoadDatasetUseCase, args []string, ceiling string) (entity.Selection, error) {
	if exportGlyph != "" {
		return entity.Selection{Glyph: exportGlyph}, nil
	}
	if len(args) == 0 {
		return entity.DefaultSelection(), nil
	}

	out, err := dataset.Load(ctx, usecase.LoadDatasetInput{CeilingOverride: ceiling})
	if err != nil {
		return entity.Selection{}, err
	}
	candidates := search.Rank(args[0], out.Emojis, entity.Selection{})
	if len(candidates) == 0 {
		return entity.Selection{}, fmt.Errorf("no emoji matches %q", args[0])
	}
	return search.Top(candidates, entity.Selection{}), nil
}
