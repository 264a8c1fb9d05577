package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/entity"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and font information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo))
	fmt.Println()

	t := app.Theme
	for _, family := range []entity.FontFamily{entity.FontFamilyVector, entity.FontFamilySansSerif} {
		source, err := app.Rasterizer.FontSource(app.Ctx(), family)
		if err != nil {
			fmt.Printf("  %s %s %s\n", t.ErrorStyle.Render(styles.IconX), t.Subtle.Render(family.String()), err)
			continue
		}
		fmt.Printf("  %s %s %s\n", t.Highlight.Render(styles.IconImage), t.Subtle.Render(family.String()), source)
	}
	return nil
}
