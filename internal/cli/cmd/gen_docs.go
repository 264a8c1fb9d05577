package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to $XDG_DATA_HOME/man/man1 so they are
available via 'man emicon'. You may need to run 'mandb' to update the index.

Examples:
  emicon gen-docs                           # Install man pages
  emicon gen-docs --format markdown         # Generate markdown docs in ./docs
  emicon gen-docs --output ./man            # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output.
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "EMICON",
			Section: "1",
			Source:  "emicon " + buildInfo.Version,
			Manual:  "Emicon Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Printf("Installed man pages to %s\n", outputDir)
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		fmt.Printf("Generated markdown docs in %s\n", outputDir)
	}
	return nil
}

func docsOutputDir(format, override string) (string, error) {
	switch format {
	case "man", "markdown":
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if override != "" {
		return override, nil
	}
	if format == "markdown" {
		return "./docs", nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}
