package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/search"
)

const defaultSearchLimit = 20

var (
	searchJSON    bool
	searchLimit   int
	searchVersion string
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Rank emoji whose label contains QUERY",
	Long: `Rank emoji whose label contains QUERY (case-sensitive).

Candidates are ordered by where the query first occurs in the label; ties
keep dataset order.

Examples:
  emicon search avo
  emicon search face --limit 5
  emicon search heart --json --emoji-version 12`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", defaultSearchLimit, "maximum results (0 for all)")
	searchCmd.Flags().StringVar(&searchVersion, "emoji-version", "", "only include emoji up to this version")
}

func runSearch(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.DatasetUC.Load(app.Ctx(), usecase.LoadDatasetInput{
		CeilingOverride: firstNonEmpty(searchVersion, app.Config.Dataset.EmojiVersion),
	})
	if err != nil {
		return err
	}

	candidates := search.Rank(args[0], out.Emojis, entity.Selection{})
	if searchJSON {
		return writeCandidatesJSON(os.Stdout, candidates, searchLimit)
	}
	writeCandidates(os.Stdout, app.Theme, candidates, searchLimit)
	return nil
}

type candidateJSON struct {
	Rank  int    `json:"rank"`
	Glyph string `json:"emoji"`
	Label string `json:"annotation"`
}

func limitCandidates(candidates []entity.Candidate, limit int) []entity.Candidate {
	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}

func writeCandidatesJSON(w io.Writer, candidates []entity.Candidate, limit int) error {
	candidates = limitCandidates(candidates, limit)
	items := make([]candidateJSON, len(candidates))
	for i, c := range candidates {
		items[i] = candidateJSON{Rank: c.Rank, Glyph: c.Glyph, Label: c.Label}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func writeCandidates(w io.Writer, theme *styles.Theme, candidates []entity.Candidate, limit int) {
	if len(candidates) == 0 {
		_, _ = fmt.Fprintln(w, theme.Subtle.Render("no matches"))
		return
	}
	for _, c := range limitCandidates(candidates, limit) {
		_, _ = fmt.Fprintf(w, "%s  %s %s\n", c.Glyph, theme.Normal.Render(c.Label), theme.Subtle.Render(fmt.Sprintf("@%d", c.Rank)))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
